package rstore

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/datastore"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/rdb"
)

type deliveryRepo struct {
	client redis.UniversalClient
}

func NewDeliveryRepo(r *rdb.Redis) datastore.DeliveryRepository {
	return &deliveryRepo{client: r.Client()}
}

func (d *deliveryRepo) CreateDelivery(ctx context.Context, delivery *datastore.WebhookDelivery) error {
	data, err := json.Marshal(delivery)
	if err != nil {
		return errors.Wrap(err, "failed to encode webhook delivery")
	}

	_, err = d.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, novora.WebhookDeliveryKey.Get(delivery.UID), data, 0)
		pipe.ZAdd(ctx, novora.WebhookDeliveriesKey.Get(delivery.WebhookID), redis.Z{
			Score:  float64(delivery.CreatedAt.UnixMilli()),
			Member: delivery.UID,
		})
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to create webhook delivery")
	}

	return nil
}

func (d *deliveryRepo) FindDeliveryByID(ctx context.Context, id string) (*datastore.WebhookDelivery, error) {
	raw, err := d.client.Get(ctx, novora.WebhookDeliveryKey.Get(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, datastore.ErrDeliveryNotFound
		}
		return nil, errors.Wrap(err, "failed to fetch webhook delivery")
	}

	delivery := &datastore.WebhookDelivery{}
	if err = json.Unmarshal(raw, delivery); err != nil {
		return nil, errors.Wrap(err, "failed to decode webhook delivery")
	}

	return delivery, nil
}

func (d *deliveryRepo) LoadDeliveriesByWebhook(ctx context.Context, webhookID string, limit int) ([]datastore.WebhookDelivery, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	ids, err := d.client.ZRevRange(ctx, novora.WebhookDeliveriesKey.Get(webhookID), 0, stop).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load webhook deliveries")
	}

	deliveries := make([]datastore.WebhookDelivery, 0, len(ids))
	if len(ids) == 0 {
		return deliveries, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = novora.WebhookDeliveryKey.Get(id)
	}

	vals, err := d.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load webhook deliveries")
	}

	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}

		var delivery datastore.WebhookDelivery
		if err = json.Unmarshal([]byte(s), &delivery); err != nil {
			return nil, errors.Wrap(err, "failed to decode webhook delivery")
		}
		deliveries = append(deliveries, delivery)
	}

	return deliveries, nil
}

func (d *deliveryRepo) UpdateDelivery(ctx context.Context, delivery *datastore.WebhookDelivery) error {
	key := novora.WebhookDeliveryKey.Get(delivery.UID)

	next := *delivery
	next.Version = delivery.Version + 1

	data, err := json.Marshal(&next)
	if err != nil {
		return errors.Wrap(err, "failed to encode webhook delivery")
	}

	err = d.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return datastore.ErrDeliveryNotFound
			}
			return err
		}

		var stored struct {
			Version uint64 `json:"version"`
		}
		if err = json.Unmarshal(raw, &stored); err != nil {
			return err
		}

		if stored.Version != delivery.Version {
			return datastore.ErrVersionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
		delivery.Version = next.Version
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return datastore.ErrVersionConflict
	case errors.Is(err, datastore.ErrDeliveryNotFound), errors.Is(err, datastore.ErrVersionConflict):
		return err
	default:
		return errors.Wrap(err, "failed to update webhook delivery")
	}
}

func (d *deliveryRepo) DeleteDelivery(ctx context.Context, delivery *datastore.WebhookDelivery) error {
	var del *redis.IntCmd
	_, err := d.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, novora.WebhookDeliveryKey.Get(delivery.UID))
		pipe.ZRem(ctx, novora.WebhookDeliveriesKey.Get(delivery.WebhookID), delivery.UID)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete webhook delivery")
	}

	if del.Val() == 0 {
		return datastore.ErrDeliveryNotFound
	}

	return nil
}
