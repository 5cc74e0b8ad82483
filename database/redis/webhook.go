package rstore

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/cache"
	"github.com/gummi-coder/Novora-sub009/datastore"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/rdb"
)

type webhookRepo struct {
	client redis.UniversalClient
	cache  cache.Cache
}

func NewWebhookRepo(r *rdb.Redis, ca cache.Cache) datastore.WebhookRepository {
	if ca == nil {
		ca = cache.NewNoopCache()
	}
	return &webhookRepo{client: r.Client(), cache: ca}
}

func (w *webhookRepo) CreateWebhook(ctx context.Context, webhook *datastore.Webhook) error {
	data, err := json.Marshal(webhook)
	if err != nil {
		return errors.Wrap(err, "failed to encode webhook")
	}

	_, err = w.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, novora.WebhookKey.Get(webhook.UID), data, 0)
		pipe.SAdd(ctx, novora.TenantWebhooksKey.Get(webhook.TenantID), webhook.UID)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to create webhook")
	}

	return nil
}

func (w *webhookRepo) FindWebhookByID(ctx context.Context, id string) (*datastore.Webhook, error) {
	cacheKey := novora.WebhookCacheKey.Get(id).String()

	var cached datastore.Webhook
	err := w.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		return &cached, nil
	}

	raw, err := w.client.Get(ctx, novora.WebhookKey.Get(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, datastore.ErrWebhookNotFound
		}
		return nil, errors.Wrap(err, "failed to fetch webhook")
	}

	webhook := &datastore.Webhook{}
	if err = json.Unmarshal(raw, webhook); err != nil {
		return nil, errors.Wrap(err, "failed to decode webhook")
	}

	// a cache write failure must not fail the read
	_ = w.cache.Set(ctx, cacheKey, webhook, novora.CACHE_TTL)

	return webhook, nil
}

func (w *webhookRepo) LoadWebhooksByTenant(ctx context.Context, tenantID string) ([]datastore.Webhook, error) {
	ids, err := w.client.SMembers(ctx, novora.TenantWebhooksKey.Get(tenantID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tenant webhooks")
	}

	webhooks := make([]datastore.Webhook, 0, len(ids))
	if len(ids) == 0 {
		return webhooks, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = novora.WebhookKey.Get(id)
	}

	vals, err := w.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tenant webhooks")
	}

	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}

		var webhook datastore.Webhook
		if err = json.Unmarshal([]byte(s), &webhook); err != nil {
			return nil, errors.Wrap(err, "failed to decode webhook")
		}
		webhooks = append(webhooks, webhook)
	}

	sort.Slice(webhooks, func(i, j int) bool {
		return webhooks[i].UID < webhooks[j].UID
	})

	return webhooks, nil
}

func (w *webhookRepo) UpdateWebhook(ctx context.Context, webhook *datastore.Webhook) error {
	data, err := json.Marshal(webhook)
	if err != nil {
		return errors.Wrap(err, "failed to encode webhook")
	}

	ok, err := w.client.SetXX(ctx, novora.WebhookKey.Get(webhook.UID), data, redis.KeepTTL).Result()
	if err != nil {
		return errors.Wrap(err, "failed to update webhook")
	}

	if !ok {
		return datastore.ErrWebhookNotFound
	}

	return w.cache.Delete(ctx, novora.WebhookCacheKey.Get(webhook.UID).String())
}

func (w *webhookRepo) DeleteWebhook(ctx context.Context, webhook *datastore.Webhook) error {
	var del *redis.IntCmd
	_, err := w.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, novora.WebhookKey.Get(webhook.UID))
		pipe.SRem(ctx, novora.TenantWebhooksKey.Get(webhook.TenantID), webhook.UID)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete webhook")
	}

	if del.Val() == 0 {
		return datastore.ErrWebhookNotFound
	}

	return w.cache.Delete(ctx, novora.WebhookCacheKey.Get(webhook.UID).String())
}
