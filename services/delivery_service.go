package services

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/gummi-coder/Novora-sub009/datastore"
	"github.com/gummi-coder/Novora-sub009/pkg/apperror"
	"github.com/gummi-coder/Novora-sub009/pkg/audit"
)

const defaultDeliveryListLimit = 50

func (s *WebhookService) GetDelivery(ctx context.Context, id string) (*datastore.WebhookDelivery, error) {
	delivery, err := s.DeliveryRepo.FindDeliveryByID(ctx, id)
	if err != nil {
		if errors.Is(err, datastore.ErrDeliveryNotFound) {
			return nil, s.fail(ctx, apperror.DeliveryNotFound, "delivery not found", err, map[string]interface{}{"delivery_id": id})
		}
		return nil, errors.Wrap(err, "failed to fetch delivery")
	}

	return delivery, nil
}

// ListDeliveries returns a webhook's deliveries, newest first. A limit of
// zero or less uses the default page size.
func (s *WebhookService) ListDeliveries(ctx context.Context, webhookID string, limit int) ([]datastore.WebhookDelivery, error) {
	if limit <= 0 {
		limit = defaultDeliveryListLimit
	}

	deliveries, err := s.DeliveryRepo.LoadDeliveriesByWebhook(ctx, webhookID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load deliveries")
	}

	return deliveries, nil
}

// RetryDelivery puts an exhausted or discarded delivery back to pending and
// queues it. Attempts are kept, so an exhausted delivery gets exactly one more
// attempt. Pending and failed deliveries already have a queued task and are
// not retryable.
func (s *WebhookService) RetryDelivery(ctx context.Context, id string) (*datastore.WebhookDelivery, error) {
	delivery, err := s.GetDelivery(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"delivery_id": id, "status": delivery.Status}

	switch delivery.Status {
	case datastore.ExhaustedDeliveryStatus, datastore.DiscardedDeliveryStatus:
	default:
		return nil, s.fail(ctx, apperror.DeliveryNotRetryable, "only exhausted or discarded deliveries can be retried", nil, fields)
	}

	from := delivery.Status
	delivery.Status = datastore.PendingDeliveryStatus
	delivery.NextAttemptAt = nil
	delivery.UpdatedAt = time.Now()

	if err = s.DeliveryRepo.UpdateDelivery(ctx, delivery); err != nil {
		return nil, s.fail(ctx, apperror.DeliveryRetryFailed, "failed to update delivery", err, fields)
	}

	if err = EnqueueDelivery(ctx, s.Queue, delivery.UID, 0); err != nil {
		return nil, s.fail(ctx, apperror.DeliveryRetryFailed, "failed to queue delivery", err, fields)
	}

	s.Audit.Log(ctx, audit.Entry{
		Action:       audit.ActionDeliveryRetried,
		ResourceType: audit.ResourceWebhookDelivery,
		ResourceID:   delivery.UID,
		Changes:      map[string]interface{}{"status": map[string]interface{}{"from": from, "to": delivery.Status}},
	})

	return delivery, nil
}
