package services

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"

	"github.com/gummi-coder/Novora-sub009/datastore"
	"github.com/gummi-coder/Novora-sub009/pkg/apperror"
	"github.com/gummi-coder/Novora-sub009/pkg/audit"
)

// TriggerWebhook records a pending delivery of payload for event and queues
// it for immediate processing. payload may be a datastore.Payload, raw JSON
// bytes or any JSON-marshalable value.
func (s *WebhookService) TriggerWebhook(ctx context.Context, webhookID, event string, payload interface{}) (*datastore.WebhookDelivery, error) {
	fields := map[string]interface{}{"webhook_id": webhookID, "event": event}

	webhook, err := s.WebhookRepo.FindWebhookByID(ctx, webhookID)
	if err != nil {
		if errors.Is(err, datastore.ErrWebhookNotFound) {
			return nil, s.fail(ctx, apperror.WebhookNotFound, "webhook not found", err, fields)
		}
		return nil, s.fail(ctx, apperror.WebhookTriggerFailed, "failed to fetch webhook", err, fields)
	}

	if !webhook.IsActive() {
		return nil, s.fail(ctx, apperror.WebhookInactive, "webhook is not active", nil, fields)
	}

	if !webhook.IsSubscribed(event) {
		return nil, s.fail(ctx, apperror.InvalidWebhookEvent, "webhook is not subscribed to event", nil, fields)
	}

	body, err := datastore.NewPayload(payload)
	if err != nil {
		return nil, s.fail(ctx, apperror.WebhookTriggerFailed, "payload is not valid json", err, fields)
	}

	now := time.Now()
	delivery := &datastore.WebhookDelivery{
		UID:       ulid.Make().String(),
		WebhookID: webhook.UID,
		Event:     event,
		Payload:   body,
		Status:    datastore.PendingDeliveryStatus,
		Attempts:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.DeliveryRepo.CreateDelivery(ctx, delivery); err != nil {
		return nil, s.fail(ctx, apperror.WebhookTriggerFailed, "failed to store delivery", err, fields)
	}

	if err = EnqueueDelivery(ctx, s.Queue, delivery.UID, 0); err != nil {
		fields["delivery_id"] = delivery.UID
		// an unqueued pending delivery would never be picked up
		if derr := s.DeliveryRepo.DeleteDelivery(ctx, delivery); derr != nil {
			s.Logger.WithError(derr).Errorf("failed to remove unqueued delivery %s", delivery.UID)
		}
		return nil, s.fail(ctx, apperror.WebhookTriggerFailed, "failed to queue delivery", err, fields)
	}

	s.Metrics.RecordTrigger(event)

	s.Audit.Log(ctx, audit.Entry{
		Action:       audit.ActionWebhookTriggered,
		ResourceType: audit.ResourceWebhookDelivery,
		ResourceID:   delivery.UID,
		Changes: map[string]interface{}{
			"webhook_id": webhook.UID,
			"event":      event,
			"status":     delivery.Status,
		},
	})

	return delivery, nil
}
