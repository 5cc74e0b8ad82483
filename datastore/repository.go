package datastore

import (
	"context"
	"errors"
)

var (
	ErrWebhookNotFound  = errors.New("webhook not found")
	ErrDeliveryNotFound = errors.New("webhook delivery not found")
	ErrVersionConflict  = errors.New("webhook delivery was modified concurrently")
)

type WebhookRepository interface {
	CreateWebhook(ctx context.Context, webhook *Webhook) error
	FindWebhookByID(ctx context.Context, id string) (*Webhook, error)
	LoadWebhooksByTenant(ctx context.Context, tenantID string) ([]Webhook, error)
	UpdateWebhook(ctx context.Context, webhook *Webhook) error
	DeleteWebhook(ctx context.Context, webhook *Webhook) error
}

type DeliveryRepository interface {
	CreateDelivery(ctx context.Context, delivery *WebhookDelivery) error
	FindDeliveryByID(ctx context.Context, id string) (*WebhookDelivery, error)
	// LoadDeliveriesByWebhook returns the newest deliveries first, at most limit.
	LoadDeliveriesByWebhook(ctx context.Context, webhookID string, limit int) ([]WebhookDelivery, error)
	// UpdateDelivery writes delivery only if the stored version equals
	// delivery.Version, then increments delivery.Version. A mismatch
	// returns ErrVersionConflict.
	UpdateDelivery(ctx context.Context, delivery *WebhookDelivery) error
	DeleteDelivery(ctx context.Context, delivery *WebhookDelivery) error
}
