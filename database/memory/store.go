package mstore

import (
	"context"
	"sort"
	"sync"

	"github.com/gummi-coder/Novora-sub009/datastore"
)

// Store keeps webhooks and deliveries in process memory. It backs the
// in-memory mode and the service tests.
type Store struct {
	mu         sync.RWMutex
	webhooks   map[string]datastore.Webhook
	deliveries map[string]datastore.WebhookDelivery
}

func NewStore() *Store {
	return &Store{
		webhooks:   make(map[string]datastore.Webhook),
		deliveries: make(map[string]datastore.WebhookDelivery),
	}
}

func (s *Store) WebhookRepo() datastore.WebhookRepository {
	return &webhookRepo{s: s}
}

func (s *Store) DeliveryRepo() datastore.DeliveryRepository {
	return &deliveryRepo{s: s}
}

func cloneWebhook(w datastore.Webhook) datastore.Webhook {
	w.Events = append([]string(nil), w.Events...)
	return w
}

func cloneDelivery(d datastore.WebhookDelivery) datastore.WebhookDelivery {
	d.Payload = append(datastore.Payload(nil), d.Payload...)

	if d.LastAttemptAt != nil {
		t := *d.LastAttemptAt
		d.LastAttemptAt = &t
	}

	if d.NextAttemptAt != nil {
		t := *d.NextAttemptAt
		d.NextAttemptAt = &t
	}

	if d.Response != nil {
		r := *d.Response
		r.Headers = r.Headers.Clone()
		d.Response = &r
	}

	return d
}

type webhookRepo struct {
	s *Store
}

func (r *webhookRepo) CreateWebhook(_ context.Context, webhook *datastore.Webhook) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.webhooks[webhook.UID] = cloneWebhook(*webhook)
	return nil
}

func (r *webhookRepo) FindWebhookByID(_ context.Context, id string) (*datastore.Webhook, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	w, ok := r.s.webhooks[id]
	if !ok {
		return nil, datastore.ErrWebhookNotFound
	}

	w = cloneWebhook(w)
	return &w, nil
}

func (r *webhookRepo) LoadWebhooksByTenant(_ context.Context, tenantID string) ([]datastore.Webhook, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	webhooks := make([]datastore.Webhook, 0)
	for _, w := range r.s.webhooks {
		if w.TenantID == tenantID {
			webhooks = append(webhooks, cloneWebhook(w))
		}
	}

	sort.Slice(webhooks, func(i, j int) bool {
		return webhooks[i].UID < webhooks[j].UID
	})

	return webhooks, nil
}

func (r *webhookRepo) UpdateWebhook(_ context.Context, webhook *datastore.Webhook) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.webhooks[webhook.UID]; !ok {
		return datastore.ErrWebhookNotFound
	}

	r.s.webhooks[webhook.UID] = cloneWebhook(*webhook)
	return nil
}

func (r *webhookRepo) DeleteWebhook(_ context.Context, webhook *datastore.Webhook) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.webhooks[webhook.UID]; !ok {
		return datastore.ErrWebhookNotFound
	}

	delete(r.s.webhooks, webhook.UID)
	return nil
}

type deliveryRepo struct {
	s *Store
}

func (r *deliveryRepo) CreateDelivery(_ context.Context, delivery *datastore.WebhookDelivery) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.deliveries[delivery.UID] = cloneDelivery(*delivery)
	return nil
}

func (r *deliveryRepo) FindDeliveryByID(_ context.Context, id string) (*datastore.WebhookDelivery, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.deliveries[id]
	if !ok {
		return nil, datastore.ErrDeliveryNotFound
	}

	d = cloneDelivery(d)
	return &d, nil
}

func (r *deliveryRepo) LoadDeliveriesByWebhook(_ context.Context, webhookID string, limit int) ([]datastore.WebhookDelivery, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	deliveries := make([]datastore.WebhookDelivery, 0)
	for _, d := range r.s.deliveries {
		if d.WebhookID == webhookID {
			deliveries = append(deliveries, cloneDelivery(d))
		}
	}

	sort.Slice(deliveries, func(i, j int) bool {
		if deliveries[i].CreatedAt.Equal(deliveries[j].CreatedAt) {
			return deliveries[i].UID > deliveries[j].UID
		}
		return deliveries[i].CreatedAt.After(deliveries[j].CreatedAt)
	})

	if limit > 0 && len(deliveries) > limit {
		deliveries = deliveries[:limit]
	}

	return deliveries, nil
}

func (r *deliveryRepo) UpdateDelivery(_ context.Context, delivery *datastore.WebhookDelivery) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.deliveries[delivery.UID]
	if !ok {
		return datastore.ErrDeliveryNotFound
	}

	if stored.Version != delivery.Version {
		return datastore.ErrVersionConflict
	}

	delivery.Version++
	r.s.deliveries[delivery.UID] = cloneDelivery(*delivery)
	return nil
}

func (r *deliveryRepo) DeleteDelivery(_ context.Context, delivery *datastore.WebhookDelivery) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.deliveries[delivery.UID]; !ok {
		return datastore.ErrDeliveryNotFound
	}

	delete(r.s.deliveries, delivery.UID)
	return nil
}
