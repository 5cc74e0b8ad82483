package datastore

import (
	"net/http"
	"time"
)

type WebhookStatus string

type DeliveryStatus string

const (
	ActiveWebhookStatus   WebhookStatus = "active"
	InactiveWebhookStatus WebhookStatus = "inactive"
)

func (s WebhookStatus) IsValid() bool {
	switch s {
	case ActiveWebhookStatus, InactiveWebhookStatus:
		return true
	default:
		return false
	}
}

const (
	// PendingDeliveryStatus: queued, no attempt made yet (or manually replayed).
	PendingDeliveryStatus DeliveryStatus = "pending"
	// DeliveredDeliveryStatus: the endpoint answered 2xx. Terminal.
	DeliveredDeliveryStatus DeliveryStatus = "delivered"
	// FailedDeliveryStatus: the last attempt failed and a retry is scheduled.
	FailedDeliveryStatus DeliveryStatus = "failed"
	// ExhaustedDeliveryStatus: the last attempt failed and no retries remain. Terminal.
	ExhaustedDeliveryStatus DeliveryStatus = "exhausted"
	// DiscardedDeliveryStatus: the webhook was deleted or deactivated before delivery. Terminal.
	DiscardedDeliveryStatus DeliveryStatus = "discarded"
)

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case PendingDeliveryStatus, DeliveredDeliveryStatus, FailedDeliveryStatus,
		ExhaustedDeliveryStatus, DiscardedDeliveryStatus:
		return true
	default:
		return false
	}
}

func (s DeliveryStatus) IsTerminal() bool {
	switch s {
	case DeliveredDeliveryStatus, ExhaustedDeliveryStatus, DiscardedDeliveryStatus:
		return true
	default:
		return false
	}
}

type RetryConfig struct {
	MaxRetries uint `json:"max_retries"`
	// RetryDelay is the base delay in milliseconds.
	RetryDelay    uint64  `json:"retry_delay"`
	BackoffFactor float64 `json:"backoff_factor"`
}

type Webhook struct {
	UID         string        `json:"id"`
	TenantID    string        `json:"tenant_id"`
	Name        string        `json:"name"`
	URL         string        `json:"url"`
	Events      []string      `json:"events"`
	Secret      string        `json:"secret"`
	Status      WebhookStatus `json:"status"`
	RetryConfig RetryConfig   `json:"retry_config"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *Webhook) IsActive() bool {
	return w.Status == ActiveWebhookStatus
}

func (w *Webhook) IsSubscribed(event string) bool {
	for _, e := range w.Events {
		if e == event {
			return true
		}
	}
	return false
}

type DeliveryResponse struct {
	StatusCode int         `json:"status_code"`
	Body       string      `json:"body"`
	Headers    http.Header `json:"headers,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type WebhookDelivery struct {
	UID           string            `json:"id"`
	WebhookID     string            `json:"webhook_id"`
	Event         string            `json:"event"`
	Payload       Payload           `json:"payload"`
	Status        DeliveryStatus    `json:"status"`
	Attempts      uint              `json:"attempts"`
	LastAttemptAt *time.Time        `json:"last_attempt_at,omitempty"`
	NextAttemptAt *time.Time        `json:"next_attempt_at,omitempty"`
	Response      *DeliveryResponse `json:"response,omitempty"`

	// Version increases on every successful write; updates are
	// conditional on the stored version matching.
	Version uint64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *WebhookDelivery) IsTerminal() bool {
	return d.Status.IsTerminal()
}
