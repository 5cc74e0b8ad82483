package models

import (
	"encoding/json"
	"time"

	"github.com/gummi-coder/Novora-sub009/datastore"
	"github.com/gummi-coder/Novora-sub009/util"
)

type CreateWebhook struct {
	// Human-readable label for the webhook.
	Name string `json:"name" valid:"required~please provide a name for your webhook"`

	// URL receives the signed POST requests. Only http and https urls are accepted.
	URL string `json:"url" valid:"required~please provide a url for your webhook,http_url~please provide a valid http or https url"`

	// Events the webhook subscribes to. Duplicates are dropped.
	Events []string `json:"events" valid:"required~please provide at least one event"`

	// RetryConfig overrides the default retry policy. Zero fields take the defaults.
	RetryConfig *RetryConfig `json:"retry_config"`
}

type RetryConfig struct {
	MaxRetries uint `json:"max_retries"`

	// RetryDelay is in milliseconds.
	RetryDelay    uint64  `json:"retry_delay"`
	BackoffFactor float64 `json:"backoff_factor"`
}

func (cw *CreateWebhook) Validate() error {
	return util.Validate(cw)
}

func (cw *CreateWebhook) Transform() *datastore.RetryConfig {
	if cw.RetryConfig == nil {
		return nil
	}

	return &datastore.RetryConfig{
		MaxRetries:    cw.RetryConfig.MaxRetries,
		RetryDelay:    cw.RetryConfig.RetryDelay,
		BackoffFactor: cw.RetryConfig.BackoffFactor,
	}
}

type UpdateWebhookStatus struct {
	Status string `json:"status" valid:"required~please provide a status,webhook_status~status must be one of active or inactive"`
}

func (us *UpdateWebhookStatus) Validate() error {
	return util.Validate(us)
}

type TriggerWebhook struct {
	Event string `json:"event" valid:"required~please provide an event"`

	// Payload is any JSON value. It is signed and sent as the request body.
	Payload json.RawMessage `json:"payload"`
}

func (tw *TriggerWebhook) Validate() error {
	return util.Validate(tw)
}

// WebhookResponse hides the secret; it is only returned on creation.
type WebhookResponse struct {
	UID         string                  `json:"id"`
	TenantID    string                  `json:"tenant_id"`
	Name        string                  `json:"name"`
	URL         string                  `json:"url"`
	Events      []string                `json:"events"`
	Secret      string                  `json:"secret,omitempty"`
	Status      datastore.WebhookStatus `json:"status"`
	RetryConfig datastore.RetryConfig   `json:"retry_config"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

func NewWebhookResponse(w *datastore.Webhook, withSecret bool) *WebhookResponse {
	resp := &WebhookResponse{
		UID:         w.UID,
		TenantID:    w.TenantID,
		Name:        w.Name,
		URL:         w.URL,
		Events:      w.Events,
		Status:      w.Status,
		RetryConfig: w.RetryConfig,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}

	if withSecret {
		resp.Secret = w.Secret
	}

	return resp
}

func NewWebhookListResponse(webhooks []datastore.Webhook) []*WebhookResponse {
	resp := make([]*WebhookResponse, 0, len(webhooks))
	for i := range webhooks {
		resp = append(resp, NewWebhookResponse(&webhooks[i], false))
	}
	return resp
}
