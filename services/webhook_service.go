package services

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/datastore"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/metrics"
	"github.com/gummi-coder/Novora-sub009/pkg/apperror"
	"github.com/gummi-coder/Novora-sub009/pkg/audit"
	"github.com/gummi-coder/Novora-sub009/pkg/log"
	"github.com/gummi-coder/Novora-sub009/queue"
	"github.com/gummi-coder/Novora-sub009/util"
)

// WebhookService owns webhook registration and the creation of deliveries.
type WebhookService struct {
	WebhookRepo  datastore.WebhookRepository
	DeliveryRepo datastore.DeliveryRepository
	Queue        queue.Queuer
	Reporter     apperror.Reporter
	Audit        audit.Logger
	Metrics      *metrics.Metrics
	Logger       log.StdLogger

	// RetryDefaults fills the retry policy of webhooks created without one.
	RetryDefaults datastore.RetryConfig
}

func (s *WebhookService) defaultRetryConfig() datastore.RetryConfig {
	rc := s.RetryDefaults
	if rc.MaxRetries == 0 {
		rc.MaxRetries = novora.DEFAULT_MAX_RETRIES
	}
	if rc.RetryDelay == 0 {
		rc.RetryDelay = novora.DEFAULT_RETRY_DELAY_MS
	}
	if rc.BackoffFactor == 0 {
		rc.BackoffFactor = novora.DEFAULT_BACKOFF_FACTOR
	}
	return rc
}

// fail builds an application error, reports it and returns it.
func (s *WebhookService) fail(ctx context.Context, code apperror.Code, message string, cause error, fields map[string]interface{}) *apperror.Error {
	if cause == nil {
		return s.Reporter.Create(ctx, code, apperror.CategoryValidation, apperror.SeverityError, message, fields)
	}

	e := apperror.Wrap(cause, code, apperror.CategoryValidation, apperror.SeverityError, message, fields)
	s.Reporter.Report(ctx, e)
	return e
}

// CreateWebhook registers a webhook for tenantID. A nil retryConfig takes the
// defaults; zero fields of a supplied one are filled individually.
func (s *WebhookService) CreateWebhook(ctx context.Context, tenantID, name, url string, events []string, retryConfig *datastore.RetryConfig) (*datastore.Webhook, error) {
	fields := map[string]interface{}{"tenant_id": tenantID, "url": url}

	secret, err := util.GenerateSecret()
	if err != nil {
		return nil, s.fail(ctx, apperror.WebhookCreationFailed, "failed to generate webhook secret", err, fields)
	}

	rc := s.defaultRetryConfig()
	if retryConfig != nil {
		if retryConfig.MaxRetries != 0 {
			rc.MaxRetries = retryConfig.MaxRetries
		}
		if retryConfig.RetryDelay != 0 {
			rc.RetryDelay = retryConfig.RetryDelay
		}
		if retryConfig.BackoffFactor != 0 {
			rc.BackoffFactor = retryConfig.BackoffFactor
		}
	}

	now := time.Now()
	webhook := &datastore.Webhook{
		UID:         ulid.Make().String(),
		TenantID:    tenantID,
		Name:        name,
		URL:         url,
		Events:      util.UniqueStrings(events),
		Secret:      secret,
		Status:      datastore.ActiveWebhookStatus,
		RetryConfig: rc,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = datastore.ValidateWebhook(webhook); err != nil {
		fields["errors"] = err.Error()
		return nil, s.fail(ctx, apperror.WebhookCreationFailed, "webhook failed validation", err, fields)
	}

	if err = s.WebhookRepo.CreateWebhook(ctx, webhook); err != nil {
		return nil, s.fail(ctx, apperror.WebhookCreationFailed, "failed to store webhook", err, fields)
	}

	s.Audit.Log(ctx, audit.Entry{
		Action:       audit.ActionWebhookCreated,
		ResourceType: audit.ResourceWebhook,
		ResourceID:   webhook.UID,
		Changes: map[string]interface{}{
			"tenant_id":    webhook.TenantID,
			"name":         webhook.Name,
			"url":          webhook.URL,
			"events":       webhook.Events,
			"retry_config": webhook.RetryConfig,
		},
	})

	return webhook, nil
}

func (s *WebhookService) GetWebhook(ctx context.Context, id string) (*datastore.Webhook, error) {
	webhook, err := s.WebhookRepo.FindWebhookByID(ctx, id)
	if err != nil {
		if errors.Is(err, datastore.ErrWebhookNotFound) {
			return nil, s.fail(ctx, apperror.WebhookNotFound, "webhook not found", err, map[string]interface{}{"webhook_id": id})
		}
		return nil, errors.Wrap(err, "failed to fetch webhook")
	}

	return webhook, nil
}

func (s *WebhookService) ListWebhooks(ctx context.Context, tenantID string) ([]datastore.Webhook, error) {
	webhooks, err := s.WebhookRepo.LoadWebhooksByTenant(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load webhooks")
	}

	return webhooks, nil
}

func (s *WebhookService) UpdateWebhookStatus(ctx context.Context, id string, status datastore.WebhookStatus) (*datastore.Webhook, error) {
	fields := map[string]interface{}{"webhook_id": id, "status": status}

	if !status.IsValid() {
		return nil, s.fail(ctx, apperror.InvalidWebhookStatus, "status must be active or inactive", nil, fields)
	}

	webhook, err := s.GetWebhook(ctx, id)
	if err != nil {
		return nil, err
	}

	if webhook.Status == status {
		return webhook, nil
	}

	from := webhook.Status
	webhook.Status = status
	webhook.UpdatedAt = time.Now()

	if err = s.WebhookRepo.UpdateWebhook(ctx, webhook); err != nil {
		if errors.Is(err, datastore.ErrWebhookNotFound) {
			return nil, s.fail(ctx, apperror.WebhookNotFound, "webhook not found", err, fields)
		}
		return nil, s.fail(ctx, apperror.WebhookUpdateFailed, "failed to update webhook status", err, fields)
	}

	s.Audit.Log(ctx, audit.Entry{
		Action:       audit.ActionWebhookStatusUpdated,
		ResourceType: audit.ResourceWebhook,
		ResourceID:   webhook.UID,
		Changes:      map[string]interface{}{"status": map[string]interface{}{"from": from, "to": status}},
	})

	return webhook, nil
}

// DeleteWebhook removes the webhook. Its deliveries are kept and any still
// queued are discarded when processed.
func (s *WebhookService) DeleteWebhook(ctx context.Context, id string) error {
	webhook, err := s.GetWebhook(ctx, id)
	if err != nil {
		return err
	}

	if err = s.WebhookRepo.DeleteWebhook(ctx, webhook); err != nil {
		fields := map[string]interface{}{"webhook_id": id}
		if errors.Is(err, datastore.ErrWebhookNotFound) {
			return s.fail(ctx, apperror.WebhookNotFound, "webhook not found", err, fields)
		}
		return s.fail(ctx, apperror.WebhookUpdateFailed, "failed to delete webhook", err, fields)
	}

	s.Audit.Log(ctx, audit.Entry{
		Action:       audit.ActionWebhookDeleted,
		ResourceType: audit.ResourceWebhook,
		ResourceID:   webhook.UID,
		Changes:      map[string]interface{}{"tenant_id": webhook.TenantID},
	})

	return nil
}
