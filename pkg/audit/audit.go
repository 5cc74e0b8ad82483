package audit

import (
	"context"

	"github.com/gummi-coder/Novora-sub009/pkg/log"
)

const (
	ActionWebhookCreated       = "webhook.created"
	ActionWebhookStatusUpdated = "webhook.status_updated"
	ActionWebhookDeleted       = "webhook.deleted"
	ActionWebhookTriggered     = "webhook.triggered"
	ActionDelivered            = "webhook.delivered"
	ActionDeliveryFailed       = "webhook.delivery_failed"
	ActionDeliveryExhausted    = "webhook.delivery_exhausted"
	ActionDeliveryDiscarded    = "webhook.delivery_discarded"
	ActionDeliveryRetried      = "webhook.delivery_retried"

	ResourceWebhook         = "webhook"
	ResourceWebhookDelivery = "webhook_delivery"
)

type Entry struct {
	Action       string
	ResourceType string
	ResourceID   string
	Changes      map[string]interface{}
}

// Logger records audit entries. Log never fails the caller.
type Logger interface {
	Log(ctx context.Context, e Entry)
}

type logLogger struct {
	logger log.StdLogger
}

func NewLogger(logger log.StdLogger) Logger {
	return &logLogger{logger: logger}
}

func (l *logLogger) Log(_ context.Context, e Entry) {
	defer func() {
		// fire-and-forget
		_ = recover()
	}()

	l.logger.WithFields(log.Fields{
		"audit":         true,
		"action":        e.Action,
		"resource_type": e.ResourceType,
		"resource_id":   e.ResourceID,
		"changes":       e.Changes,
	}).Info("audit")
}

type noopLogger struct{}

// NoopLogger discards every entry.
func NoopLogger() Logger { return noopLogger{} }

func (noopLogger) Log(context.Context, Entry) {}
