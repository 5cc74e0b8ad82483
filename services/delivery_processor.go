package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/config"
	"github.com/gummi-coder/Novora-sub009/config/algo"
	"github.com/gummi-coder/Novora-sub009/datastore"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/limiter"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/locker"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/metrics"
	"github.com/gummi-coder/Novora-sub009/net"
	"github.com/gummi-coder/Novora-sub009/pkg/audit"
	"github.com/gummi-coder/Novora-sub009/pkg/log"
	"github.com/gummi-coder/Novora-sub009/pkg/signature"
	"github.com/gummi-coder/Novora-sub009/queue"
	"github.com/gummi-coder/Novora-sub009/retrystrategies"
)

// ErrDeliveryLocked means another processor holds the delivery. The caller
// should try again later.
var ErrDeliveryLocked = errors.New("webhook delivery is being processed elsewhere")

const defaultLockTTL = 30 * time.Second

type Dispatcher interface {
	SendRequest(ctx context.Context, endpoint string, method novora.HttpMethod, payload []byte, headers http.Header, timeout time.Duration) (*net.Response, error)
}

// DeliveryProcessor performs delivery attempts and applies the retry policy.
type DeliveryProcessor struct {
	WebhookRepo  datastore.WebhookRepository
	DeliveryRepo datastore.DeliveryRepository
	Queue        queue.Queuer
	Dispatcher   Dispatcher
	Locker       locker.Locker
	Limiter      limiter.RateLimiter
	Audit        audit.Logger
	Metrics      *metrics.Metrics
	Logger       log.StdLogger

	Config config.DeliveryConfiguration
	// SignatureHash names the HMAC hash; empty means SHA256.
	SignatureHash string
}

// ProcessWebhookDelivery makes one delivery attempt for deliveryID. Endpoint
// failures are recorded on the delivery and never returned; the returned
// error is for store, lock and queue failures only.
func (p *DeliveryProcessor) ProcessWebhookDelivery(ctx context.Context, deliveryID string) error {
	lockTTL := p.Config.LockExpiry()
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}

	unlock, err := p.Locker.Lock(ctx, novora.DeliveryLockKeyPrefix.Get(deliveryID), lockTTL)
	if err != nil {
		if errors.Is(err, locker.ErrLockNotAcquired) {
			return ErrDeliveryLocked
		}
		return errors.Wrap(err, "failed to lock delivery")
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			p.Logger.WithError(err).Warnf("failed to release lock for delivery %s", deliveryID)
		}
	}()

	delivery, err := p.DeliveryRepo.FindDeliveryByID(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, datastore.ErrDeliveryNotFound) {
			p.Logger.Warnf("delivery %s no longer exists, dropping task", deliveryID)
			return nil
		}
		return errors.Wrap(err, "failed to fetch delivery")
	}

	if delivery.IsTerminal() {
		p.Logger.Debugf("delivery %s is already %s", delivery.UID, delivery.Status)
		return nil
	}

	webhook, err := p.WebhookRepo.FindWebhookByID(ctx, delivery.WebhookID)
	switch {
	case errors.Is(err, datastore.ErrWebhookNotFound):
		return p.discard(ctx, delivery, "webhook deleted")
	case err != nil:
		return errors.Wrap(err, "failed to fetch webhook")
	case !webhook.IsActive():
		return p.discard(ctx, delivery, "webhook inactive")
	}

	if p.Config.RateLimit.Enabled {
		err = p.Limiter.Allow(ctx, webhook.UID, p.Config.RateLimit.Rate, p.Config.RateLimit.Duration)
		if errors.Is(err, limiter.ErrRateLimitExceeded) {
			delay := limiter.GetRetryAfter(err)
			p.Metrics.RecordDefer("rate_limited")
			p.Logger.Debugf("delivery %s rate limited, deferring by %s", delivery.UID, delay)
			return EnqueueDelivery(ctx, p.Queue, delivery.UID, delay)
		}
		if err != nil {
			p.Logger.WithError(err).Warn("rate limiter unavailable, sending anyway")
		}
	}

	return p.attempt(ctx, webhook, delivery)
}

func (p *DeliveryProcessor) attempt(ctx context.Context, webhook *datastore.Webhook, delivery *datastore.WebhookDelivery) error {
	hash := p.SignatureHash
	if hash == "" {
		hash = algo.SHA256
	}

	sig, err := signature.Compute(hash, webhook.Secret, delivery.Payload.Bytes())
	if err != nil {
		return errors.Wrap(err, "failed to sign payload")
	}

	headers := http.Header{}
	headers.Set(novora.SignatureHeader, sig)
	headers.Set(novora.EventHeader, delivery.Event)
	headers.Set(novora.DeliveryIDHeader, delivery.UID)

	start := time.Now()
	resp, sendErr := p.Dispatcher.SendRequest(ctx, webhook.URL, novora.HttpPost, delivery.Payload.Bytes(), headers, p.Config.Timeout())
	took := time.Since(start)

	now := time.Now()
	delivery.Attempts++
	delivery.LastAttemptAt = &now
	delivery.UpdatedAt = now
	delivery.Response = toDeliveryResponse(resp, sendErr)

	var action string
	changes := map[string]interface{}{
		"webhook_id": webhook.UID,
		"attempts":   delivery.Attempts,
	}
	if delivery.Response.StatusCode != 0 {
		changes["status_code"] = delivery.Response.StatusCode
	}

	retry := false
	switch {
	case sendErr == nil && resp.IsSuccess():
		delivery.Status = datastore.DeliveredDeliveryStatus
		delivery.NextAttemptAt = nil
		action = audit.ActionDelivered
	case delivery.Attempts < webhook.RetryConfig.MaxRetries:
		next := now.Add(retrystrategies.NewRetryStrategyFromConfig(webhook.RetryConfig).NextDuration(uint64(delivery.Attempts)))
		delivery.Status = datastore.FailedDeliveryStatus
		delivery.NextAttemptAt = &next
		changes["next_attempt_at"] = next
		changes["error"] = delivery.Response.Error
		action = audit.ActionDeliveryFailed
		retry = true
	default:
		delivery.Status = datastore.ExhaustedDeliveryStatus
		delivery.NextAttemptAt = nil
		changes["error"] = delivery.Response.Error
		action = audit.ActionDeliveryExhausted
	}
	changes["status"] = delivery.Status

	if err = p.DeliveryRepo.UpdateDelivery(ctx, delivery); err != nil {
		if errors.Is(err, datastore.ErrVersionConflict) {
			p.Logger.Warnf("delivery %s changed during the attempt, dropping result", delivery.UID)
			return nil
		}
		return errors.Wrap(err, "failed to update delivery")
	}

	p.Metrics.RecordAttempt(string(delivery.Status), took)
	p.Audit.Log(ctx, audit.Entry{
		Action:       action,
		ResourceType: audit.ResourceWebhookDelivery,
		ResourceID:   delivery.UID,
		Changes:      changes,
	})

	if retry {
		return EnqueueDelivery(ctx, p.Queue, delivery.UID, delivery.NextAttemptAt.Sub(now))
	}

	return nil
}

func (p *DeliveryProcessor) discard(ctx context.Context, delivery *datastore.WebhookDelivery, reason string) error {
	delivery.Status = datastore.DiscardedDeliveryStatus
	delivery.NextAttemptAt = nil
	delivery.UpdatedAt = time.Now()

	if err := p.DeliveryRepo.UpdateDelivery(ctx, delivery); err != nil {
		if errors.Is(err, datastore.ErrVersionConflict) {
			return nil
		}
		return errors.Wrap(err, "failed to discard delivery")
	}

	p.Metrics.RecordAttempt(string(delivery.Status), 0)
	p.Audit.Log(ctx, audit.Entry{
		Action:       audit.ActionDeliveryDiscarded,
		ResourceType: audit.ResourceWebhookDelivery,
		ResourceID:   delivery.UID,
		Changes:      map[string]interface{}{"webhook_id": delivery.WebhookID, "reason": reason},
	})

	return nil
}

func toDeliveryResponse(resp *net.Response, sendErr error) *datastore.DeliveryResponse {
	dr := &datastore.DeliveryResponse{}

	if resp != nil {
		dr.StatusCode = resp.StatusCode
		dr.Body = string(resp.Body)
		dr.Headers = resp.ResponseHeader
	}

	switch {
	case sendErr != nil:
		dr.Error = sendErr.Error()
	case resp != nil && !resp.IsSuccess():
		dr.Error = fmt.Sprintf("endpoint responded with status %d", resp.StatusCode)
	}

	return dr
}
