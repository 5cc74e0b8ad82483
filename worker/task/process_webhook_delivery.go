package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/gummi-coder/Novora-sub009/pkg/log"
	"github.com/gummi-coder/Novora-sub009/services"
)

// lockRetryDelay is how long a task waits when its delivery is locked.
const lockRetryDelay = 2 * time.Second

type DeliveryProcessor interface {
	ProcessWebhookDelivery(ctx context.Context, deliveryID string) error
}

func ProcessWebhookDelivery(p DeliveryProcessor) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		dt, err := services.DecodeDeliveryTask(t.Payload())
		if err != nil {
			log.FromContext(ctx).WithError(err).Error("dropping malformed delivery task")
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		ctx = log.NewContext(ctx, log.FromContext(ctx), log.Fields{"delivery_id": dt.DeliveryID})

		err = p.ProcessWebhookDelivery(ctx, dt.DeliveryID)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, services.ErrDeliveryLocked):
			return NewDeferError(lockRetryDelay, err)
		default:
			log.FromContext(ctx).WithError(err).Error("failed to process webhook delivery")
			return err
		}
	}
}
