package services

import (
	"context"
	"time"

	"github.com/pkg/errors"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/queue"
	"github.com/gummi-coder/Novora-sub009/util"
)

// DeliveryTask is the queued unit of work. Only the id travels; the
// processor always reloads the delivery.
type DeliveryTask struct {
	DeliveryID string `json:"delivery_id"`
}

// EnqueueDelivery schedules deliveryID for processing after delay.
func EnqueueDelivery(ctx context.Context, q queue.Queuer, deliveryID string, delay time.Duration) error {
	payload, err := util.EncodeMsgPack(DeliveryTask{DeliveryID: deliveryID})
	if err != nil {
		return errors.Wrap(err, "failed to encode delivery task")
	}

	job := &queue.Job{
		ID:      deliveryID,
		Payload: payload,
		Delay:   delay,
	}

	if err = q.Write(ctx, novora.WebhookDeliveryProcessor, novora.WebhookDeliveryQueue, job); err != nil {
		return errors.Wrap(err, "failed to enqueue delivery")
	}

	return nil
}

func DecodeDeliveryTask(payload []byte) (DeliveryTask, error) {
	var t DeliveryTask
	if err := util.DecodeMsgPack(payload, &t); err != nil {
		return t, errors.Wrap(err, "failed to decode delivery task")
	}
	return t, nil
}
