package redis

import (
	"context"

	"github.com/hibiken/asynq"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/rdb"
	"github.com/gummi-coder/Novora-sub009/queue"
)

// maxTaskRetries bounds asynq's own retries for handler errors. Delivery
// retries are scheduled by the processor as fresh tasks and never count here.
const maxTaskRetries = 5

type RedisQueue struct {
	client    *asynq.Client
	inspector *asynq.Inspector
}

func NewQueue(r *rdb.Redis) *RedisQueue {
	return &RedisQueue{
		client:    asynq.NewClient(r),
		inspector: asynq.NewInspector(r),
	}
}

func (q *RedisQueue) Write(ctx context.Context, taskName novora.TaskName, queueName novora.QueueName, job *queue.Job) error {
	t := asynq.NewTask(string(taskName), job.Payload,
		asynq.Queue(string(queueName)),
		asynq.ProcessIn(job.Delay),
		asynq.MaxRetry(maxTaskRetries),
	)

	_, err := q.client.EnqueueContext(ctx, t)
	return err
}

func (q *RedisQueue) Inspector() *asynq.Inspector {
	return q.inspector
}

func (q *RedisQueue) Close() error {
	return q.client.Close()
}
