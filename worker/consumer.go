package worker

import (
	"context"

	"github.com/hibiken/asynq"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/rdb"
	"github.com/gummi-coder/Novora-sub009/pkg/log"
	"github.com/gummi-coder/Novora-sub009/worker/task"
)

type Consumer struct {
	mux *asynq.ServeMux
	srv *asynq.Server
}

func NewConsumer(r *rdb.Redis, concurrency int, logger log.StdLogger) *Consumer {
	srv := asynq.NewServer(
		r,
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				string(novora.WebhookDeliveryQueue): 1,
			},
			IsFailure:      task.IsFailure,
			RetryDelayFunc: task.GetRetryDelay,
			Logger:         logger,
		},
	)

	return &Consumer{
		mux: asynq.NewServeMux(),
		srv: srv,
	}
}

func (c *Consumer) RegisterHandlers(taskName novora.TaskName, handler func(context.Context, *asynq.Task) error) {
	c.mux.HandleFunc(string(taskName), handler)
}

func (c *Consumer) Start() error {
	return c.srv.Start(c.mux)
}

func (c *Consumer) Stop() {
	c.srv.Stop()
	c.srv.Shutdown()
}
