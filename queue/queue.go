package queue

import (
	"context"
	"errors"
	"io"
	"time"

	novora "github.com/gummi-coder/Novora-sub009"
)

var ErrQueueClosed = errors.New("queue is closed")

type Queuer interface {
	io.Closer
	// Write enqueues job on queueName; job.Delay defers its first dispatch.
	Write(ctx context.Context, taskName novora.TaskName, queueName novora.QueueName, job *Job) error
}

type Job struct {
	ID      string        `json:"id"`
	Payload []byte        `json:"payload"`
	Delay   time.Duration `json:"delay"`
}
