package memqueue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/queue"
)

type recorder struct {
	mu    sync.Mutex
	seen  []string
	calls atomic.Int32
	fail  int32
}

func (r *recorder) ProcessTask(_ context.Context, t *asynq.Task) error {
	n := r.calls.Add(1)
	if n <= r.fail {
		return errors.New("boom")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, string(t.Payload()))
	return nil
}

func (r *recorder) payloads() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.seen...)
}

func TestMemQueue_DelayedOrdering(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, q.Write(ctx, novora.WebhookDeliveryProcessor, novora.WebhookDeliveryQueue, &queue.Job{Payload: []byte("late"), Delay: 80 * time.Millisecond}))
	require.NoError(t, q.Write(ctx, novora.WebhookDeliveryProcessor, novora.WebhookDeliveryQueue, &queue.Job{Payload: []byte("now")}))
	require.Equal(t, 2, q.Len())

	r := &recorder{}
	go q.Consume(ctx, r, 1)

	require.Eventually(t, func() bool { return len(r.payloads()) == 2 }, time.Second, 5*time.Millisecond)
	require.Equal(t, []string{"now", "late"}, r.payloads())
}

func TestMemQueue_DelayIsRespected(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &recorder{}
	go q.Consume(ctx, r, 2)

	start := time.Now()
	require.NoError(t, q.Write(ctx, novora.WebhookDeliveryProcessor, novora.WebhookDeliveryQueue, &queue.Job{Payload: []byte("x"), Delay: 50 * time.Millisecond}))

	require.Eventually(t, func() bool { return len(r.payloads()) == 1 }, time.Second, 5*time.Millisecond)
	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestMemQueue_RetriesHandlerErrors(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &recorder{fail: 1}
	go q.Consume(ctx, r, 1)

	require.NoError(t, q.Write(ctx, novora.WebhookDeliveryProcessor, novora.WebhookDeliveryQueue, &queue.Job{Payload: []byte("x")}))

	require.Eventually(t, func() bool { return len(r.payloads()) == 1 }, 3*time.Second, 10*time.Millisecond)
	require.Equal(t, int32(2), r.calls.Load())
}

func TestMemQueue_Close(t *testing.T) {
	q := NewQueue()
	require.NoError(t, q.Close())

	err := q.Write(context.Background(), novora.WebhookDeliveryProcessor, novora.WebhookDeliveryQueue, &queue.Job{})
	require.ErrorIs(t, err, queue.ErrQueueClosed)

	done := make(chan struct{})
	go func() {
		q.Consume(context.Background(), &recorder{}, 1)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consume did not return after close")
	}
}

type deferErr struct{ d time.Duration }

func (e deferErr) Error() string        { return "deferred" }
func (e deferErr) Delay() time.Duration { return e.d }

type deferOnce struct {
	calls atomic.Int32
	done  atomic.Bool
}

func (d *deferOnce) ProcessTask(context.Context, *asynq.Task) error {
	if d.calls.Add(1) <= maxTaskRetries+2 {
		return deferErr{d: time.Millisecond}
	}
	d.done.Store(true)
	return nil
}

func TestMemQueue_DeferralsDoNotCountAsRetries(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := &deferOnce{}
	go q.Consume(ctx, h, 1)

	require.NoError(t, q.Write(ctx, novora.WebhookDeliveryProcessor, novora.WebhookDeliveryQueue, &queue.Job{Payload: []byte("x")}))
	require.Eventually(t, h.done.Load, time.Second, 5*time.Millisecond)
}

func TestMemQueue_SkipRetryDropsTask(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	h := asynq.HandlerFunc(func(context.Context, *asynq.Task) error {
		calls.Add(1)
		return asynq.SkipRetry
	})
	go q.Consume(ctx, h, 1)

	require.NoError(t, q.Write(ctx, novora.WebhookDeliveryProcessor, novora.WebhookDeliveryQueue, &queue.Job{Payload: []byte("x")}))
	require.Eventually(t, func() bool { return calls.Load() == 1 && q.Len() == 0 }, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	require.Equal(t, int32(1), calls.Load())
}
