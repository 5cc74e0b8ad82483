package memqueue

import (
	"container/heap"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hibiken/asynq"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/pkg/log"
	"github.com/gummi-coder/Novora-sub009/queue"
)

const maxTaskRetries = 5

type item struct {
	taskName novora.TaskName
	payload  []byte
	runAt    time.Time
	retried  int
	seq      uint64
}

type itemHeap []*item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].runAt.Equal(h[j].runAt) {
		return h[i].seq < h[j].seq
	}
	return h[i].runAt.Before(h[j].runAt)
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) { *h = append(*h, x.(*item)) }

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// MemQueue is a single-process delayed queue. Tasks are handed to the same
// asynq.Handler the redis worker uses.
type MemQueue struct {
	mu     sync.Mutex
	items  itemHeap
	seq    uint64
	wake   chan struct{}
	closed bool
	now    func() time.Time
}

func NewQueue() *MemQueue {
	return &MemQueue{
		wake: make(chan struct{}, 1),
		now:  time.Now,
	}
}

func (q *MemQueue) Write(_ context.Context, taskName novora.TaskName, _ novora.QueueName, job *queue.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return queue.ErrQueueClosed
	}

	q.push(&item{
		taskName: taskName,
		payload:  job.Payload,
		runAt:    q.now().Add(job.Delay),
	})

	return nil
}

func (q *MemQueue) push(it *item) {
	q.seq++
	it.seq = q.seq
	heap.Push(&q.items, it)

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Len returns the number of queued tasks, including delayed ones.
func (q *MemQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

func (q *MemQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	select {
	case q.wake <- struct{}{}:
	default:
	}
	return nil
}

// next pops the earliest due task, or reports how long to wait for one.
func (q *MemQueue) next() (*item, time.Duration, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, 0, false
	}

	if q.items.Len() == 0 {
		return nil, time.Hour, true
	}

	head := q.items[0]
	if wait := head.runAt.Sub(q.now()); wait > 0 {
		return nil, wait, true
	}

	return heap.Pop(&q.items).(*item), 0, true
}

// Consume dispatches due tasks to h with at most concurrency in flight. It
// returns when ctx is cancelled or the queue is closed, after in-flight
// tasks finish.
func (q *MemQueue) Consume(ctx context.Context, h asynq.Handler, concurrency int) {
	if concurrency <= 0 {
		concurrency = 1
	}

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		it, wait, ok := q.next()
		if !ok {
			return
		}

		if it == nil {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-q.wake:
				timer.Stop()
			case <-timer.C:
			}
			continue
		}

		select {
		case <-ctx.Done():
			return
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(it *item) {
			defer wg.Done()
			defer func() { <-sem }()

			q.run(ctx, h, it)
		}(it)
	}
}

func (q *MemQueue) run(ctx context.Context, h asynq.Handler, it *item) {
	err := h.ProcessTask(ctx, asynq.NewTask(string(it.taskName), it.payload))
	if err == nil {
		return
	}

	// deferrals are rescheduled without using up a retry
	var deferred interface{ Delay() time.Duration }
	if errors.As(err, &deferred) {
		q.requeue(it, deferred.Delay())
		return
	}

	if errors.Is(err, asynq.SkipRetry) {
		log.FromContext(ctx).WithError(err).Errorf("task %s dropped without retry", it.taskName)
		return
	}

	if it.retried >= maxTaskRetries {
		log.FromContext(ctx).WithError(err).Errorf("task %s dropped after %d retries", it.taskName, it.retried)
		return
	}

	log.FromContext(ctx).WithError(err).Warnf("task %s failed, retrying", it.taskName)

	it.retried++
	q.requeue(it, time.Duration(it.retried)*time.Second)
}

func (q *MemQueue) requeue(it *item, delay time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	it.runAt = q.now().Add(delay)
	q.push(it)
}
