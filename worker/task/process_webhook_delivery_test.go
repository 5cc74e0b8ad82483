package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/services"
	"github.com/gummi-coder/Novora-sub009/util"
)

type stubProcessor struct {
	got []string
	err error
}

func (s *stubProcessor) ProcessWebhookDelivery(_ context.Context, id string) error {
	s.got = append(s.got, id)
	return s.err
}

func newTask(t *testing.T, id string) *asynq.Task {
	t.Helper()

	b, err := util.EncodeMsgPack(services.DeliveryTask{DeliveryID: id})
	require.NoError(t, err)

	return asynq.NewTask(string(novora.WebhookDeliveryProcessor), b)
}

func TestProcessWebhookDelivery(t *testing.T) {
	tests := []struct {
		name        string
		task        func(t *testing.T) *asynq.Task
		procErr     error
		wantCalls   int
		wantErr     bool
		wantFailure bool
		wantDelay   time.Duration
		wantSkip    bool
	}{
		{
			name:      "should_process_delivery",
			task:      func(t *testing.T) *asynq.Task { return newTask(t, "d-1") },
			wantCalls: 1,
		},
		{
			name:        "should_defer_locked_delivery",
			task:        func(t *testing.T) *asynq.Task { return newTask(t, "d-1") },
			procErr:     services.ErrDeliveryLocked,
			wantCalls:   1,
			wantErr:     true,
			wantFailure: false,
			wantDelay:   lockRetryDelay,
		},
		{
			name:        "should_fail_on_store_errors",
			task:        func(t *testing.T) *asynq.Task { return newTask(t, "d-1") },
			procErr:     errors.New("store unavailable"),
			wantCalls:   1,
			wantErr:     true,
			wantFailure: true,
		},
		{
			name: "should_skip_malformed_tasks",
			task: func(t *testing.T) *asynq.Task {
				return asynq.NewTask(string(novora.WebhookDeliveryProcessor), []byte{0xc1})
			},
			wantErr:     true,
			wantFailure: true,
			wantSkip:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &stubProcessor{err: tt.procErr}
			task := tt.task(t)

			err := ProcessWebhookDelivery(p)(context.Background(), task)
			require.Len(t, p.got, tt.wantCalls)

			if !tt.wantErr {
				require.NoError(t, err)
				require.Equal(t, []string{"d-1"}, p.got)
				return
			}

			require.Error(t, err)
			require.Equal(t, tt.wantFailure, IsFailure(err))
			require.Equal(t, tt.wantSkip, errors.Is(err, asynq.SkipRetry))

			if tt.wantDelay > 0 {
				require.Equal(t, tt.wantDelay, GetRetryDelay(0, err, task))
			}
		})
	}
}
