package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/datastore"
	"github.com/gummi-coder/Novora-sub009/mocks"
	"github.com/gummi-coder/Novora-sub009/pkg/apperror"
	"github.com/gummi-coder/Novora-sub009/queue"
)

var secretPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestWebhookService_CreateWebhook(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		url         string
		events      []string
		retryConfig *datastore.RetryConfig
		wantRetry   datastore.RetryConfig
		wantEvents  []string
		wantErr     bool
	}{
		{
			name:       "should_apply_default_retry_config",
			url:        "https://hooks.example.com/novora",
			events:     []string{"survey.completed"},
			wantRetry:  datastore.RetryConfig{MaxRetries: 3, RetryDelay: 1000, BackoffFactor: 2},
			wantEvents: []string{"survey.completed"},
		},
		{
			name:        "should_keep_supplied_retry_config",
			url:         "https://hooks.example.com/novora",
			events:      []string{"survey.completed", "survey.completed", "pulse.sent"},
			retryConfig: &datastore.RetryConfig{MaxRetries: 5, RetryDelay: 250, BackoffFactor: 3},
			wantRetry:   datastore.RetryConfig{MaxRetries: 5, RetryDelay: 250, BackoffFactor: 3},
			wantEvents:  []string{"survey.completed", "pulse.sent"},
		},
		{
			name:        "should_fill_missing_retry_fields",
			url:         "http://hooks.example.com/novora",
			events:      []string{"survey.completed"},
			retryConfig: &datastore.RetryConfig{MaxRetries: 7},
			wantRetry:   datastore.RetryConfig{MaxRetries: 7, RetryDelay: 1000, BackoffFactor: 2},
			wantEvents:  []string{"survey.completed"},
		},
		{
			name:    "should_fail_for_non_http_url",
			url:     "ftp://hooks.example.com/novora",
			events:  []string{"survey.completed"},
			wantErr: true,
		},
		{
			name:    "should_fail_without_events",
			url:     "https://hooks.example.com/novora",
			events:  []string{" "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := provideFixture(t, ctrl)

			webhook, err := f.service.CreateWebhook(ctx, "tenant-1", "Survey hooks", tt.url, tt.events, tt.retryConfig)
			if tt.wantErr {
				requireCode(t, err, apperror.WebhookCreationFailed)

				list, err := f.store.WebhookRepo().LoadWebhooksByTenant(ctx, "tenant-1")
				require.NoError(t, err)
				require.Empty(t, list)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, webhook.UID)
			require.Regexp(t, secretPattern, webhook.Secret)
			require.Equal(t, datastore.ActiveWebhookStatus, webhook.Status)
			require.Equal(t, tt.wantRetry, webhook.RetryConfig)
			require.Equal(t, tt.wantEvents, webhook.Events)

			stored, err := f.store.WebhookRepo().FindWebhookByID(ctx, webhook.UID)
			require.NoError(t, err)
			require.Equal(t, webhook.Secret, stored.Secret)
		})
	}
}

func TestWebhookService_CreateWebhook_UniqueIDsAndDuplicatesAllowed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := provideFixture(t, ctrl)

	seen := map[string]bool{}
	secrets := map[string]bool{}
	for i := 0; i < 20; i++ {
		w, err := f.service.CreateWebhook(ctx, "tenant-1", "dup", "https://hooks.example.com/same", []string{"e"}, nil)
		require.NoError(t, err)
		require.False(t, seen[w.UID])
		require.False(t, secrets[w.Secret])
		seen[w.UID] = true
		secrets[w.Secret] = true
	}

	list, err := f.service.ListWebhooks(ctx, "tenant-1")
	require.NoError(t, err)
	require.Len(t, list, 20)
}

func TestWebhookService_CreateWebhook_StoreFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := provideFixture(t, ctrl)

	repo := mocks.NewMockWebhookRepository(ctrl)
	repo.EXPECT().CreateWebhook(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
	f.service.WebhookRepo = repo

	_, err := f.service.CreateWebhook(ctx, "tenant-1", "n", "https://hooks.example.com", []string{"e"}, nil)
	requireCode(t, err, apperror.WebhookCreationFailed)
	require.ErrorContains(t, err, "connection reset")

	var ae *apperror.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperror.CategoryValidation, ae.Category)
	require.Equal(t, apperror.SeverityError, ae.Severity)
}

func TestWebhookService_UpdateWebhookStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := provideFixture(t, ctrl)

	w, err := f.service.CreateWebhook(ctx, "tenant-1", "n", "https://hooks.example.com", []string{"e"}, nil)
	require.NoError(t, err)

	updated, err := f.service.UpdateWebhookStatus(ctx, w.UID, datastore.InactiveWebhookStatus)
	require.NoError(t, err)
	require.Equal(t, datastore.InactiveWebhookStatus, updated.Status)

	got, err := f.service.GetWebhook(ctx, w.UID)
	require.NoError(t, err)
	require.False(t, got.IsActive())

	_, err = f.service.UpdateWebhookStatus(ctx, w.UID, "paused")
	requireCode(t, err, apperror.InvalidWebhookStatus)

	_, err = f.service.UpdateWebhookStatus(ctx, "missing", datastore.ActiveWebhookStatus)
	requireCode(t, err, apperror.WebhookNotFound)
}

func TestWebhookService_DeleteWebhook(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := provideFixture(t, ctrl)

	w, err := f.service.CreateWebhook(ctx, "tenant-1", "n", "https://hooks.example.com", []string{"e"}, nil)
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteWebhook(ctx, w.UID))

	_, err = f.service.GetWebhook(ctx, w.UID)
	requireCode(t, err, apperror.WebhookNotFound)

	requireCode(t, f.service.DeleteWebhook(ctx, w.UID), apperror.WebhookNotFound)
}

func TestWebhookService_TriggerWebhook(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		webhook  func(f *fixture) string
		event    string
		payload  interface{}
		dbFn     func(q *mocks.MockQueuer)
		wantCode apperror.Code
	}{
		{
			name: "should_create_pending_delivery",
			webhook: func(f *fixture) string {
				w, _ := f.service.CreateWebhook(ctx, "t", "n", "https://hooks.example.com", []string{"survey.completed"}, nil)
				return w.UID
			},
			event:   "survey.completed",
			payload: map[string]interface{}{"survey_id": "s-1", "score": 9},
			dbFn: func(q *mocks.MockQueuer) {
				q.EXPECT().Write(gomock.Any(), novora.WebhookDeliveryProcessor, novora.WebhookDeliveryQueue, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ novora.TaskName, _ novora.QueueName, job *queue.Job) error {
						if job.Delay != 0 {
							return errors.New("trigger must not delay")
						}
						return nil
					}).Times(1)
			},
		},
		{
			name:     "should_fail_for_unknown_webhook",
			webhook:  func(f *fixture) string { return "01HZXUNKNOWN" },
			event:    "survey.completed",
			payload:  map[string]interface{}{},
			wantCode: apperror.WebhookNotFound,
		},
		{
			name: "should_fail_for_inactive_webhook",
			webhook: func(f *fixture) string {
				w, _ := f.service.CreateWebhook(ctx, "t", "n", "https://hooks.example.com", []string{"survey.completed"}, nil)
				_, _ = f.service.UpdateWebhookStatus(ctx, w.UID, datastore.InactiveWebhookStatus)
				return w.UID
			},
			event:    "survey.completed",
			payload:  map[string]interface{}{},
			wantCode: apperror.WebhookInactive,
		},
		{
			name: "should_check_status_before_event",
			webhook: func(f *fixture) string {
				w, _ := f.service.CreateWebhook(ctx, "t", "n", "https://hooks.example.com", []string{"survey.completed"}, nil)
				_, _ = f.service.UpdateWebhookStatus(ctx, w.UID, datastore.InactiveWebhookStatus)
				return w.UID
			},
			event:    "pulse.sent",
			payload:  map[string]interface{}{},
			wantCode: apperror.WebhookInactive,
		},
		{
			name: "should_fail_for_unsubscribed_event",
			webhook: func(f *fixture) string {
				w, _ := f.service.CreateWebhook(ctx, "t", "n", "https://hooks.example.com", []string{"survey.completed"}, nil)
				return w.UID
			},
			event:    "pulse.sent",
			payload:  map[string]interface{}{},
			wantCode: apperror.InvalidWebhookEvent,
		},
		{
			name: "should_fail_for_invalid_json_payload",
			webhook: func(f *fixture) string {
				w, _ := f.service.CreateWebhook(ctx, "t", "n", "https://hooks.example.com", []string{"survey.completed"}, nil)
				return w.UID
			},
			event:    "survey.completed",
			payload:  []byte(`{"broken":`),
			wantCode: apperror.WebhookTriggerFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := provideFixture(t, ctrl)

			if tt.dbFn != nil {
				tt.dbFn(f.queue)
			}

			id := tt.webhook(f)
			delivery, err := f.service.TriggerWebhook(ctx, id, tt.event, tt.payload)

			if tt.wantCode != "" {
				requireCode(t, err, tt.wantCode)

				deliveries, err := f.store.DeliveryRepo().LoadDeliveriesByWebhook(ctx, id, 0)
				require.NoError(t, err)
				require.Empty(t, deliveries)
				return
			}

			require.NoError(t, err)
			require.Equal(t, datastore.PendingDeliveryStatus, delivery.Status)
			require.Equal(t, uint(0), delivery.Attempts)
			require.Equal(t, tt.event, delivery.Event)
			require.JSONEq(t, `{"survey_id":"s-1","score":9}`, string(delivery.Payload))

			stored, err := f.store.DeliveryRepo().FindDeliveryByID(ctx, delivery.UID)
			require.NoError(t, err)
			require.Equal(t, delivery.Payload, stored.Payload)
		})
	}
}

func TestWebhookService_TriggerWebhook_QueueFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := provideFixture(t, ctrl)

	w, err := f.service.CreateWebhook(ctx, "t", "n", "https://hooks.example.com", []string{"e"}, nil)
	require.NoError(t, err)

	f.queue.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err = f.service.TriggerWebhook(ctx, w.UID, "e", datastore.Payload(`{}`))
	requireCode(t, err, apperror.WebhookTriggerFailed)
	require.ErrorContains(t, err, "redis down")

	deliveries, err := f.store.DeliveryRepo().LoadDeliveriesByWebhook(ctx, w.UID, 0)
	require.NoError(t, err)
	require.Empty(t, deliveries)
}

func TestWebhookService_RetryDelivery(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := provideFixture(t, ctrl)

	seed := func(status datastore.DeliveryStatus) string {
		d := &datastore.WebhookDelivery{
			UID:       "d-" + string(status),
			WebhookID: "wh-1",
			Event:     "e",
			Payload:   datastore.Payload(`{}`),
			Status:    status,
			Attempts:  3,
		}
		require.NoError(t, f.store.DeliveryRepo().CreateDelivery(ctx, d))
		return d.UID
	}

	exhausted := seed(datastore.ExhaustedDeliveryStatus)
	discarded := seed(datastore.DiscardedDeliveryStatus)

	f.queue.EXPECT().Write(gomock.Any(), novora.WebhookDeliveryProcessor, novora.WebhookDeliveryQueue, gomock.Any()).Return(nil).Times(2)

	d, err := f.service.RetryDelivery(ctx, exhausted)
	require.NoError(t, err)
	require.Equal(t, datastore.PendingDeliveryStatus, d.Status)
	require.Equal(t, uint(3), d.Attempts)
	require.Nil(t, d.NextAttemptAt)

	d, err = f.service.RetryDelivery(ctx, discarded)
	require.NoError(t, err)
	require.Equal(t, datastore.PendingDeliveryStatus, d.Status)

	// queued or delivered deliveries must not get a second task
	for _, status := range []datastore.DeliveryStatus{
		datastore.PendingDeliveryStatus,
		datastore.FailedDeliveryStatus,
		datastore.DeliveredDeliveryStatus,
	} {
		id := seed(status)

		_, err = f.service.RetryDelivery(ctx, id)
		requireCode(t, err, apperror.DeliveryNotRetryable)

		stored, err := f.store.DeliveryRepo().FindDeliveryByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, status, stored.Status)
	}

	_, err = f.service.RetryDelivery(ctx, "missing")
	requireCode(t, err, apperror.DeliveryNotFound)
}

func TestWebhookService_ListDeliveries(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := provideFixture(t, ctrl)

	w, err := f.service.CreateWebhook(ctx, "t", "n", "https://hooks.example.com", []string{"e"}, nil)
	require.NoError(t, err)

	f.queue.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	for i := 0; i < 3; i++ {
		_, err = f.service.TriggerWebhook(ctx, w.UID, "e", map[string]int{"i": i})
		require.NoError(t, err)
	}

	list, err := f.service.ListDeliveries(ctx, w.UID, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)

	d, err := f.service.GetDelivery(ctx, list[0].UID)
	require.NoError(t, err)
	require.Equal(t, w.UID, d.WebhookID)
}
