package datastore

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validWebhook() *Webhook {
	return &Webhook{
		UID:         "01HXWEBHOOK",
		TenantID:    "tenant_1",
		Name:        "survey sink",
		URL:         "https://example.com/hooks",
		Events:      []string{"survey.completed"},
		Secret:      strings.Repeat("ab", 32),
		Status:      ActiveWebhookStatus,
		RetryConfig: RetryConfig{MaxRetries: 3, RetryDelay: 1000, BackoffFactor: 2},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestValidateWebhook(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(w *Webhook)
		wantErrMsg string
	}{
		{
			name:   "valid",
			mutate: func(w *Webhook) {},
		},
		{
			name:       "missing_name",
			mutate:     func(w *Webhook) { w.Name = "" },
			wantErrMsg: "name",
		},
		{
			name:       "relative_url",
			mutate:     func(w *Webhook) { w.URL = "/hooks" },
			wantErrMsg: "url",
		},
		{
			name:       "non_http_url",
			mutate:     func(w *Webhook) { w.URL = "ftp://example.com/hooks" },
			wantErrMsg: "url",
		},
		{
			name:       "no_events",
			mutate:     func(w *Webhook) { w.Events = []string{} },
			wantErrMsg: "events",
		},
		{
			name:       "empty_event_name",
			mutate:     func(w *Webhook) { w.Events = []string{""} },
			wantErrMsg: "events",
		},
		{
			name:       "short_secret",
			mutate:     func(w *Webhook) { w.Secret = "abc" },
			wantErrMsg: "secret",
		},
		{
			name:       "unknown_status",
			mutate:     func(w *Webhook) { w.Status = "paused" },
			wantErrMsg: "status",
		},
		{
			name:       "backoff_below_one",
			mutate:     func(w *Webhook) { w.RetryConfig.BackoffFactor = 0.5 },
			wantErrMsg: "backoff_factor",
		},
		{
			name:       "zero_retry_delay",
			mutate:     func(w *Webhook) { w.RetryConfig.RetryDelay = 0 },
			wantErrMsg: "retry_delay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validWebhook()
			tt.mutate(w)

			err := ValidateWebhook(w)
			if tt.wantErrMsg == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErrMsg)
		})
	}
}
