package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type validatedRequest struct {
	URL    string `valid:"required,http_url"`
	Status string `valid:"required,webhook_status"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		req        validatedRequest
		wantErrMsg string
	}{
		{
			name: "valid",
			req:  validatedRequest{URL: "https://example.com/hooks", Status: "active"},
		},
		{
			name:       "non_http_url",
			req:        validatedRequest{URL: "ftp://example.com/hooks", Status: "active"},
			wantErrMsg: "URL:",
		},
		{
			name:       "unknown_status",
			req:        validatedRequest{URL: "https://example.com/hooks", Status: "paused"},
			wantErrMsg: "Status:",
		},
		{
			name:       "missing_fields",
			req:        validatedRequest{},
			wantErrMsg: "Status:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.req)
			if tt.wantErrMsg == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErrMsg)
		})
	}
}
