package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gummi-coder/Novora-sub009/pkg/log"
)

func TestLogger_Log(t *testing.T) {
	buf := &bytes.Buffer{}
	a := NewLogger(log.NewLogger(buf))

	a.Log(context.Background(), Entry{
		Action:       ActionWebhookCreated,
		ResourceType: ResourceWebhook,
		ResourceID:   "01HXWEBHOOK",
		Changes:      map[string]interface{}{"url": "https://example.com/hooks"},
	})

	line := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "webhook.created", line["action"])
	require.Equal(t, "webhook", line["resource_type"])
	require.Equal(t, "01HXWEBHOOK", line["resource_id"])
	require.Equal(t, map[string]interface{}{"url": "https://example.com/hooks"}, line["changes"])
}

func TestNoopLogger(t *testing.T) {
	require.NotPanics(t, func() {
		NoopLogger().Log(context.Background(), Entry{Action: ActionDelivered})
	})
}
