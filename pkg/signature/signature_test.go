package signature

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gummi-coder/Novora-sub009/config/algo"
)

func TestGenerateWebhookSignature_KnownVector(t *testing.T) {
	got := GenerateWebhookSignature("key", []byte("The quick brown fox jumps over the lazy dog"))
	require.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", got)
}

func TestGenerateWebhookSignature_Deterministic(t *testing.T) {
	secret := "2f0c6a1b9d4e8f7a3c5b1d9e7f6a4c2b8d0e1f3a5c7b9d2e4f6a8c0b1d3e5f7a"
	payload := []byte(`{"event":"survey.completed","survey_id":"srv_42","score":9}`)

	first := GenerateWebhookSignature(secret, payload)
	second := GenerateWebhookSignature(secret, payload)
	require.Equal(t, first, second)
	require.Len(t, first, 64)

	changed := []byte(`{"event":"survey.completed","survey_id":"srv_42","score":8}`)
	require.NotEqual(t, first, GenerateWebhookSignature(secret, changed))
	require.NotEqual(t, first, GenerateWebhookSignature(secret+"x", payload))
}

func TestVerifyWebhookSignature(t *testing.T) {
	payload := []byte(`{"ok":true}`)
	sig := GenerateWebhookSignature("s3cr3t", payload)

	require.True(t, VerifyWebhookSignature("s3cr3t", payload, sig))
	require.False(t, VerifyWebhookSignature("other", payload, sig))
	require.False(t, VerifyWebhookSignature("s3cr3t", []byte(`{"ok":false}`), sig))
	require.False(t, VerifyWebhookSignature("s3cr3t", payload, "not-hex"))
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		hash    string
		wantLen int
		wantErr error
	}{
		{name: "sha256", hash: algo.SHA256, wantLen: 64},
		{name: "sha512", hash: algo.SHA512, wantLen: 128},
		{name: "sha3_256", hash: algo.SHA3_256, wantLen: 64},
		{name: "sha512_224", hash: algo.SHA512_224, wantLen: 56},
		{name: "unsupported", hash: "MD5", wantErr: ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.hash, "secret", []byte("payload"))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)
			require.True(t, Verify(tt.hash, "secret", []byte("payload"), got))
		})
	}
}
