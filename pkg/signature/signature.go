package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/gummi-coder/Novora-sub009/config/algo"
)

// ErrInvalidHash is returned when an unsupported hash is supplied.
var ErrInvalidHash = errors.New("hash not supported")

// GenerateWebhookSignature returns the hex HMAC-SHA256 of payload keyed by
// secret. payload must be the exact bytes sent on the wire.
func GenerateWebhookSignature(secret string, payload []byte) string {
	sig, _ := Compute(algo.SHA256, secret, payload)
	return sig
}

// VerifyWebhookSignature reports whether provided is the hex HMAC-SHA256 of
// payload keyed by secret.
func VerifyWebhookSignature(secret string, payload []byte, provided string) bool {
	return Verify(algo.SHA256, secret, payload, provided)
}

// Compute returns the hex HMAC of payload using the named hash.
func Compute(hashName, secret string, payload []byte) (string, error) {
	mac, err := sign(hashName, secret, payload)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(mac), nil
}

// Verify compares provided against the expected HMAC in constant time.
func Verify(hashName, secret string, payload []byte, provided string) bool {
	expected, err := sign(hashName, secret, payload)
	if err != nil {
		return false
	}

	got, err := hex.DecodeString(provided)
	if err != nil {
		return false
	}

	return hmac.Equal(expected, got)
}

func sign(hashName, secret string, payload []byte) ([]byte, error) {
	fn, err := getHashFunction(hashName)
	if err != nil {
		return nil, err
	}

	h := hmac.New(fn, []byte(secret))
	h.Write(payload)

	return h.Sum(nil), nil
}

func getHashFunction(name string) (func() hash.Hash, error) {
	switch name {
	case algo.SHA224:
		return sha256.New224, nil
	case algo.SHA256:
		return sha256.New, nil
	case algo.SHA384:
		return sha512.New384, nil
	case algo.SHA512:
		return sha512.New, nil
	case algo.SHA3_224:
		return sha3.New224, nil
	case algo.SHA3_256:
		return sha3.New256, nil
	case algo.SHA3_384:
		return sha3.New384, nil
	case algo.SHA3_512:
		return sha3.New512, nil
	case algo.SHA512_224:
		return sha512.New512_224, nil
	case algo.SHA512_256:
		return sha512.New512_256, nil
	}
	return nil, ErrInvalidHash
}
