package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"site_id":"site_a","event":"content-changed"}`)
	secret := "0123456789abcdef"

	assert.True(t, verifySignature(body, sign(body, secret), secret))

	// Wrong secret.
	assert.False(t, verifySignature(body, sign(body, "other-secret"), secret))

	// Tampered body.
	tampered := []byte(`{"site_id":"site_b","event":"content-changed"}`)
	assert.False(t, verifySignature(tampered, sign(body, secret), secret))

	// Missing pieces never verify.
	assert.False(t, verifySignature(body, "", secret))
	assert.False(t, verifySignature(body, sign(body, secret), ""))

	// Signature is not valid hex of the right length.
	assert.False(t, verifySignature(body, "not-a-signature", secret))
}
