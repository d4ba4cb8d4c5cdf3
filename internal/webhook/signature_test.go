package webhook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/commercekit/event-delivery/internal/webhook"
)

func TestSignPayload(t *testing.T) {
	payload := []byte(`{"order":{"id":"T3JkZXI6MQ=="}}`)

	sig := webhook.SignPayload(payload, "secret-key")
	assert.Len(t, sig, 64)

	// Same bytes, same secret, same signature
	assert.Equal(t, sig, webhook.SignPayload(payload, "secret-key"))

	// Any change to the bytes or the secret changes the signature
	assert.NotEqual(t, sig, webhook.SignPayload([]byte(`{"order":{"id":"T3JkZXI6Mg=="}}`), "secret-key"))
	assert.NotEqual(t, sig, webhook.SignPayload(payload, "other-key"))
}

func TestSignPayload_EmptySecret(t *testing.T) {
	assert.Empty(t, webhook.SignPayload([]byte("payload"), ""))
}

func TestVerifySignature(t *testing.T) {
	payload := []byte("payload bytes")
	sig := webhook.SignPayload(payload, "secret-key")

	assert.True(t, webhook.VerifySignature(payload, "secret-key", sig))
	assert.False(t, webhook.VerifySignature(payload, "other-key", sig))
	assert.False(t, webhook.VerifySignature([]byte("tampered"), "secret-key", sig))

	// Unsigned payloads never verify
	assert.False(t, webhook.VerifySignature(payload, "", ""))
}
