package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayload computes the hex-encoded HMAC-SHA256 signature of message using
// the webhook's secret key. The signature is computed over the exact bytes
// put on the wire; payload rendering canonicalizes JSON beforehand so the
// same logical payload always produces the same signature.
//
// An empty secret yields an empty signature: unsigned webhooks are allowed
// and the signature header/attribute is simply omitted by transports.
func SignPayload(message []byte, secret string) string {
	if secret == "" {
		return ""
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(message)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifySignature reports whether signature matches message under secret.
// Receivers use the same scheme; this helper exists so they can share the
// implementation.
func VerifySignature(message []byte, secret, signature string) bool {
	expected := SignPayload(message, secret)
	return expected != "" && hmac.Equal([]byte(expected), []byte(signature))
}
