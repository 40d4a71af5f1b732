package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrMissingSignatureInput is returned when a reference, the signature or the
// secret is empty. It is a caller error, distinct from a signature mismatch.
var ErrMissingSignatureInput = errors.New("payment: gateway order ref, payment ref, signature and secret are required")

// ComputeSignature returns hex(HMAC-SHA256(secret, orderRef + "|" + paymentRef)),
// the signature the gateway attaches to a successful payment.
func ComputeSignature(gatewayOrderRef, gatewayPaymentRef, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderRef + "|" + gatewayPaymentRef))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature was produced by the gateway for
// the given order and payment references. The comparison is constant time.
func VerifySignature(gatewayOrderRef, gatewayPaymentRef, signature, secret string) (bool, error) {
	if gatewayOrderRef == "" || gatewayPaymentRef == "" || signature == "" || secret == "" {
		return false, ErrMissingSignatureInput
	}
	expected := ComputeSignature(gatewayOrderRef, gatewayPaymentRef, secret)
	return hmac.Equal([]byte(expected), []byte(signature)), nil
}

// SignatureVerifier checks gateway callbacks against a configured secret
type SignatureVerifier struct {
	secret string
}

// NewSignatureVerifier binds a verifier to the gateway key secret
func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: secret}
}

// Verify checks signature for the given references
func (v *SignatureVerifier) Verify(gatewayOrderRef, gatewayPaymentRef, signature string) (bool, error) {
	return VerifySignature(gatewayOrderRef, gatewayPaymentRef, signature, v.secret)
}
