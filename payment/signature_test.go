package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "rzp_test_secret"

func flipBit(s string, i int, bit uint) string {
	b := []byte(s)
	b[i] ^= 1 << bit
	return string(b)
}

func TestComputeSignatureMatchesHMAC(t *testing.T) {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte("order_123|pay_456"))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, ComputeSignature("order_123", "pay_456", testSecret))
}

func TestVerifySignatureAcceptsGatewaySignature(t *testing.T) {
	sig := ComputeSignature("order_123", "pay_456", testSecret)

	ok, err := VerifySignature("order_123", "pay_456", sig, testSecret)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifySignatureRejectsAnySingleBitFlip(t *testing.T) {
	orderRef, paymentRef := "order_Nx81", "pay_Qz42"
	sig := ComputeSignature(orderRef, paymentRef, testSecret)

	for i := range orderRef {
		for bit := uint(0); bit < 8; bit++ {
			ok, err := VerifySignature(flipBit(orderRef, i, bit), paymentRef, sig, testSecret)
			require.NoError(t, err)
			assert.False(t, ok, "order ref byte %d bit %d", i, bit)
		}
	}
	for i := range paymentRef {
		for bit := uint(0); bit < 8; bit++ {
			ok, err := VerifySignature(orderRef, flipBit(paymentRef, i, bit), sig, testSecret)
			require.NoError(t, err)
			assert.False(t, ok, "payment ref byte %d bit %d", i, bit)
		}
	}
	for i := range sig {
		for bit := uint(0); bit < 8; bit++ {
			ok, err := VerifySignature(orderRef, paymentRef, flipBit(sig, i, bit), testSecret)
			require.NoError(t, err)
			assert.False(t, ok, "signature byte %d bit %d", i, bit)
		}
	}
}

func TestVerifySignatureRejectsWrongSecret(t *testing.T) {
	sig := ComputeSignature("order_1", "pay_1", "other-secret")

	ok, err := VerifySignature("order_1", "pay_1", sig, testSecret)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifySignatureRejectsSwappedRefs(t *testing.T) {
	sig := ComputeSignature("a", "b", testSecret)

	ok, err := VerifySignature("b", "a", sig, testSecret)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifySignatureMissingInput(t *testing.T) {
	sig := ComputeSignature("o", "p", testSecret)
	cases := map[string][4]string{
		"order ref":   {"", "p", sig, testSecret},
		"payment ref": {"o", "", sig, testSecret},
		"signature":   {"o", "p", "", testSecret},
		"secret":      {"o", "p", sig, ""},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			ok, err := VerifySignature(in[0], in[1], in[2], in[3])
			assert.ErrorIs(t, err, ErrMissingSignatureInput)
			assert.False(t, ok)
		})
	}
}

func TestSignatureVerifierUsesConfiguredSecret(t *testing.T) {
	v := NewSignatureVerifier(testSecret)

	ok, err := v.Verify("order_9", "pay_9", ComputeSignature("order_9", "pay_9", testSecret))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.Verify("order_9", "pay_9", ComputeSignature("order_9", "pay_9", "nope"))
	require.NoError(t, err)
	assert.False(t, ok)
}
