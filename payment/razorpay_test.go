package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(100000), ToMinorUnits(decimal.NewFromInt(1000)))
	assert.Equal(t, int64(49950), ToMinorUnits(decimal.RequireFromString("499.50")))
	assert.Equal(t, int64(1), ToMinorUnits(decimal.RequireFromString("0.005")))
}

func TestIntentFromResponse(t *testing.T) {
	body := map[string]interface{}{
		"id":       "order_Mx12",
		"amount":   float64(100000),
		"currency": "INR",
		"receipt":  "rcpt_1",
		"status":   "created",
	}

	intent, err := intentFromResponse(body, "rzp_test_key")
	require.NoError(t, err)
	assert.Equal(t, &OrderIntent{
		ID:       "order_Mx12",
		Amount:   100000,
		Currency: "INR",
		Receipt:  "rcpt_1",
		Status:   "created",
		KeyID:    "rzp_test_key",
	}, intent)
}

func TestIntentFromResponseWithoutID(t *testing.T) {
	_, err := intentFromResponse(map[string]interface{}{"amount": float64(10)}, "key")
	assert.Error(t, err)
}

func TestCreateOrderIntentRejectsNonPositiveAmount(t *testing.T) {
	g := NewRazorpayGateway("key", "secret")

	_, err := g.CreateOrderIntent(decimal.Zero, "rcpt")
	assert.Error(t, err)
	_, err = g.CreateOrderIntent(decimal.NewFromInt(-5), "rcpt")
	assert.Error(t, err)
}
