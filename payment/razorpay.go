package payment

import (
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"
)

// Currency charged for every order intent
const Currency = "INR"

// OrderIntent is the gateway-side order a client pays against
type OrderIntent struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
	Status   string `json:"status,omitempty"`
	KeyID    string `json:"key_id"`
}

// IntentCreator creates gateway order intents before the client pays
type IntentCreator interface {
	CreateOrderIntent(amount decimal.Decimal, receipt string) (*OrderIntent, error)
}

// RazorpayGateway creates order intents through the Razorpay API
type RazorpayGateway struct {
	client *razorpay.Client
	keyID  string
}

// NewRazorpayGateway returns a gateway authenticated with the key pair
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		keyID:  keyID,
	}
}

// ToMinorUnits converts a rupee amount to paise
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CreateOrderIntent registers an order of amount rupees with the gateway
func (g *RazorpayGateway) CreateOrderIntent(amount decimal.Decimal, receipt string) (*OrderIntent, error) {
	if !amount.IsPositive() {
		return nil, errors.New("payment: amount must be positive")
	}
	data := map[string]interface{}{
		"amount":          ToMinorUnits(amount),
		"currency":        Currency,
		"payment_capture": 1,
	}
	if receipt != "" {
		data["receipt"] = receipt
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("payment: create razorpay order: %w", err)
	}
	return intentFromResponse(body, g.keyID)
}

func intentFromResponse(body map[string]interface{}, keyID string) (*OrderIntent, error) {
	id, _ := body["id"].(string)
	if id == "" {
		return nil, errors.New("payment: razorpay response missing order id")
	}
	intent := &OrderIntent{ID: id, KeyID: keyID, Currency: Currency}
	// JSON numbers decode as float64
	if amount, ok := body["amount"].(float64); ok {
		intent.Amount = int64(amount)
	}
	if currency, ok := body["currency"].(string); ok && currency != "" {
		intent.Currency = currency
	}
	intent.Receipt, _ = body["receipt"].(string)
	intent.Status, _ = body["status"].(string)
	return intent, nil
}
