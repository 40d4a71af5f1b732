package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Govind-619/Storefront/controllers"
	"github.com/Govind-619/Storefront/metrics"
	"github.com/Govind-619/Storefront/payment"
	"github.com/Govind-619/Storefront/repository"
	"github.com/Govind-619/Storefront/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	jwtSecret     = "routes-jwt-secret"
	gatewaySecret = "routes-gateway-secret"
)

type stubGateway struct{}

func (stubGateway) CreateOrderIntent(amount decimal.Decimal, receipt string) (*payment.OrderIntent, error) {
	return &payment.OrderIntent{
		ID:       "order_stub",
		Amount:   payment.ToMinorUnits(amount),
		Currency: payment.Currency,
		Receipt:  receipt,
		Status:   "created",
		KeyID:    "rzp_test",
	}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *repository.MemoryOrderStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryOrderStore()
	reg := metrics.New()
	orders := services.NewOrderService(store, reg)
	returns := services.NewReturnService(store, reg)
	checkout := services.NewCheckoutService(store, payment.NewSignatureVerifier(gatewaySecret), reg)

	router := SetupRouter(Dependencies{
		Orders:     controllers.NewOrderController(orders, returns),
		Payments:   controllers.NewPaymentController(checkout, stubGateway{}),
		Metrics:    reg,
		JWTSecret:  jwtSecret,
		CORSOrigin: "*",
	})
	return router, store
}

func bearer(t *testing.T, principal, role string) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": principal}
	if role != "" {
		claims["role"] = role
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func call(t *testing.T, r http.Handler, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthAndMetrics(t *testing.T) {
	r, _ := newTestRouter(t)

	w := call(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = call(t, r, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "storefront_http_requests_total")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/orders/my-orders"},
		{http.MethodPost, "/api/orders"},
		{http.MethodPut, "/api/orders/x/cancel"},
		{http.MethodGet, "/api/orders"},
		{http.MethodPost, "/api/payment/create"},
		{http.MethodPost, "/api/payment/verify"},
	} {
		w := call(t, r, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}

	w := call(t, r, http.MethodGet, "/api/orders", bearer(t, "user_1", ""), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = call(t, r, http.MethodGet, "/api/orders", bearer(t, "admin_1", "admin"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreatePaymentIntent(t *testing.T) {
	r, _ := newTestRouter(t)
	auth := bearer(t, "user_1", "")

	w := call(t, r, http.MethodPost, "/api/payment/create", auth, gin.H{"amount": "499.50"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var env struct {
		Data payment.OrderIntent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, int64(49950), env.Data.Amount)
	assert.Equal(t, "INR", env.Data.Currency)
	assert.Len(t, env.Data.Receipt, len("rcpt_")+20)

	w = call(t, r, http.MethodPost, "/api/payment/create", auth, gin.H{"amount": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutToReturnFlow(t *testing.T) {
	r, store := newTestRouter(t)
	alice := bearer(t, "user_alice", "")
	admin := bearer(t, "admin_1", "admin")

	verify := gin.H{
		"razorpay_order_id":   "order_R1",
		"razorpay_payment_id": "pay_R1",
		"razorpay_signature":  payment.ComputeSignature("order_R1", "pay_R1", gatewaySecret),
		"cart": []gin.H{
			{"product_id": "tee-1", "name": "Tee", "price": 500, "quantity": 2},
		},
		"total_amount":     1000,
		"payment_method":   "upi",
		"shipping_address": gin.H{"full_name": "Alice", "city": "Pune"},
	}

	forged := gin.H{}
	for k, v := range verify {
		forged[k] = v
	}
	forged["razorpay_signature"] = payment.ComputeSignature("order_R1", "pay_R1", "wrong")
	w := call(t, r, http.MethodPost, "/api/payment/verify", alice, forged)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	untotalled := gin.H{}
	for k, v := range verify {
		if k != "total_amount" {
			untotalled[k] = v
		}
	}
	w = call(t, r, http.MethodPost, "/api/payment/verify", alice, untotalled)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Total amount is required")

	all, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)

	w = call(t, r, http.MethodPost, "/api/payment/verify", alice, verify)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var env struct {
		Data struct {
			ID            string `json:"id"`
			PaymentStatus string `json:"payment_status"`
			OrderStatus   string `json:"order_status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Paid", env.Data.PaymentStatus)
	assert.Equal(t, "Placed", env.Data.OrderStatus)
	orderPath := "/api/orders/" + env.Data.ID

	w = call(t, r, http.MethodPost, "/api/payment/verify", bearer(t, "user_mallory", ""), verify)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(t, r, http.MethodPut, orderPath+"/status", alice, gin.H{"status": "Delivered"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = call(t, r, http.MethodPut, orderPath+"/status", admin, gin.H{"status": "Delivered"})
	require.Equal(t, http.StatusOK, w.Code)

	w = call(t, r, http.MethodPut, orderPath+"/return-request", alice, gin.H{"reason": "Size/Fit Issue", "description": "Too small"})
	require.Equal(t, http.StatusOK, w.Code)
	w = call(t, r, http.MethodPut, orderPath+"/approve-return", admin, gin.H{"refund_status": "Processed"})
	require.Equal(t, http.StatusOK, w.Code)

	order, err := store.Get(context.Background(), env.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, "Approved", string(order.ReturnRequest.Status))
	assert.Equal(t, "Processed", string(order.ReturnRequest.RefundStatus))
	assert.Equal(t, "1000", order.ReturnRequest.RefundAmount.String())
}
