package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatusMapping(t *testing.T) {
	cases := []struct {
		err    *AppError
		kind   ErrorKind
		status int
	}{
		{UnauthenticatedError("x"), KindUnauthenticated, http.StatusUnauthorized},
		{ForbiddenError("x"), KindForbidden, http.StatusForbidden},
		{NotFoundError("x", nil), KindNotFound, http.StatusNotFound},
		{InvalidRequestError("x", nil), KindInvalidRequest, http.StatusBadRequest},
		{InvalidStateError("x", nil), KindInvalidState, http.StatusBadRequest},
		{ConflictError("x", nil), KindConflict, http.StatusConflict},
		{PaymentVerificationError("x"), KindPaymentVerificationFailed, http.StatusBadRequest},
		{InternalError("x", nil), KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.err.Kind)
		assert.Equal(t, tc.status, tc.err.Code, string(tc.kind))
		assert.Equal(t, tc.kind == KindInternal, tc.err.Retryable())
	}
}

func TestKindOfWrappedErrors(t *testing.T) {
	cause := errors.New("disk full")
	appErr := InternalError("Order store failure", cause)
	wrapped := fmt.Errorf("cancel: %w", appErr)

	assert.Equal(t, KindInternal, KindOf(wrapped))
	assert.Same(t, appErr, GetAppError(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "Order store failure: disk full", appErr.Error())

	assert.Equal(t, ErrorKind(""), KindOf(nil))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.True(t, IsKind(ConflictError("dup", nil), KindConflict))
	assert.False(t, IsKind(nil, KindConflict))
	assert.False(t, IsAppError(cause))
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	render := func(err error) (int, map[string]interface{}) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/orders/1", nil)
		RespondError(c, err)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w.Code, body
	}

	code, body := render(InvalidStateError("Cannot cancel order that has already been Shipped", nil))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Cannot cancel order that has already been Shipped", body["message"])
	assert.Equal(t, map[string]interface{}{"error": map[string]interface{}{"kind": "InvalidState"}}, body["data"])

	code, body = render(InternalError("Order store failure", errors.New("password=hunter2")))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Order store failure", body["message"])
	assert.NotContains(t, body, "data")

	code, body = render(errors.New("unexpected"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["message"])
}
