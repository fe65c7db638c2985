package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhub/errors"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{amount: 0, want: 0},
		{amount: 1, want: 100},
		{amount: 99.99, want: 9999},
		{amount: 306.8, want: 30680},
		{amount: 0.1, want: 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinorUnits(tt.amount), "amount %v", tt.amount)
	}
}

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	g := NewPaymentGateway("http://localhost", "key_test", "secret_test")

	orderID := "order_9A33XWu170gUtm"
	paymentID := "pay_29QQoUBi66xm2f"

	err := g.VerifySignature(orderID, paymentID, signPayment("secret_test", orderID, paymentID))
	assert.NoError(t, err)

	err = g.VerifySignature(orderID, paymentID, signPayment("wrong_secret", orderID, paymentID))
	if assert.Error(t, err) {
		appErr := errors.GetAppError(err)
		if assert.NotNil(t, appErr) {
			assert.Equal(t, errors.ErrCodePaymentFailed, appErr.Code)
		}
	}

	err = g.VerifySignature(orderID, "", signPayment("secret_test", orderID, paymentID))
	if assert.Error(t, err) {
		appErr := errors.GetAppError(err)
		if assert.NotNil(t, appErr) {
			assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
		}
	}
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key_test", user)
		assert.Equal(t, "secret_test", pass)

		var req gatewayOrderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(30680), req.Amount)
		assert.Equal(t, "INR", req.Currency)
		assert.Equal(t, "BK-20260901-0001", req.Receipt)

		json.NewEncoder(w).Encode(gatewayOrderResponse{
			ID:       "order_9A33XWu170gUtm",
			Amount:   req.Amount,
			Currency: req.Currency,
			Status:   "created",
		})
	}))
	defer server.Close()

	g := NewPaymentGateway(server.URL, "key_test", "secret_test")

	order, err := g.CreateOrder("BK-20260901-0001", 306.8, "INR")
	assert.NoError(t, err)
	assert.Equal(t, "order_9A33XWu170gUtm", order.OrderID)
	assert.Equal(t, int64(30680), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "key_test", order.KeyID)
}

func TestCreateOrderGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	g := NewPaymentGateway(server.URL, "key_test", "secret_test")

	_, err := g.CreateOrder("BK-20260901-0002", 100, "INR")
	if assert.Error(t, err) {
		appErr := errors.GetAppError(err)
		if assert.NotNil(t, appErr) {
			assert.Equal(t, errors.ErrCodeGatewayError, appErr.Code)
		}
	}
}
