package services

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"stayhub/errors"
)

// GatewayOrder is the hosted checkout order returned to the client.
// Amount is in the currency's minor unit, as the gateway expects.
type GatewayOrder struct {
	OrderID  string  `json:"orderId"`
	Amount   int64   `json:"amount"`
	Currency string  `json:"currency"`
	KeyID    string  `json:"keyId"`
	Raw      float64 `json:"-"`
}

// PaymentGateway is a thin pass-through to the hosted payment provider:
// order creation plus callback signature verification.
type PaymentGateway struct {
	baseURL   string
	keyID     string
	keySecret string
	client    *http.Client
}

func NewPaymentGateway(baseURL, keyID, keySecret string) *PaymentGateway {
	return &PaymentGateway{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type gatewayOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type gatewayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// MinorUnits converts a rounded decimal amount to the gateway's integer
// minor-unit representation.
func MinorUnits(amount float64) int64 {
	return int64(RoundMoney(amount)*100 + 0.5)
}

// CreateOrder registers a gateway order for the booking amount and
// returns what the client needs to open the hosted checkout.
func (g *PaymentGateway) CreateOrder(referenceCode string, amount float64, currency string) (*GatewayOrder, error) {
	payload, err := json.Marshal(gatewayOrderRequest{
		Amount:   MinorUnits(amount),
		Currency: currency,
		Receipt:  referenceCode,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, g.baseURL+"/v1/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeGatewayError, "payment gateway unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(errors.ErrCodeGatewayError,
			fmt.Sprintf("payment gateway returned status %d", resp.StatusCode), nil)
	}

	var order gatewayOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeGatewayError, "cannot parse gateway response", err)
	}

	return &GatewayOrder{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    g.keyID,
		Raw:      amount,
	}, nil
}

// VerifySignature checks the HMAC-SHA256 the gateway computes over
// "orderID|paymentID" with the key secret. A mismatch means the
// callback was not produced by the gateway.
func (g *PaymentGateway) VerifySignature(orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return errors.NewAppError(errors.ErrCodeValidation, "orderId, paymentId and signature are required", nil)
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) != 1 {
		return errors.NewAppError(errors.ErrCodePaymentFailed,
			"payment signature mismatch", errors.ErrSignatureMismatch)
	}
	return nil
}
