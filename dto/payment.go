package dto

// InitiatePaymentRequest starts a hosted gateway checkout for a pending
// booking.
type InitiatePaymentRequest struct {
	BookingID uint `json:"bookingId" binding:"required"`
}

type InitiatePaymentResponse struct {
	BookingID     uint   `json:"bookingId"`
	ReferenceCode string `json:"referenceCode"`
	OrderID       string `json:"orderId"`
	Amount        int64  `json:"amount"` // minor units
	Currency      string `json:"currency"`
	KeyID         string `json:"keyId"`
}

// VerifyPaymentRequest carries the gateway callback fields whose
// signature proves the payment happened.
type VerifyPaymentRequest struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}
