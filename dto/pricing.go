package dto

// CalculatePriceRequest asks for a quote without creating a booking.
type CalculatePriceRequest struct {
	RoomTypeID   uint   `json:"roomTypeId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Adults       int    `json:"adults" binding:"required"`
	Children     int    `json:"children"`
	CouponCode   string `json:"couponCode"`
	ReferralCode string `json:"referralCode"`
}

type QuoteResponse struct {
	NumberOfNights   int     `json:"numberOfNights"`
	BaseAmount       float64 `json:"baseAmount"`
	ExtraAdultAmount float64 `json:"extraAdultAmount"`
	ExtraChildAmount float64 `json:"extraChildAmount"`
	DiscountAmount   float64 `json:"discountAmount"`
	TaxAmount        float64 `json:"taxAmount"`
	TotalAmount      float64 `json:"totalAmount"`
	Currency         string  `json:"currency"`
	DiscountSource   string  `json:"discountSource,omitempty"`
}
