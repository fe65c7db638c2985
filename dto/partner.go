package dto

type CreatePartnerRequest struct {
	UserID        uint    `json:"userId"`
	Name          string  `json:"name" binding:"required"`
	ReferralCode  string  `json:"referralCode" binding:"required"`
	DiscountKind  int     `json:"discountKind" binding:"min=0,max=1"`
	DiscountValue float64 `json:"discountValue" binding:"required"`
}

type PartnerResponse struct {
	ID            uint    `json:"id"`
	UserID        uint    `json:"userId"`
	Name          string  `json:"name"`
	ReferralCode  string  `json:"referralCode"`
	DiscountKind  int     `json:"discountKind"`
	DiscountValue float64 `json:"discountValue"`
	Active        bool    `json:"active"`
}

type PartnerRevenueResponse struct {
	PartnerID    uint    `json:"partnerId"`
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	BookingCount int     `json:"bookingCount"`
}

type ToggleActiveRequest struct {
	Active bool `json:"active"`
}
