package dto

type CreateCouponRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Kind        int     `json:"kind" binding:"min=0,max=1"`
	Value       float64 `json:"value" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	MinNights   int     `json:"minNights"`
	FromDate    string  `json:"fromDate" binding:"required"`
	ToDate      string  `json:"toDate" binding:"required"`
}

type CouponResponse struct {
	ID          uint    `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Kind        int     `json:"kind"`
	Value       float64 `json:"value"`
	Quantity    int     `json:"quantity"`
	MinNights   int     `json:"minNights"`
	FromDate    string  `json:"fromDate"`
	ToDate      string  `json:"toDate"`
	Status      int     `json:"status"`
}
