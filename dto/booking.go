package dto

// CreateBookingRequest is the checkout payload. Monetary fields are
// never accepted from the client; the server recomputes the quote.
type CreateBookingRequest struct {
	RoomTypeID   uint   `json:"roomTypeId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Adults       int    `json:"adults" binding:"required"`
	Children     int    `json:"children"`
	CouponCode   string `json:"couponCode"`
	ReferralCode string `json:"referralCode"`

	// Guest contact, required only when the request is unauthenticated.
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`
}

type UpdateBookingStatusRequest struct {
	Status int `json:"status" binding:"min=0,max=5"`
	// ReferenceCode proves ownership when a guest checkout is
	// cancelled without an account.
	ReferenceCode string `json:"referenceCode"`
}

type BookingResponse struct {
	ID            uint   `json:"id"`
	ReferenceCode string `json:"referenceCode"`
	UserID        *uint  `json:"userId,omitempty"`

	Property BookingPropertyResponse `json:"property"`
	RoomType BookingRoomTypeResponse `json:"roomType"`
	Room     BookingRoomResponse     `json:"room"`

	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`

	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`

	BaseAmount       float64 `json:"baseAmount"`
	ExtraAdultAmount float64 `json:"extraAdultAmount"`
	ExtraChildAmount float64 `json:"extraChildAmount"`
	DiscountAmount   float64 `json:"discountAmount"`
	TaxAmount        float64 `json:"taxAmount"`
	TotalAmount      float64 `json:"totalAmount"`
	Currency         string  `json:"currency"`

	CouponCode   string `json:"couponCode,omitempty"`
	ReferralCode string `json:"referralCode,omitempty"`

	Status    int    `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type BookingPropertyResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Avatar  string `json:"avatar"`
}

type BookingRoomTypeResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
	Currency  string  `json:"currency"`
}

type BookingRoomResponse struct {
	ID         uint   `json:"id"`
	RoomNumber string `json:"roomNumber"`
	Floor      int    `json:"floor"`
}
