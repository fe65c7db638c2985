package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPendingPayment = 0
	BookingStatusConfirmed      = 1
	BookingStatusCancelled      = 2
	BookingStatusRefunded       = 3
	BookingStatusCheckedIn      = 4
	BookingStatusCheckedOut     = 5
)

type Booking struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	ReferenceCode string `json:"referenceCode" gorm:"uniqueIndex;size:36"`
	UserID        *uint  `json:"userId"`
	User          *User  `json:"user" gorm:"foreignKey:UserID"`

	RoomTypeID uint     `json:"roomTypeId" gorm:"index"`
	RoomType   RoomType `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	// RoomID is fixed at creation time: the physical room the stay
	// consumes. Overlap checks run against this column.
	RoomID uint `json:"roomId" gorm:"index"`
	Room   Room `json:"room" gorm:"foreignKey:RoomID"`

	CheckInDate  time.Time `json:"checkInDate" gorm:"index"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"index"`
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`

	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`

	// Monetary breakdown, persisted in the booking's own currency.
	BaseAmount       float64 `json:"baseAmount"`
	ExtraAdultAmount float64 `json:"extraAdultAmount"`
	ExtraChildAmount float64 `json:"extraChildAmount"`
	DiscountAmount   float64 `json:"discountAmount"`
	TaxAmount        float64 `json:"taxAmount"`
	TotalAmount      float64 `json:"totalAmount"`
	Currency         string  `json:"currency" gorm:"size:3"`

	CouponCode   string `json:"couponCode,omitempty"`
	ReferralCode string `json:"referralCode,omitempty"`
	PartnerID    *uint  `json:"partnerId,omitempty"`

	Status    int       `json:"status" gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Active reports whether the booking consumes room inventory. Only
// pending and confirmed bookings block other reservations.
func (b *Booking) Active() bool {
	return b.Status == BookingStatusPendingPayment || b.Status == BookingStatusConfirmed
}
