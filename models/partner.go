package models

import (
	"time"
)

// Partner is a channel partner. Bookings made with its referral code
// get the configured discount and attribute revenue to the partner.
type Partner struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"userId"`
	Name         string `json:"name"`
	ReferralCode string `json:"referralCode" gorm:"uniqueIndex;size:32"` // always carries the REF- prefix

	DiscountKind  int     `json:"discountKind"`
	DiscountValue float64 `json:"discountValue"`
	Active        bool    `json:"active" gorm:"default:true"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
}

// PartnerRevenue aggregates confirmed booking revenue per partner per day.
type PartnerRevenue struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PartnerID    uint      `gorm:"not null;uniqueIndex:idx_partner_date" json:"partnerId"`
	Partner      Partner   `gorm:"foreignKey:PartnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"partner"`
	Date         time.Time `gorm:"not null;uniqueIndex:idx_partner_date" json:"date"`
	Revenue      float64   `gorm:"not null" json:"revenue"`
	BookingCount int       `gorm:"not null" json:"bookingCount"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
