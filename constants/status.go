package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Room status
const (
	RoomStatusAvailable   = 1
	RoomStatusUnavailable = 0
	RoomStatusMaintenance = 2
)

// Discount kinds shared by coupons and partner referral configs.
const (
	DiscountKindPercent = 0
	DiscountKindFlat    = 1
)

// ReferralCodePrefix distinguishes partner referral codes from plain
// coupon codes. A code without this prefix is looked up as a coupon.
const ReferralCodePrefix = "REF-"

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"
