package services

import (
	"math"
	"strings"
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"

	"gorm.io/gorm"
)

// Quote is the priced breakdown of a prospective stay. All amounts are
// rounded to the currency minor unit once, at the end of computation.
type Quote struct {
	NumberOfNights   int     `json:"numberOfNights"`
	BaseAmount       float64 `json:"baseAmount"`
	ExtraAdultAmount float64 `json:"extraAdultAmount"`
	ExtraChildAmount float64 `json:"extraChildAmount"`
	DiscountAmount   float64 `json:"discountAmount"`
	TaxAmount        float64 `json:"taxAmount"`
	TotalAmount      float64 `json:"totalAmount"`
	Currency         string  `json:"currency"`
}

// DiscountTerms is the resolved discount from either a coupon or a
// partner referral code. At most one source applies per booking.
type DiscountTerms struct {
	Source    string // "coupon" or "referral"
	Code      string
	Kind      int
	Value     float64
	PartnerID *uint
}

// RoundMoney rounds to 2 decimal places, half up.
func RoundMoney(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// ApplyDiscount returns the discount off a pre-tax subtotal, clamped so
// it can never exceed the subtotal.
func ApplyDiscount(subtotal float64, terms *DiscountTerms) float64 {
	if terms == nil {
		return 0
	}
	var discount float64
	switch terms.Kind {
	case constants.DiscountKindPercent:
		discount = subtotal * terms.Value / 100
	case constants.DiscountKindFlat:
		discount = terms.Value
	}
	if discount < 0 {
		return 0
	}
	if discount > subtotal {
		return subtotal
	}
	return discount
}

// ComputeQuote prices a stay of the given room type. Rounding happens
// once on the final components, not per intermediate step.
func ComputeQuote(rt models.RoomType, nights, adults, children int, terms *DiscountTerms, taxRate float64) (Quote, error) {
	if nights < 1 {
		return Quote{}, errors.NewAppError(errors.ErrCodeInvalidDateRange, "stay must be at least one night", nil)
	}
	if adults < 1 {
		return Quote{}, errors.NewAppError(errors.ErrCodeValidation, "at least one adult is required", nil)
	}
	if children < 0 {
		return Quote{}, errors.NewAppError(errors.ErrCodeValidation, "children count must not be negative", nil)
	}
	if rt.StandardOccupancy < 1 {
		return Quote{}, errors.NewAppError(errors.ErrCodeValidation, "room type has no standard occupancy configured", nil)
	}

	base := rt.BasePrice * float64(nights)

	extraAdults := adults - rt.StandardOccupancy
	if extraAdults < 0 {
		extraAdults = 0
	}
	extraAdultAmount := float64(extraAdults) * rt.ExtraAdultPrice * float64(nights)

	extraChildren := children - rt.FreeChildrenCount
	if extraChildren < 0 {
		extraChildren = 0
	}
	extraChildAmount := float64(extraChildren) * rt.ExtraChildPrice * float64(nights)

	subtotal := base + extraAdultAmount + extraChildAmount
	discount := ApplyDiscount(subtotal, terms)
	taxable := subtotal - discount
	tax := taxable * taxRate

	return Quote{
		NumberOfNights:   nights,
		BaseAmount:       RoundMoney(base),
		ExtraAdultAmount: RoundMoney(extraAdultAmount),
		ExtraChildAmount: RoundMoney(extraChildAmount),
		DiscountAmount:   RoundMoney(discount),
		TaxAmount:        RoundMoney(tax),
		TotalAmount:      RoundMoney(taxable + tax),
		Currency:         rt.Currency,
	}, nil
}

type PricingService struct {
	db      *gorm.DB
	taxRate float64
}

func NewPricingService(db *gorm.DB, taxRate float64) *PricingService {
	return &PricingService{db: db, taxRate: taxRate}
}

// ResolveDiscount maps the optional coupon/referral codes of a request
// to discount terms. Supplying both codes is a caller error: the two
// fields are mutually exclusive and neither is silently preferred.
func (s *PricingService) ResolveDiscount(couponCode, referralCode string, nights int, checkIn time.Time) (*DiscountTerms, error) {
	couponCode = strings.TrimSpace(couponCode)
	referralCode = strings.TrimSpace(referralCode)

	if couponCode != "" && referralCode != "" {
		return nil, errors.NewAppError(errors.ErrCodeAmbiguousDiscount,
			"supply either a coupon code or a referral code, not both", errors.ErrAmbiguousDiscount)
	}

	if referralCode != "" {
		return s.resolveReferral(referralCode)
	}
	if couponCode != "" {
		return s.resolveCoupon(couponCode, nights, checkIn)
	}
	return nil, nil
}

func (s *PricingService) resolveReferral(code string) (*DiscountTerms, error) {
	// Format check before lookup: referral codes live in their own
	// prefixed namespace.
	if !strings.HasPrefix(code, constants.ReferralCodePrefix) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat,
			"referral codes start with "+constants.ReferralCodePrefix, nil)
	}

	var partner models.Partner
	if err := s.db.Where("referral_code = ?", code).First(&partner).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeReferralNotFound, "referral code "+code+" not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to look up referral code", err)
	}
	if !partner.Active {
		return nil, errors.NewAppError(errors.ErrCodeReferralInactive, "referral code "+code+" is no longer active", nil)
	}

	partnerID := partner.ID
	return &DiscountTerms{
		Source:    "referral",
		Code:      code,
		Kind:      partner.DiscountKind,
		Value:     partner.DiscountValue,
		PartnerID: &partnerID,
	}, nil
}

func (s *PricingService) resolveCoupon(code string, nights int, checkIn time.Time) (*DiscountTerms, error) {
	var coupon models.Coupon
	if err := s.db.Where("code = ?", code).First(&coupon).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeCouponNotFound, "coupon "+code+" not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to look up coupon", err)
	}

	if coupon.Status != 1 || coupon.Quantity <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeCouponExpired, "coupon "+code+" is no longer active", nil)
	}
	if checkIn.Before(coupon.FromDate) || !checkIn.Before(coupon.ToDate) {
		return nil, errors.NewAppError(errors.ErrCodeCouponNotApplicable,
			"coupon "+code+" does not apply to the requested dates", nil)
	}
	if nights < coupon.MinNights {
		return nil, errors.NewAppError(errors.ErrCodeCouponNotApplicable,
			"coupon "+code+" requires a longer stay", nil)
	}

	return &DiscountTerms{
		Source: "coupon",
		Code:   code,
		Kind:   coupon.Kind,
		Value:  coupon.Value,
	}, nil
}

// QuoteStay loads the room type and returns the server-side quote for
// the requested stay. Client-submitted prices are never trusted.
func (s *PricingService) QuoteStay(roomTypeID uint, checkIn, checkOut time.Time, adults, children int, couponCode, referralCode string) (Quote, *DiscountTerms, error) {
	if err := ValidateStayRange(checkIn, checkOut); err != nil {
		return Quote{}, nil, err
	}
	nights := NumberOfNights(checkIn, checkOut)

	var rt models.RoomType
	if err := s.db.First(&rt, roomTypeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return Quote{}, nil, errors.NewAppError(errors.ErrCodeDBNotFound, "room type not found", errors.ErrRoomTypeNotFound)
		}
		return Quote{}, nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room type", err)
	}

	terms, err := s.ResolveDiscount(couponCode, referralCode, nights, checkIn)
	if err != nil {
		return Quote{}, nil, err
	}

	quote, err := ComputeQuote(rt, nights, adults, children, terms, s.taxRate)
	if err != nil {
		return Quote{}, nil, err
	}
	return quote, terms, nil
}
