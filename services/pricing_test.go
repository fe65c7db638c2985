package services

import (
	"testing"
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
)

func standardRoomType() models.RoomType {
	return models.RoomType{
		ID:                1,
		Name:              "Deluxe King",
		MaxAdults:         3,
		MaxChildren:       2,
		FreeChildrenCount: 1,
		StandardOccupancy: 2,
		BasePrice:         100,
		ExtraAdultPrice:   20,
		ExtraChildPrice:   10,
		Currency:          "INR",
	}
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 10.25, RoundMoney(10.2451))
	assert.Equal(t, 10.24, RoundMoney(10.244))
	assert.Equal(t, 0.0, RoundMoney(0))
	assert.Equal(t, 100.0, RoundMoney(99.999))
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		terms    *DiscountTerms
		want     float64
	}{
		{"nil terms", 200, nil, 0},
		{"percent", 200, &DiscountTerms{Kind: constants.DiscountKindPercent, Value: 10}, 20},
		{"flat", 200, &DiscountTerms{Kind: constants.DiscountKindFlat, Value: 50}, 50},
		{"flat clamped to subtotal", 40, &DiscountTerms{Kind: constants.DiscountKindFlat, Value: 100}, 40},
		{"hundred percent", 200, &DiscountTerms{Kind: constants.DiscountKindPercent, Value: 100}, 200},
		{"negative value ignored", 200, &DiscountTerms{Kind: constants.DiscountKindFlat, Value: -5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyDiscount(tt.subtotal, tt.terms))
		})
	}
}

func TestComputeQuoteBasePartyOnly(t *testing.T) {
	rt := standardRoomType()

	quote, err := ComputeQuote(rt, 2, 2, 1, nil, 0.18)
	assert.NoError(t, err)

	assert.Equal(t, 2, quote.NumberOfNights)
	assert.InDelta(t, 200.0, quote.BaseAmount, 0.001)
	assert.InDelta(t, 0.0, quote.ExtraAdultAmount, 0.001)
	assert.InDelta(t, 0.0, quote.ExtraChildAmount, 0.001)
	assert.InDelta(t, 36.0, quote.TaxAmount, 0.001)
	assert.InDelta(t, 236.0, quote.TotalAmount, 0.001)
	assert.Equal(t, "INR", quote.Currency)
}

func TestComputeQuoteExtraGuests(t *testing.T) {
	rt := standardRoomType()

	// 1 adult over standard occupancy, 1 child over the free count.
	quote, err := ComputeQuote(rt, 2, 3, 2, nil, 0.18)
	assert.NoError(t, err)

	assert.InDelta(t, 200.0, quote.BaseAmount, 0.001)
	assert.InDelta(t, 40.0, quote.ExtraAdultAmount, 0.001)
	assert.InDelta(t, 20.0, quote.ExtraChildAmount, 0.001)
	assert.InDelta(t, 46.8, quote.TaxAmount, 0.001)
	assert.InDelta(t, 306.8, quote.TotalAmount, 0.001)
}

func TestComputeQuotePercentDiscountBeforeTax(t *testing.T) {
	rt := standardRoomType()
	terms := &DiscountTerms{Source: "coupon", Code: "SAVE10", Kind: constants.DiscountKindPercent, Value: 10}

	quote, err := ComputeQuote(rt, 2, 2, 0, terms, 0.18)
	assert.NoError(t, err)

	// Tax applies to the discounted subtotal: (200 - 20) * 0.18.
	assert.InDelta(t, 20.0, quote.DiscountAmount, 0.001)
	assert.InDelta(t, 32.4, quote.TaxAmount, 0.001)
	assert.InDelta(t, 212.4, quote.TotalAmount, 0.001)
}

func TestComputeQuoteFlatDiscountClamped(t *testing.T) {
	rt := standardRoomType()
	terms := &DiscountTerms{Source: "referral", Code: "REF-ACME", Kind: constants.DiscountKindFlat, Value: 10000}

	quote, err := ComputeQuote(rt, 1, 2, 0, terms, 0.18)
	assert.NoError(t, err)

	assert.InDelta(t, 100.0, quote.DiscountAmount, 0.001)
	assert.InDelta(t, 0.0, quote.TaxAmount, 0.001)
	assert.InDelta(t, 0.0, quote.TotalAmount, 0.001)
}

func TestComputeQuoteSingleRounding(t *testing.T) {
	rt := standardRoomType()
	rt.BasePrice = 99.99

	quote, err := ComputeQuote(rt, 3, 2, 0, nil, 0.18)
	assert.NoError(t, err)

	// 299.97 * 1.18 = 353.9646, rounded half up once at the end.
	assert.InDelta(t, 299.97, quote.BaseAmount, 0.001)
	assert.InDelta(t, 53.99, quote.TaxAmount, 0.001)
	assert.InDelta(t, 353.96, quote.TotalAmount, 0.001)
}

func TestComputeQuoteRejectsBadInput(t *testing.T) {
	rt := standardRoomType()

	tests := []struct {
		name     string
		nights   int
		adults   int
		children int
		wantCode errors.ErrorCode
	}{
		{"zero nights", 0, 2, 0, errors.ErrCodeInvalidDateRange},
		{"negative nights", -1, 2, 0, errors.ErrCodeInvalidDateRange},
		{"no adults", 2, 0, 0, errors.ErrCodeValidation},
		{"negative children", 2, 2, -1, errors.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeQuote(rt, tt.nights, tt.adults, tt.children, nil, 0.18)
			assert.Error(t, err)
			appErr := errors.GetAppError(err)
			assert.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestComputeQuoteRequiresStandardOccupancy(t *testing.T) {
	rt := standardRoomType()
	rt.StandardOccupancy = 0

	_, err := ComputeQuote(rt, 2, 2, 0, nil, 0.18)
	assert.Error(t, err)
}

func TestResolveDiscountRejectsBothCodes(t *testing.T) {
	s := &PricingService{}

	_, err := s.ResolveDiscount("SUMMER10", "REF-SUNRISE", 2, time.Now())
	assert.Error(t, err)
	appErr := errors.GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, errors.ErrCodeAmbiguousDiscount, appErr.Code)
	}
}

func TestResolveDiscountNoCodes(t *testing.T) {
	s := &PricingService{}

	terms, err := s.ResolveDiscount("", "  ", 2, time.Now())
	assert.NoError(t, err)
	assert.Nil(t, terms)
}

func TestComputeQuoteTwoNightExtraAdult(t *testing.T) {
	rt := models.RoomType{
		ID:                2,
		BasePrice:         1000,
		ExtraAdultPrice:   200,
		ExtraChildPrice:   0,
		StandardOccupancy: 2,
		MaxAdults:         4,
		MaxChildren:       2,
		Currency:          "INR",
	}

	quote, err := ComputeQuote(rt, 2, 3, 0, nil, 0.18)
	assert.NoError(t, err)
	assert.Equal(t, 2000.0, quote.BaseAmount)
	assert.Equal(t, 400.0, quote.ExtraAdultAmount)
	assert.Equal(t, 0.0, quote.DiscountAmount)
	assert.Equal(t, 432.0, quote.TaxAmount)
	assert.Equal(t, 2832.0, quote.TotalAmount)

	discounted, err := ComputeQuote(rt, 2, 3, 0, &DiscountTerms{
		Source: "coupon",
		Code:   "GUEST10",
		Kind:   constants.DiscountKindPercent,
		Value:  10,
	}, 0.18)
	assert.NoError(t, err)
	assert.Equal(t, 240.0, discounted.DiscountAmount)
	assert.Equal(t, 388.8, discounted.TaxAmount)
	assert.Equal(t, 2548.8, discounted.TotalAmount)
}
