package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
)

func TestValidateStayDates(t *testing.T) {
	in := time.Now().AddDate(0, 0, 7).Format(constants.DateLayout)
	out := time.Now().AddDate(0, 0, 10).Format(constants.DateLayout)

	checkIn, checkOut, err := ValidateStayDates(in, out)
	assert.NoError(t, err)
	assert.Equal(t, 3, int(checkOut.Sub(checkIn).Hours()/24))

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantCode errors.ErrorCode
	}{
		{name: "missing dates", checkIn: "", checkOut: out, wantCode: errors.ErrCodeRequiredField},
		{name: "bad format", checkIn: "09/15/2026", checkOut: out, wantCode: errors.ErrCodeInvalidFormat},
		{name: "checkout before checkin", checkIn: out, checkOut: in, wantCode: errors.ErrCodeInvalidDateRange},
		{name: "same day", checkIn: in, checkOut: in, wantCode: errors.ErrCodeInvalidDateRange},
		{name: "past checkin", checkIn: "2020-01-01", checkOut: "2020-01-03", wantCode: errors.ErrCodeInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ValidateStayDates(tt.checkIn, tt.checkOut)
			appErr := errors.GetAppError(err)
			if assert.NotNil(t, appErr) {
				assert.Equal(t, tt.wantCode, appErr.Code)
			}
		})
	}
}

func TestValidateGuests(t *testing.T) {
	assert.NoError(t, ValidateGuests(2, 1))
	assert.Error(t, ValidateGuests(0, 0))
	assert.Error(t, ValidateGuests(2, -1))
}

func TestValidateGuestContact(t *testing.T) {
	assert.NoError(t, ValidateGuestContact("Asha Rao", "+919876543210", "asha@example.com"))
	assert.NoError(t, ValidateGuestContact("Asha Rao", "9876543210", ""))

	tests := []struct {
		name     string
		guest    string
		phone    string
		email    string
		wantCode errors.ErrorCode
	}{
		{name: "missing name", guest: "", phone: "9876543210", wantCode: errors.ErrCodeRequiredField},
		{name: "missing phone", guest: "Asha Rao", phone: "", wantCode: errors.ErrCodeRequiredField},
		{name: "short phone", guest: "Asha Rao", phone: "12345", wantCode: errors.ErrCodeInvalidPhone},
		{name: "bad email", guest: "Asha Rao", phone: "9876543210", email: "not-an-email", wantCode: errors.ErrCodeInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGuestContact(tt.guest, tt.phone, tt.email)
			appErr := errors.GetAppError(err)
			if assert.NotNil(t, appErr) {
				assert.Equal(t, tt.wantCode, appErr.Code)
			}
		})
	}
}

func TestValidateCoupon(t *testing.T) {
	valid := func() *models.Coupon {
		return &models.Coupon{
			Code:     "SUMMER10",
			Kind:     constants.DiscountKindPercent,
			Value:    10,
			Quantity: 100,
			FromDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			ToDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		}
	}

	assert.NoError(t, ValidateCoupon(valid()))

	tests := []struct {
		name   string
		mutate func(*models.Coupon)
	}{
		{name: "missing code", mutate: func(c *models.Coupon) { c.Code = "" }},
		{name: "referral prefix", mutate: func(c *models.Coupon) { c.Code = "REF-SUMMER" }},
		{name: "percent over 100", mutate: func(c *models.Coupon) { c.Value = 120 }},
		{name: "negative flat", mutate: func(c *models.Coupon) { c.Kind = constants.DiscountKindFlat; c.Value = -5 }},
		{name: "unknown kind", mutate: func(c *models.Coupon) { c.Kind = 7 }},
		{name: "negative quantity", mutate: func(c *models.Coupon) { c.Quantity = -1 }},
		{name: "window inverted", mutate: func(c *models.Coupon) { c.ToDate = c.FromDate.AddDate(0, -1, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, ValidateCoupon(c))
		})
	}
}

func TestValidatePartner(t *testing.T) {
	valid := func() *models.Partner {
		return &models.Partner{
			Name:          "Sunrise Travels",
			ReferralCode:  "REF-SUNRISE",
			DiscountKind:  constants.DiscountKindPercent,
			DiscountValue: 5,
		}
	}

	assert.NoError(t, ValidatePartner(valid()))

	t.Run("missing prefix", func(t *testing.T) {
		p := valid()
		p.ReferralCode = "SUNRISE"
		appErr := errors.GetAppError(ValidatePartner(p))
		if assert.NotNil(t, appErr) {
			assert.Equal(t, errors.ErrCodeInvalidFormat, appErr.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		p := valid()
		p.Name = ""
		assert.Error(t, ValidatePartner(p))
	})

	t.Run("percent out of range", func(t *testing.T) {
		p := valid()
		p.DiscountValue = 150
		assert.Error(t, ValidatePartner(p))
	})
}

func TestValidateRoomType(t *testing.T) {
	valid := func() *models.RoomType {
		return &models.RoomType{
			PropertyID:        1,
			Name:              "Deluxe King",
			BasePrice:         100,
			ExtraAdultPrice:   20,
			ExtraChildPrice:   10,
			StandardOccupancy: 2,
			FreeChildrenCount: 1,
			MaxAdults:         3,
			MaxChildren:       2,
			Currency:          "INR",
		}
	}

	assert.NoError(t, ValidateRoomType(valid()))

	t.Run("negative price", func(t *testing.T) {
		rt := valid()
		rt.BasePrice = -1
		assert.Error(t, ValidateRoomType(rt))
	})

	t.Run("unsupported currency", func(t *testing.T) {
		rt := valid()
		rt.Currency = "XYZ"
		appErr := errors.GetAppError(ValidateRoomType(rt))
		if assert.NotNil(t, appErr) {
			assert.Equal(t, errors.ErrCodeInvalidCurrency, appErr.Code)
		}
	})

	t.Run("occupancy above cap", func(t *testing.T) {
		rt := valid()
		rt.StandardOccupancy = 5
		assert.Error(t, ValidateRoomType(rt))
	})
}

func TestValidatePhoneFormats(t *testing.T) {
	assert.NoError(t, ValidatePhone("+919876543210"))
	assert.NoError(t, ValidatePhone("0987654321"))
	assert.Error(t, ValidatePhone("12-34-56"))
	assert.Error(t, ValidatePhone("123"))
}

func TestPasswordMinimumIsConsistent(t *testing.T) {
	assert.Error(t, ValidatePassword("seven77"))
	assert.NoError(t, ValidatePassword("eight888"))

	user := models.User{
		Email:       "asha@example.com",
		Password:    "seven77",
		PhoneNumber: "9876543210",
	}
	appErr := errors.GetAppError(ValidateUser(&user))
	if assert.NotNil(t, appErr) {
		assert.Equal(t, errors.ErrCodeInvalidPassword, appErr.Code)
	}

	user.Password = "eight888"
	assert.NoError(t, ValidateUser(&user))
}
