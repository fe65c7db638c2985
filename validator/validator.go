package validator

import (
	"regexp"
	"strings"
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
)

var supportedCurrencies = map[string]bool{
	"INR": true,
	"AED": true,
	"USD": true,
}

// ValidateUser checks a user payload before it hits the database.
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email address", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "password is required", nil)
	}

	if err := ValidatePassword(user.Password); err != nil {
		return err
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "phone number is required", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "invalid phone number", nil)
	}

	if user.Role < models.RoleGuest || user.Role > models.RoleReceptionist {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "invalid role", nil)
	}

	return nil
}

// ValidateStayDates parses the check-in/check-out pair and enforces a
// stay of at least one night starting no earlier than today.
func ValidateStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	var zero time.Time

	if checkIn == "" || checkOut == "" {
		return zero, zero, errors.NewAppError(errors.ErrCodeRequiredField, "checkInDate and checkOutDate are required", nil)
	}

	in, err := time.Parse(constants.DateLayout, checkIn)
	if err != nil {
		return zero, zero, errors.NewAppError(errors.ErrCodeInvalidFormat, "checkInDate must be YYYY-MM-DD", err)
	}

	out, err := time.Parse(constants.DateLayout, checkOut)
	if err != nil {
		return zero, zero, errors.NewAppError(errors.ErrCodeInvalidFormat, "checkOutDate must be YYYY-MM-DD", err)
	}

	if !out.After(in) {
		return zero, zero, errors.NewAppError(errors.ErrCodeInvalidDateRange, "checkOutDate must be after checkInDate", nil)
	}

	today := time.Now().Truncate(24 * time.Hour)
	if in.Before(today) {
		return zero, zero, errors.NewAppError(errors.ErrCodeInvalidDateRange, "checkInDate must not be in the past", nil)
	}

	return in, out, nil
}

// ValidateGuests rejects party sizes that no room type could hold.
func ValidateGuests(adults, children int) error {
	if adults < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "at least one adult is required", nil)
	}
	if children < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "children must not be negative", nil)
	}
	return nil
}

// ValidateGuestContact checks the contact block of an unauthenticated
// booking.
func ValidateGuestContact(name, phone, email string) error {
	if name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "guest name is required", nil)
	}
	if phone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "guest phone number is required", nil)
	}
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "invalid guest phone number", nil)
	}
	if email != "" && !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid guest email address", nil)
	}
	return nil
}

// ValidateRoomType checks capacity and pricing of a room type payload.
func ValidateRoomType(rt *models.RoomType) error {
	if rt.PropertyID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "propertyId is required", nil)
	}
	if rt.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "name is required", nil)
	}

	if err := rt.ValidateCapacity(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if rt.BasePrice < 0 || rt.ExtraAdultPrice < 0 || rt.ExtraChildPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "prices must not be negative", nil)
	}

	if rt.Currency != "" && !supportedCurrencies[strings.ToUpper(rt.Currency)] {
		return errors.NewAppError(errors.ErrCodeInvalidCurrency, "unsupported currency: "+rt.Currency, nil)
	}

	return nil
}

// ValidateCoupon checks a coupon payload.
func ValidateCoupon(coupon *models.Coupon) error {
	if coupon.Code == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "code is required", nil)
	}

	if strings.HasPrefix(coupon.Code, constants.ReferralCodePrefix) {
		return errors.NewAppError(errors.ErrCodeValidation, "coupon codes must not use the referral prefix", nil)
	}

	switch coupon.Kind {
	case constants.DiscountKindPercent:
		if coupon.Value < 0 || coupon.Value > 100 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "percent discount must be between 0 and 100", nil)
		}
	case constants.DiscountKindFlat:
		if coupon.Value < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "flat discount must not be negative", nil)
		}
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "invalid discount kind", nil)
	}

	if coupon.Quantity < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "quantity must not be negative", nil)
	}

	if coupon.MinNights < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "minNights must not be negative", nil)
	}

	if !coupon.ToDate.After(coupon.FromDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "toDate must be after fromDate", nil)
	}

	return nil
}

// ValidatePartner checks a partner payload, including the referral code
// prefix convention.
func ValidatePartner(partner *models.Partner) error {
	if partner.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "name is required", nil)
	}

	if partner.ReferralCode == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "referralCode is required", nil)
	}

	if !strings.HasPrefix(partner.ReferralCode, constants.ReferralCodePrefix) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "referralCode must start with "+constants.ReferralCodePrefix, nil)
	}

	switch partner.DiscountKind {
	case constants.DiscountKindPercent:
		if partner.DiscountValue < 0 || partner.DiscountValue > 100 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "percent discount must be between 0 and 100", nil)
		}
	case constants.DiscountKindFlat:
		if partner.DiscountValue < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "flat discount must not be negative", nil)
		}
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "invalid discount kind", nil)
	}

	return nil
}

// ValidateAmount rejects negative monetary amounts.
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "amount must not be negative", nil)
	}
	return nil
}

// ValidateEmail checks a single email address.
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email address", nil)
	}
	return nil
}

// ValidatePhone checks a single phone number.
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "invalid phone number", nil)
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "password must be at least 8 characters", nil)
	}
	return nil
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,13}$`)
)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
