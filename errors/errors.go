package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error class on the wire
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Booking errors
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeNoRoomsAvailable ErrorCode = "NO_ROOMS_AVAILABLE"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	ErrCodeOverCapacity     ErrorCode = "OVER_CAPACITY"

	// Discount errors
	ErrCodeCouponNotFound      ErrorCode = "COUPON_NOT_FOUND"
	ErrCodeCouponExpired       ErrorCode = "COUPON_EXPIRED"
	ErrCodeCouponNotApplicable ErrorCode = "COUPON_NOT_APPLICABLE"
	ErrCodeReferralNotFound    ErrorCode = "REFERRAL_NOT_FOUND"
	ErrCodeReferralInactive    ErrorCode = "REFERRAL_INACTIVE"
	ErrCodeAmbiguousDiscount   ErrorCode = "AMBIGUOUS_DISCOUNT"

	// Payment errors
	ErrCodePaymentFailed   ErrorCode = "PAYMENT_FAILED"
	ErrCodeInvalidAmount   ErrorCode = "INVALID_AMOUNT"
	ErrCodeGatewayError    ErrorCode = "GATEWAY_ERROR"
	ErrCodeInvalidCurrency ErrorCode = "INVALID_CURRENCY"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError carries an error code alongside a user-facing message
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts an AppError from err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingInvalid    = errors.New("invalid booking")
	ErrBookingCancelled  = errors.New("booking already cancelled")
	ErrBookingConfirmed  = errors.New("booking already confirmed")
	ErrNoRoomsAvailable  = errors.New("no rooms available for the requested dates")
	ErrAmbiguousDiscount = errors.New("coupon code and referral code are mutually exclusive")

	// Room errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrRoomNotAvailable = errors.New("room not available")
	ErrRoomTypeInUse    = errors.New("room type has dependent rooms or bookings")

	// Payment errors
	ErrPaymentFailed     = errors.New("payment verification failed")
	ErrPaymentRefunded   = errors.New("payment already refunded")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrSignatureMismatch = errors.New("payment signature mismatch")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
