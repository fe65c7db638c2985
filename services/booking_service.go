package services

import (
	"fmt"
	"time"

	"stayhub/commands"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"

	"github.com/go-redsync/redsync/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// pendingPaymentTTL is how long an unpaid booking holds its room before
// the cleanup job releases it.
const pendingPaymentTTL = 30 * time.Minute

type BookingService struct {
	db           *gorm.DB
	rs           *redsync.Redsync
	availability *AvailabilityService
	pricing      *PricingService
	log          logger.Logger
}

type BookingServiceOptions struct {
	DB      *gorm.DB
	Redsync *redsync.Redsync
	TaxRate float64
	Logger  logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:           opts.DB,
		rs:           opts.Redsync,
		availability: NewAvailabilityService(opts.DB),
		pricing:      NewPricingService(opts.DB, opts.TaxRate),
		log:          l,
	}
}

func (s *BookingService) Availability() *AvailabilityService { return s.availability }
func (s *BookingService) Pricing() *PricingService           { return s.pricing }

// CreateBookingInput carries everything the checkout submits. Prices
// are recomputed server-side; nothing monetary is taken from it.
type CreateBookingInput struct {
	UserID       *uint
	RoomTypeID   uint
	CheckIn      time.Time
	CheckOut     time.Time
	Adults       int
	Children     int
	CouponCode   string
	ReferralCode string
	GuestName    string
	GuestEmail   string
	GuestPhone   string
}

// Create re-runs availability and pricing, then inserts the booking in
// PENDING_PAYMENT. A per-room-type distributed mutex plus a locking
// re-check inside the transaction keep two concurrent checkouts from
// consuming the same room for overlapping dates.
func (s *BookingService) Create(input CreateBookingInput) (*models.Booking, error) {
	quote, terms, err := s.pricing.QuoteStay(input.RoomTypeID, input.CheckIn, input.CheckOut,
		input.Adults, input.Children, input.CouponCode, input.ReferralCode)
	if err != nil {
		return nil, err
	}

	var rt models.RoomType
	if err := s.db.First(&rt, input.RoomTypeID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "room type not found", errors.ErrRoomTypeNotFound)
	}
	if !FitsCapacity(rt, input.Adults, input.Children) {
		return nil, errors.NewAppError(errors.ErrCodeOverCapacity, "party exceeds the room type capacity", nil)
	}

	mutex := s.rs.NewMutex(fmt.Sprintf("booking:roomtype:%d", input.RoomTypeID),
		redsync.WithExpiry(8*time.Second))
	if err := mutex.Lock(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "could not acquire booking lock", err)
	}
	defer func() {
		if _, err := mutex.Unlock(); err != nil {
			s.log.Error("failed to release booking lock for room type %d: %v", input.RoomTypeID, err)
		}
	}()

	var booking models.Booking
	err = s.db.Transaction(func(tx *gorm.DB) error {
		room, err := s.availability.FreeRoomForRange(tx, input.RoomTypeID, input.CheckIn, input.CheckOut)
		if err != nil {
			return err
		}
		if room == nil {
			return errors.NewAppError(errors.ErrCodeNoRoomsAvailable,
				"no rooms of this type are available for the requested dates", errors.ErrNoRoomsAvailable)
		}

		booking = models.Booking{
			ReferenceCode:    uuid.NewString(),
			UserID:           input.UserID,
			RoomTypeID:       input.RoomTypeID,
			RoomID:           room.RoomID,
			CheckInDate:      input.CheckIn,
			CheckOutDate:     input.CheckOut,
			Adults:           input.Adults,
			Children:         input.Children,
			GuestName:        input.GuestName,
			GuestEmail:       input.GuestEmail,
			GuestPhone:       input.GuestPhone,
			BaseAmount:       quote.BaseAmount,
			ExtraAdultAmount: quote.ExtraAdultAmount,
			ExtraChildAmount: quote.ExtraChildAmount,
			DiscountAmount:   quote.DiscountAmount,
			TaxAmount:        quote.TaxAmount,
			TotalAmount:      quote.TotalAmount,
			Currency:         quote.Currency,
			Status:           models.BookingStatusPendingPayment,
		}
		if terms != nil {
			if terms.Source == "coupon" {
				booking.CouponCode = terms.Code
				// Consume one use inside the same transaction.
				res := tx.Model(&models.Coupon{}).
					Where("code = ? AND quantity > 0", terms.Code).
					UpdateColumn("quantity", gorm.Expr("quantity - 1"))
				if res.Error != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "failed to consume coupon", res.Error)
				}
				if res.RowsAffected == 0 {
					return errors.NewAppError(errors.ErrCodeCouponExpired, "coupon "+terms.Code+" is exhausted", nil)
				}
			} else {
				booking.ReferralCode = terms.Code
				booking.PartnerID = terms.PartnerID
			}
		}

		if err := commands.NewCreateBookingCommand(&booking, tx).Execute(); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking %s created for room type %d, room %d", booking.ReferenceCode, booking.RoomTypeID, booking.RoomID)
	return &booking, nil
}

// Confirm transitions a verified-paid booking to CONFIRMED, issues the
// invoice and credits partner revenue.
func (s *BookingService) Confirm(bookingID uint, gatewayRef string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", errors.ErrBookingNotFound)
	}
	if booking.Status == models.BookingStatusConfirmed {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "booking already confirmed", errors.ErrBookingConfirmed)
	}
	if booking.Status != models.BookingStatusPendingPayment {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "booking is not awaiting payment", nil)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		booking.Status = models.BookingStatusConfirmed
		booking.UpdatedAt = now
		if err := commands.NewUpdateBookingCommand(&booking, tx).Execute(); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to confirm booking", err)
		}

		invoice := models.Invoice{
			BookingID:   booking.ID,
			TotalAmount: booking.TotalAmount,
			Currency:    booking.Currency,
			PartnerID:   booking.PartnerID,
			PaymentDate: &now,
			GatewayRef:  gatewayRef,
		}
		if err := invoice.Validate(); err != nil {
			return errors.NewAppError(errors.ErrCodeValidation, "invalid invoice payload", err)
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to create invoice", err)
		}

		if booking.PartnerID != nil {
			if err := s.creditPartnerRevenue(tx, *booking.PartnerID, booking.TotalAmount, 1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking %s confirmed (gateway ref %s)", booking.ReferenceCode, gatewayRef)
	return &booking, nil
}

// CancelRequest identifies who is asking for the cancellation. Staff
// roles pass on role alone; guests must prove ownership, either by
// user id or by presenting the booking's reference code for guest
// checkouts.
type CancelRequest struct {
	RequesterID   *uint
	Role          int
	ReferenceCode string
}

func authorizeCancel(booking *models.Booking, req CancelRequest) error {
	if req.Role != models.RoleGuest {
		return nil
	}
	if booking.UserID != nil {
		if req.RequesterID == nil || *req.RequesterID != *booking.UserID {
			return errors.NewAppError(errors.ErrCodeUnauthorized, "booking belongs to another user", nil)
		}
		return nil
	}
	if req.ReferenceCode == "" || req.ReferenceCode != booking.ReferenceCode {
		return errors.NewAppError(errors.ErrCodeUnauthorized, "reference code required to cancel a guest booking", nil)
	}
	return nil
}

// Cancel releases the booking's room. Guests may cancel their own
// booking any time before check-in; staff may also cancel on or after
// the check-in date.
func (s *BookingService) Cancel(bookingID uint, req CancelRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", errors.ErrBookingNotFound)
	}

	if err := authorizeCancel(&booking, req); err != nil {
		return nil, err
	}

	switch booking.Status {
	case models.BookingStatusCancelled, models.BookingStatusRefunded:
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "booking already cancelled", errors.ErrBookingCancelled)
	case models.BookingStatusCheckedIn, models.BookingStatusCheckedOut:
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "stay already started", nil)
	}
	if req.Role == models.RoleGuest && !booking.CheckInDate.After(time.Now()) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "cannot cancel after check-in date", nil)
	}
	wasConfirmed := booking.Status == models.BookingStatusConfirmed
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if wasConfirmed {
			var invoice models.Invoice
			if err := tx.Where("booking_id = ?", booking.ID).First(&invoice).Error; err == nil {
				if err := tx.Delete(&invoice).Error; err != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "failed to void invoice", err)
				}
				if booking.PartnerID != nil {
					if err := s.creditPartnerRevenue(tx, *booking.PartnerID, -invoice.TotalAmount, -1); err != nil {
						return err
					}
				}
			}
			booking.Status = models.BookingStatusRefunded
		} else {
			// The hold never converted, so the coupon use goes back.
			if err := restoreCouponUse(tx, &booking); err != nil {
				return err
			}
			booking.Status = models.BookingStatusCancelled
		}
		booking.UpdatedAt = time.Now()
		if err := commands.NewUpdateBookingCommand(&booking, tx).Execute(); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to cancel booking", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking %s cancelled", booking.ReferenceCode)
	return &booking, nil
}

// SetStayStatus records front-desk check-in and check-out.
func (s *BookingService) SetStayStatus(bookingID uint, status int) (*models.Booking, error) {
	if status != models.BookingStatusCheckedIn && status != models.BookingStatusCheckedOut {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "unsupported status transition", nil)
	}

	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", errors.ErrBookingNotFound)
	}

	valid := (status == models.BookingStatusCheckedIn && booking.Status == models.BookingStatusConfirmed) ||
		(status == models.BookingStatusCheckedOut && booking.Status == models.BookingStatusCheckedIn)
	if !valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "unsupported status transition", nil)
	}

	booking.Status = status
	booking.UpdatedAt = time.Now()
	if err := commands.NewUpdateBookingCommand(&booking, s.db).Execute(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update booking", err)
	}
	return &booking, nil
}

// ExpireStalePending cancels unpaid bookings older than the payment
// window, releasing their rooms and returning any consumed coupon
// uses. Returns how many were expired.
func (s *BookingService) ExpireStalePending() (int, error) {
	cutoff := time.Now().Add(-pendingPaymentTTL)

	var stale []models.Booking
	if err := s.db.
		Where("status = ? AND created_at < ?", models.BookingStatusPendingPayment, cutoff).
		Find(&stale).Error; err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "failed to load stale pending bookings", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range stale {
			if err := restoreCouponUse(tx, &stale[i]); err != nil {
				return err
			}
			stale[i].Status = models.BookingStatusCancelled
			stale[i].UpdatedAt = time.Now()
			if err := commands.NewUpdateBookingCommand(&stale[i], tx).Execute(); err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "failed to expire pending booking", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("expired %d stale pending bookings", len(stale))
	return len(stale), nil
}

// restoreCouponUse hands back the quantity consumed at creation when a
// pending booking never converts to a paid stay.
func restoreCouponUse(tx *gorm.DB, booking *models.Booking) error {
	if booking.CouponCode == "" {
		return nil
	}
	res := tx.Model(&models.Coupon{}).
		Where("code = ?", booking.CouponCode).
		UpdateColumn("quantity", gorm.Expr("quantity + 1"))
	if res.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to restore coupon use", res.Error)
	}
	return nil
}

func (s *BookingService) creditPartnerRevenue(tx *gorm.DB, partnerID uint, amount float64, countDelta int) error {
	today := time.Date(time.Now().Year(), time.Now().Month(), time.Now().Day(), 0, 0, 0, 0, time.Local)

	var revenue models.PartnerRevenue
	err := tx.Where("partner_id = ? AND date = ?", partnerID, today).First(&revenue).Error
	if err == gorm.ErrRecordNotFound {
		revenue = models.PartnerRevenue{
			PartnerID:    partnerID,
			Date:         today,
			Revenue:      amount,
			BookingCount: countDelta,
		}
		if revenue.BookingCount < 0 {
			revenue.BookingCount = 0
		}
		if err := tx.Create(&revenue).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to record partner revenue", err)
		}
		return nil
	}
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to load partner revenue", err)
	}

	newCount := revenue.BookingCount + countDelta
	if newCount < 0 {
		newCount = 0
	}
	if err := tx.Model(&revenue).Updates(map[string]interface{}{
		"revenue":       revenue.Revenue + amount,
		"booking_count": newCount,
	}).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to update partner revenue", err)
	}
	return nil
}
