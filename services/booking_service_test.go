package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"stayhub/errors"
	"stayhub/models"
)

func newBookingTestService(t *testing.T) (*BookingService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Booking{},
		&models.Invoice{},
		&models.Coupon{},
		&models.Partner{},
		&models.PartnerRevenue{},
	); err != nil {
		t.Fatalf("migrate test tables: %v", err)
	}

	svc := NewBookingService(BookingServiceOptions{DB: db, TaxRate: 0.18})
	return svc, db
}

func seedBooking(t *testing.T, db *gorm.DB, mutate func(*models.Booking)) *models.Booking {
	t.Helper()

	booking := &models.Booking{
		ReferenceCode: "e9a1f2d0-7c55-4e2b-9be1-booking-seed",
		RoomTypeID:    1,
		RoomID:        1,
		CheckInDate:   time.Now().AddDate(0, 0, 7),
		CheckOutDate:  time.Now().AddDate(0, 0, 9),
		Adults:        2,
		TotalAmount:   2832,
		Currency:      "INR",
		Status:        models.BookingStatusConfirmed,
	}
	if mutate != nil {
		mutate(booking)
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return booking
}

func reloadBooking(t *testing.T, db *gorm.DB, id uint) models.Booking {
	t.Helper()
	var booking models.Booking
	if err := db.First(&booking, id).Error; err != nil {
		t.Fatalf("reload booking %d: %v", id, err)
	}
	return booking
}

func TestCancelDeniesForeignBooking(t *testing.T) {
	svc, db := newBookingTestService(t)
	owner := uint(42)
	booking := seedBooking(t, db, func(b *models.Booking) { b.UserID = &owner })

	_, err := svc.Cancel(booking.ID, CancelRequest{Role: models.RoleGuest})
	appErr := errors.GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, errors.ErrCodeUnauthorized, appErr.Code)
	}

	stranger := uint(7)
	_, err = svc.Cancel(booking.ID, CancelRequest{RequesterID: &stranger, Role: models.RoleGuest})
	appErr = errors.GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, errors.ErrCodeUnauthorized, appErr.Code)
	}

	assert.Equal(t, models.BookingStatusConfirmed, reloadBooking(t, db, booking.ID).Status)

	cancelled, err := svc.Cancel(booking.ID, CancelRequest{RequesterID: &owner, Role: models.RoleGuest})
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusRefunded, cancelled.Status)
}

func TestCancelGuestCheckoutNeedsReferenceCode(t *testing.T) {
	svc, db := newBookingTestService(t)
	booking := seedBooking(t, db, func(b *models.Booking) {
		b.UserID = nil
		b.GuestName = "Asha Rao"
		b.GuestPhone = "9876543210"
		b.Status = models.BookingStatusPendingPayment
	})

	_, err := svc.Cancel(booking.ID, CancelRequest{Role: models.RoleGuest})
	appErr := errors.GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, errors.ErrCodeUnauthorized, appErr.Code)
	}

	_, err = svc.Cancel(booking.ID, CancelRequest{Role: models.RoleGuest, ReferenceCode: "wrong-code"})
	assert.Error(t, err)
	assert.Equal(t, models.BookingStatusPendingPayment, reloadBooking(t, db, booking.ID).Status)

	cancelled, err := svc.Cancel(booking.ID, CancelRequest{Role: models.RoleGuest, ReferenceCode: booking.ReferenceCode})
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
}

func TestCancelStaffNeedsNoOwnership(t *testing.T) {
	svc, db := newBookingTestService(t)
	owner := uint(42)
	booking := seedBooking(t, db, func(b *models.Booking) {
		b.UserID = &owner
		b.Status = models.BookingStatusPendingPayment
	})

	cancelled, err := svc.Cancel(booking.ID, CancelRequest{Role: models.RoleReceptionist})
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
}

func TestCancelRestoresCouponUse(t *testing.T) {
	svc, db := newBookingTestService(t)
	coupon := models.Coupon{Code: "SUMMER10", Quantity: 4}
	assert.NoError(t, db.Create(&coupon).Error)

	owner := uint(42)
	booking := seedBooking(t, db, func(b *models.Booking) {
		b.UserID = &owner
		b.Status = models.BookingStatusPendingPayment
		b.CouponCode = "SUMMER10"
	})

	_, err := svc.Cancel(booking.ID, CancelRequest{RequesterID: &owner, Role: models.RoleGuest})
	assert.NoError(t, err)

	var reloaded models.Coupon
	assert.NoError(t, db.First(&reloaded, coupon.ID).Error)
	assert.Equal(t, 5, reloaded.Quantity)
}

func TestCancelConfirmedKeepsCouponUse(t *testing.T) {
	svc, db := newBookingTestService(t)
	coupon := models.Coupon{Code: "SUMMER10", Quantity: 4}
	assert.NoError(t, db.Create(&coupon).Error)

	owner := uint(42)
	booking := seedBooking(t, db, func(b *models.Booking) {
		b.UserID = &owner
		b.CouponCode = "SUMMER10"
	})

	refunded, err := svc.Cancel(booking.ID, CancelRequest{RequesterID: &owner, Role: models.RoleGuest})
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusRefunded, refunded.Status)

	var reloaded models.Coupon
	assert.NoError(t, db.First(&reloaded, coupon.ID).Error)
	assert.Equal(t, 4, reloaded.Quantity)
}

func TestExpireStalePendingRestoresCoupons(t *testing.T) {
	svc, db := newBookingTestService(t)
	coupon := models.Coupon{Code: "SUMMER10", Quantity: 4}
	assert.NoError(t, db.Create(&coupon).Error)

	stale := seedBooking(t, db, func(b *models.Booking) {
		b.Status = models.BookingStatusPendingPayment
		b.CouponCode = "SUMMER10"
		b.CreatedAt = time.Now().Add(-pendingPaymentTTL - time.Minute)
	})
	fresh := seedBooking(t, db, func(b *models.Booking) {
		b.ReferenceCode = "e9a1f2d0-7c55-4e2b-9be1-booking-two0"
		b.Status = models.BookingStatusPendingPayment
	})

	expired, err := svc.ExpireStalePending()
	assert.NoError(t, err)
	assert.Equal(t, 1, expired)

	assert.Equal(t, models.BookingStatusCancelled, reloadBooking(t, db, stale.ID).Status)
	assert.Equal(t, models.BookingStatusPendingPayment, reloadBooking(t, db, fresh.ID).Status)

	var reloaded models.Coupon
	assert.NoError(t, db.First(&reloaded, coupon.ID).Error)
	assert.Equal(t, 5, reloaded.Quantity)
}
