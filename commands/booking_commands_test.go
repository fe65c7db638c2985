package commands

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"stayhub/models"
)

func newCommandTestDB(t *testing.T) *gorm.DB {
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

	if err := db.AutoMigrate(&models.Booking{}); err != nil {
		t.Fatalf("migrate bookings: %v", err)
	}
	return db
}

func TestBookingCommands(t *testing.T) {
	db := newCommandTestDB(t)

	booking := &models.Booking{
		ReferenceCode: "1f6f2a34-90ab-4cde-8123-456789abcdef",
		RoomTypeID:    1,
		RoomID:        1,
		CheckInDate:   time.Now().AddDate(0, 0, 3),
		CheckOutDate:  time.Now().AddDate(0, 0, 5),
		Adults:        2,
		Status:        models.BookingStatusPendingPayment,
	}

	assert.NoError(t, NewCreateBookingCommand(booking, db).Execute())
	assert.NotZero(t, booking.ID)

	booking.Status = models.BookingStatusConfirmed
	assert.NoError(t, NewUpdateBookingCommand(booking, db).Execute())

	var reloaded models.Booking
	assert.NoError(t, db.First(&reloaded, booking.ID).Error)
	assert.Equal(t, models.BookingStatusConfirmed, reloaded.Status)

	assert.NoError(t, NewDeleteBookingCommand(booking.ID, db).Execute())
	assert.ErrorIs(t, db.First(&models.Booking{}, booking.ID).Error, gorm.ErrRecordNotFound)
}
