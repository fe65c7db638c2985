package builders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/models"
	"stayhub/services"
)

func TestBookingBuilder(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	quote := services.Quote{
		BaseAmount:       300,
		ExtraAdultAmount: 60,
		ExtraChildAmount: 30,
		DiscountAmount:   39,
		TaxAmount:        63.18,
		TotalAmount:      414.18,
		Currency:         "INR",
	}

	booking := NewBookingBuilder().
		WithReference("BK-20260910-0042").
		WithUser(7).
		WithRoom(3, 12).
		WithStay(checkIn, checkOut).
		WithParty(3, 2).
		WithGuestInfo("Asha Rao", "+919876543210", "asha@example.com").
		WithQuote(quote).
		WithStatus(models.BookingStatusPendingPayment).
		Build()

	assert.Equal(t, "BK-20260910-0042", booking.ReferenceCode)
	if assert.NotNil(t, booking.UserID) {
		assert.Equal(t, uint(7), *booking.UserID)
	}
	assert.Equal(t, uint(3), booking.RoomTypeID)
	assert.Equal(t, uint(12), booking.RoomID)
	assert.Equal(t, checkIn, booking.CheckInDate)
	assert.Equal(t, checkOut, booking.CheckOutDate)
	assert.Equal(t, 3, booking.Adults)
	assert.Equal(t, 2, booking.Children)
	assert.Equal(t, "Asha Rao", booking.GuestName)
	assert.Equal(t, 414.18, booking.TotalAmount)
	assert.Equal(t, "INR", booking.Currency)
	assert.Equal(t, models.BookingStatusPendingPayment, booking.Status)
}

func TestBookingBuilderGuestOnly(t *testing.T) {
	booking := NewBookingBuilder().
		WithReference("BK-20260910-0043").
		WithGuestInfo("Walk In", "9876543210", "").
		Build()

	assert.Nil(t, booking.UserID)
	assert.Equal(t, "Walk In", booking.GuestName)
	assert.Empty(t, booking.GuestEmail)
}
