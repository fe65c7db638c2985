package services

import (
	"testing"
	"time"

	"stayhub/constants"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical ranges", day(1), day(5), day(1), day(5), true},
		{"contained", day(2), day(3), day(1), day(5), true},
		{"partial overlap", day(1), day(3), day(2), day(5), true},
		{"back to back, checkout equals checkin", day(1), day(3), day(3), day(5), false},
		{"reversed back to back", day(3), day(5), day(1), day(3), false},
		{"disjoint", day(1), day(2), day(4), day(5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestValidateStayRange(t *testing.T) {
	assert.NoError(t, ValidateStayRange(day(1), day(2)))
	assert.Error(t, ValidateStayRange(day(2), day(2)))
	assert.Error(t, ValidateStayRange(day(3), day(2)))
	assert.Error(t, ValidateStayRange(time.Time{}, day(2)))
}

func TestNumberOfNights(t *testing.T) {
	assert.Equal(t, 1, NumberOfNights(day(1), day(2)))
	assert.Equal(t, 4, NumberOfNights(day(1), day(5)))
}

func TestFitsCapacity(t *testing.T) {
	rt := models.RoomType{MaxAdults: 2, MaxChildren: 1}

	assert.True(t, FitsCapacity(rt, 2, 1))
	assert.True(t, FitsCapacity(rt, 1, 0))
	assert.False(t, FitsCapacity(rt, 3, 0))
	assert.False(t, FitsCapacity(rt, 2, 2))
}

func TestAvailableRoomCount(t *testing.T) {
	rooms := []models.Room{
		{RoomID: 1, Status: constants.RoomStatusAvailable},
		{RoomID: 2, Status: constants.RoomStatusAvailable},
		{RoomID: 3, Status: constants.RoomStatusAvailable},
	}

	bookings := []models.Booking{
		{RoomID: 1, Status: models.BookingStatusConfirmed, CheckInDate: day(1), CheckOutDate: day(5)},
		{RoomID: 2, Status: models.BookingStatusPendingPayment, CheckInDate: day(3), CheckOutDate: day(6)},
		{RoomID: 3, Status: models.BookingStatusCancelled, CheckInDate: day(1), CheckOutDate: day(10)},
	}

	// Rooms 1 and 2 are taken for an overlapping window; the cancelled
	// booking on room 3 does not consume inventory.
	assert.Equal(t, 1, AvailableRoomCount(rooms, bookings, day(2), day(4)))

	// After both stays end everything is free.
	assert.Equal(t, 3, AvailableRoomCount(rooms, bookings, day(6), day(8)))

	// A check-in on the day room 1 checks out does not collide.
	assert.Equal(t, 2, AvailableRoomCount(rooms, bookings, day(5), day(6)))
}

func TestAvailableRoomCountSkipsMaintenance(t *testing.T) {
	rooms := []models.Room{
		{RoomID: 1, Status: constants.RoomStatusMaintenance},
		{RoomID: 2, Status: constants.RoomStatusAvailable},
	}

	assert.Equal(t, 1, AvailableRoomCount(rooms, nil, day(1), day(2)))
}
