package builders

import (
	"time"

	"stayhub/models"
	"stayhub/services"
)

// BookingBuilder assembles a Booking step by step. Mostly used by tests
// and seed tooling; the checkout path builds bookings inline.
type BookingBuilder struct {
	booking *models.Booking
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

func (b *BookingBuilder) WithReference(code string) *BookingBuilder {
	b.booking.ReferenceCode = code
	return b
}

func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = &userID
	return b
}

func (b *BookingBuilder) WithRoom(roomTypeID, roomID uint) *BookingBuilder {
	b.booking.RoomTypeID = roomTypeID
	b.booking.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	return b
}

func (b *BookingBuilder) WithParty(adults, children int) *BookingBuilder {
	b.booking.Adults = adults
	b.booking.Children = children
	return b
}

func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

func (b *BookingBuilder) WithQuote(quote services.Quote) *BookingBuilder {
	b.booking.BaseAmount = quote.BaseAmount
	b.booking.ExtraAdultAmount = quote.ExtraAdultAmount
	b.booking.ExtraChildAmount = quote.ExtraChildAmount
	b.booking.DiscountAmount = quote.DiscountAmount
	b.booking.TaxAmount = quote.TaxAmount
	b.booking.TotalAmount = quote.TotalAmount
	b.booking.Currency = quote.Currency
	return b
}

func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
