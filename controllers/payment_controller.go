package controllers

import (
	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

// InitiatePayment opens a gateway order for a pending booking and
// returns what the hosted checkout needs.
func InitiatePayment(c *gin.Context) {
	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payment request")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, req.BookingID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if booking.Status != models.BookingStatusPendingPayment {
		response.Error(c, 400, string(errors.ErrCodeInvalidStatus), "booking is not awaiting payment")
		return
	}

	order, err := paymentGateway.CreateOrder(booking.ReferenceCode, booking.TotalAmount, booking.Currency)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, dto.InitiatePaymentResponse{
		BookingID:     booking.ID,
		ReferenceCode: booking.ReferenceCode,
		OrderID:       order.OrderID,
		Amount:        order.Amount,
		Currency:      order.Currency,
		KeyID:         order.KeyID,
	})
}

// VerifyPayment checks the gateway callback signature and confirms the
// booking on success.
func VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid verification payload")
		return
	}

	if err := paymentGateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature); err != nil {
		response.Error(c, 400, string(errors.ErrCodePaymentFailed), "payment signature verification failed")
		return
	}

	booking, err := bookingService.Confirm(req.BookingID, req.PaymentID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	broadcastBookingEvent(booking, "confirmed")

	if email := bookingEmail(booking); email != "" {
		go services.SendBookingEmail(email, booking.ReferenceCode, booking.TotalAmount, booking.Currency,
			booking.CheckInDate.Format(constants.DateLayout), booking.CheckOutDate.Format(constants.DateLayout))
	}

	response.Success(c, toBookingResponse(booking))
}

func bookingEmail(booking *models.Booking) string {
	if booking.GuestEmail != "" {
		return booking.GuestEmail
	}
	if booking.UserID != nil {
		var user models.User
		if err := config.DB.First(&user, *booking.UserID).Error; err == nil {
			return user.Email
		}
	}
	return ""
}
