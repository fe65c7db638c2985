package controllers

import (
	"stayhub/services"
	"stayhub/services/notification"
)

var (
	bookingService *services.BookingService
	paymentGateway *services.PaymentGateway
	notifier       notification.Service
)

// Init wires the shared services into the handler package. Called once
// at startup, before routes are registered.
func Init(b *services.BookingService, g *services.PaymentGateway, n notification.Service) {
	bookingService = b
	paymentGateway = g
	notifier = n
}
