package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BookingMessageBuilder formats the broadcast sent when a booking
// changes state.
type BookingMessageBuilder struct {
	referenceCode string
	event         string
}

func NewBookingMessageBuilder(referenceCode, event string) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		referenceCode: referenceCode,
		event:         event,
	}
}

func (b *BookingMessageBuilder) Build() string {
	return fmt.Sprintf("booking %s %s", b.referenceCode, b.event)
}
