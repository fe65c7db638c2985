package models

import (
	"fmt"
	"time"
)

// Room is one physical inventory unit of a RoomType. Availability for a
// date range is computed from overlapping bookings, never stored here;
// Status only tracks front-desk state (maintenance etc).
type Room struct {
	RoomID     uint      `json:"id" gorm:"primaryKey;column:room_id"`
	RoomTypeID uint      `json:"roomTypeId" gorm:"index"`
	RoomNumber string    `json:"roomNumber"`
	Floor      int       `json:"floor"`
	Status     int       `json:"status" gorm:"default:1"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	RoomType RoomType `json:"roomType" gorm:"foreignKey:RoomTypeID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 0 || r.Status > 2 {
		return fmt.Errorf("invalid status: %d, must be between 0 and 2", r.Status)
	}
	return nil
}
