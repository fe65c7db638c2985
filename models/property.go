package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type Property struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	UserID           uint           `json:"userId"` // owning partner admin
	Name             string         `json:"name"`
	Address          string         `json:"address"`
	City             string         `json:"city"`
	State            string         `json:"state"`
	Country          string         `json:"country"`
	Avatar           string         `json:"avatar"`
	Img              datatypes.JSON `json:"img" gorm:"type:json"`
	ShortDescription string         `json:"shortDescription"`
	Description      string         `json:"description"`
	StarRating       int            `json:"starRating"`
	Status           int            `json:"status"`
	TimeCheckIn      string         `json:"timeCheckIn"`
	TimeCheckOut     string         `json:"timeCheckOut"`
	Longitude        float64        `json:"longitude"`
	Latitude         float64        `json:"latitude"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	User             User           `json:"user" gorm:"foreignKey:UserID"`
	RoomTypes        []RoomType     `json:"roomTypes" gorm:"foreignKey:PropertyID"`
}

func (p *Property) ValidateStatus() error {
	if p.Status < 0 || p.Status > 2 {
		return fmt.Errorf("invalid status: %d, must be between 0 and 2", p.Status)
	}
	return nil
}
