package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// RoomType is a bookable category of room. Physical inventory lives in
// Room rows; capacity and pricing are shared across the type.
type RoomType struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	PropertyID uint   `json:"propertyId" gorm:"index"`
	Name       string `json:"name"`

	MaxAdults         int `json:"maxAdults"`
	MaxChildren       int `json:"maxChildren"`
	FreeChildrenCount int `json:"freeChildrenCount"`
	// StandardOccupancy is the number of adults included in the base
	// price. Adults beyond it are billed ExtraAdultPrice per night.
	// Required per property configuration; there is no default.
	StandardOccupancy int `json:"standardOccupancy"`

	BasePrice       float64 `json:"basePrice"`
	ExtraAdultPrice float64 `json:"extraAdultPrice"`
	ExtraChildPrice float64 `json:"extraChildPrice"`
	Currency        string  `json:"currency" gorm:"size:3;default:'INR'"`

	Amenities pq.StringArray `json:"amenities" gorm:"type:text[]"`
	Avatar    string         `json:"avatar"`
	Img       datatypes.JSON `json:"img" gorm:"type:json"`

	Visible   bool      `json:"visible" gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Property Property `json:"property" gorm:"foreignKey:PropertyID"`
	Rooms    []Room   `json:"rooms" gorm:"foreignKey:RoomTypeID"`
}

func (rt *RoomType) ValidateCapacity() error {
	if rt.MaxAdults <= 0 {
		return fmt.Errorf("maxAdults must be positive, got %d", rt.MaxAdults)
	}
	if rt.MaxChildren < 0 || rt.FreeChildrenCount < 0 {
		return fmt.Errorf("child capacity fields must not be negative")
	}
	if rt.StandardOccupancy <= 0 || rt.StandardOccupancy > rt.MaxAdults {
		return fmt.Errorf("standardOccupancy must be in [1, maxAdults], got %d", rt.StandardOccupancy)
	}
	return nil
}
