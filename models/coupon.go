package models

import (
	"fmt"
	"time"
)

type Coupon struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Code        string `json:"code" gorm:"uniqueIndex;size:32"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Kind 0 takes Value percent off the pre-tax subtotal, kind 1 a
	// flat Value off. Either way the discount is clamped to the
	// subtotal.
	Kind      int       `json:"kind"`
	Value     float64   `json:"value"`
	Quantity  int       `json:"quantity"`
	MinNights int       `json:"minNights"`
	FromDate  time.Time `json:"fromDate"`
	ToDate    time.Time `json:"toDate"`
	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (cp *Coupon) ValidateStatus() error {
	if cp.Status < 0 || cp.Status > 1 {
		return fmt.Errorf("invalid status: %d, must be either 0 or 1", cp.Status)
	}
	return nil
}
