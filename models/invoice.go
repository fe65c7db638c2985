package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Invoice struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	InvoiceCode string  `json:"invoiceCode" gorm:"unique;size:24"`
	BookingID   uint    `json:"bookingId" validate:"required"`
	Booking     Booking `json:"booking" gorm:"foreignKey:BookingID"`
	TotalAmount float64 `json:"totalAmount" validate:"gte=0"`
	Currency    string  `json:"currency" gorm:"size:3" validate:"required,len=3"`
	// PartnerID is set when the booking carried a referral code.
	PartnerID   *uint      `json:"partnerId,omitempty"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	GatewayRef  string     `json:"gatewayRef,omitempty"` // gateway order id
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (invoice *Invoice) Validate() error {
	return validator.New().Struct(invoice)
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	invoice.InvoiceCode = fmt.Sprintf("SH%d", time.Now().UnixNano()/1e6)

	var count int64
	if err := tx.Model(&Invoice{}).Where("invoice_code = ?", invoice.InvoiceCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("invoice code collision, retry")
	}
	return nil
}
