package models

import (
	"time"
)

// User roles
const (
	RoleGuest        = 0
	RoleSuperAdmin   = 1
	RolePartnerAdmin = 2
	RoleReceptionist = 3
)

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string    `gorm:"default:New User" json:"name"`
	Email         string    `gorm:"unique" json:"email"`
	Password      string    `json:"-"`
	IsVerified    bool      `gorm:"default:false" json:"isVerified"`
	Code          string    `json:"-"`
	CodeCreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	PhoneNumber   string    `gorm:"unique;type:varchar(15);not null" json:"phoneNumber"`
	Avatar        string    `json:"avatar"`
	Role          int       `gorm:"default:0" json:"role"`
	Status        int       `gorm:"default:1" json:"status"`
	AdminID       *uint     `json:"adminId,omitempty"` // receptionists hang off a partner admin
}
