package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusRejected  PaymentStatus = "rejected"
)

// IsTerminal reports whether no further status transition is permitted.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusConfirmed || s == PaymentStatusRejected
}

const (
	PaymentMethodBank = "bank"
	PaymentMethodQRIS = "qris"
)

type Payment struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	OrderNumber  string         `gorm:"uniqueIndex;size:50" json:"order_number"`
	UserID       uint           `gorm:"index" json:"user_id"`
	User         *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CustomerName string         `gorm:"size:255" json:"customer_name"`
	Phone        string         `gorm:"size:20" json:"phone"`
	Email        string         `gorm:"size:100" json:"email"`
	Address      string         `gorm:"type:text" json:"address"`
	Items        datatypes.JSON `json:"items"`
	Total        float64        `json:"total"`
	PaymentMethod string        `gorm:"size:10" json:"payment_method"`
	PaymentProof string         `gorm:"size:500" json:"payment_proof,omitempty"`
	Status       PaymentStatus  `gorm:"size:10;default:'pending';index" json:"status"`
	Notes        string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
