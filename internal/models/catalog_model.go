package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100" json:"name"`
	Description string         `gorm:"type:text;default:'Default category description'" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CategoryID  uint           `gorm:"index" json:"category"`
	Category    *Category      `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string         `gorm:"size:200" json:"name"`
	Price       float64        `json:"price"`
	Description string         `gorm:"type:text" json:"description"`
	Stock       int            `gorm:"default:0" json:"stock"`
	Image       string         `gorm:"size:500" json:"image,omitempty"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
