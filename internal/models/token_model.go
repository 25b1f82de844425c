package models

import "time"

// Token is an opaque bearer credential. The unique index on UserID keeps at
// most one live token per user; logout deletes the row.
type Token struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:64" json:"key"`
	UserID    uint      `gorm:"uniqueIndex" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
