package models

import (
	"time"

	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeAdmin UserType = "ADMIN"
	UserTypeStaff UserType = "STAFF"
	UserTypeUser  UserType = "USER"
)

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"uniqueIndex;size:150" json:"username"`
	Email       string         `gorm:"uniqueIndex;size:100" json:"email"`
	Password    string         `gorm:"size:255" json:"-"`
	FullName    string         `gorm:"size:255" json:"full_name"`
	UserType    UserType       `gorm:"size:10;default:'USER'" json:"user_type"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	IsStaff     bool           `json:"is_staff"`
	IsSuperuser bool           `json:"is_superuser"`
	Provider    string         `gorm:"size:50" json:"provider,omitempty"`
	Phone       string         `gorm:"size:20" json:"phone,omitempty"`
	Address     string         `gorm:"type:text" json:"address,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeSave derives the staff/superuser flags from the user type on every
// write path. Client-supplied flag values are never trusted.
func (u *User) BeforeSave(tx *gorm.DB) error {
	switch u.UserType {
	case UserTypeAdmin:
		u.IsStaff = true
		u.IsSuperuser = true
	case UserTypeStaff:
		u.IsStaff = true
		u.IsSuperuser = false
	default:
		u.UserType = UserTypeUser
		u.IsStaff = false
		u.IsSuperuser = false
	}
	return nil
}

// HasStaffAccess reports whether the user may act on other users' data.
func (u *User) HasStaffAccess() bool {
	return u.IsStaff || u.IsSuperuser
}
