package models

import (
	"time"

	"gorm.io/gorm"
)

type HeroImage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Image     string         `gorm:"size:500" json:"image"`
	Order     int            `gorm:"default:0" json:"order"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type TimelineEvent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Year        string         `gorm:"size:4" json:"year"`
	Title       string         `gorm:"size:200" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Image       string         `gorm:"size:500" json:"image,omitempty"`
	Order       int            `gorm:"default:0" json:"order"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type MemberType string

const (
	MemberTypeFounder MemberType = "FOUNDER"
	MemberTypeTeam    MemberType = "TEAM"
)

type TeamMember struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"size:100" json:"name"`
	Role       string         `gorm:"size:100" json:"role"`
	Quote      string         `gorm:"type:text" json:"quote,omitempty"`
	Image      string         `gorm:"size:500" json:"image,omitempty"`
	MemberType MemberType     `gorm:"size:10;default:'TEAM'" json:"member_type"`
	Order      int            `gorm:"default:0" json:"order"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

type ContactInformation struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Location       string         `gorm:"size:255" json:"location"`
	WhatsappNumber string         `gorm:"size:20" json:"whatsapp_number"`
	PhoneNumber2   string         `gorm:"size:20" json:"phone_number2,omitempty"`
	Email          string         `gorm:"size:100" json:"email"`
	Instagram      string         `gorm:"size:50" json:"instagram"`
	WeekdayHours   string         `gorm:"size:50" json:"weekday_hours"`
	SaturdayHours  string         `gorm:"size:50" json:"saturday_hours"`
	SundayHours    string         `gorm:"size:50" json:"sunday_hours"`
	Latitude       *float64       `json:"latitude,omitempty"`
	Longitude      *float64       `json:"longitude,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

type Testimonial struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"size:100" json:"username"`
	Message   string         `gorm:"type:text" json:"message"`
	Tagline   string         `gorm:"size:100" json:"tagline"`
	Image     string         `gorm:"size:500" json:"image,omitempty"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	Order     int            `gorm:"default:0" json:"order"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
