package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact is an address-book entry owned by an organizer. Contacts can be
// imported into an event's guest list.
type Contact struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OrganizerID uint   `gorm:"index;column:organizer_id" json:"organizer_id"`
	FullName    string `gorm:"size:255" json:"fullName"`
	Email       string `gorm:"size:150" json:"email"`
	Phone       string `gorm:"size:50" json:"phone"`
	Notes       string `gorm:"type:text" json:"notes"`
}
