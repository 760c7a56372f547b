package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OrganizerID uint   `gorm:"index;column:organizer_id" json:"organizer_id"`
	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `gorm:"size:255" json:"location"`

	StartsAt *time.Time `gorm:"column:starts_at" json:"starts_at,omitempty"`

	Organizer Organizer `gorm:"foreignKey:OrganizerID;references:ID" json:"-"`
}
