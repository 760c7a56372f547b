package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CampaignStatusDraft = "draft"
	CampaignStatusSent  = "sent"
)

// Campaign is an email blast to an event's guest list.
type Campaign struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	EventID uint   `gorm:"index;column:event_id" json:"event_id"`
	Name    string `gorm:"size:255" json:"name"`
	Subject string `gorm:"size:255" json:"subject"`
	Body    string `gorm:"type:text" json:"body"`

	Status         string     `gorm:"size:20;default:draft" json:"status"`
	SentAt         *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`
	RecipientCount int        `gorm:"column:recipient_count;default:0" json:"recipient_count"`
}
