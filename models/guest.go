package models

import (
	"time"

	"gorm.io/datatypes"
)

// RSVP statuses a guest can be in. New guests always start out pending.
const (
	GuestStatusPending   = "pending"
	GuestStatusConfirmed = "confirmed"
	GuestStatusDeclined  = "declined"
	GuestStatusMaybe     = "maybe"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	EventID uint  `gorm:"index;column:event_id" json:"event_id"`
	Event   Event `gorm:"foreignKey:EventID" json:"-"`

	FullName string `json:"fullName"`
	Email    string `gorm:"size:150" json:"email"`
	Phone    string `gorm:"size:50" json:"phone"`

	// Possession of this token is what authorizes guest-facing mutations.
	// Set once at creation, never updated afterwards.
	SecretToken string `gorm:"uniqueIndex;size:128;column:secret_token" json:"-"`

	Status       string     `gorm:"size:20;default:pending" json:"status"`
	ResponseDate *time.Time `gorm:"column:response_date" json:"responseDate,omitempty"`

	FoodPreference      string         `gorm:"type:text" json:"foodPreference"`
	Beverages           datatypes.JSON `gorm:"column:beverages" json:"beverages,omitempty"`
	DietaryRestrictions string         `gorm:"type:text" json:"dietaryRestrictions"`
	Message             string         `gorm:"type:text" json:"message"`

	CheckedIn bool `gorm:"default:false" json:"checkedIn"`
	PlusOnes  int  `gorm:"default:0" json:"plusOnes"`

	TableID *uint `gorm:"index;column:table_id" json:"table_id,omitempty"`

	QRPayload   string     `gorm:"size:255;column:qr_payload" json:"qrPayload,omitempty"`
	QRImagePath string     `gorm:"size:255;column:qr_image_path" json:"qrImagePath,omitempty"`
	QRIssuedAt  *time.Time `gorm:"column:qr_issued_at" json:"qrIssuedAt,omitempty"`
}

// HasResponded reports whether the guest ever left pending. Re-submissions
// overwrite the response fields but this stays true.
func (g *Guest) HasResponded() bool {
	return g.Status != "" && g.Status != GuestStatusPending
}
