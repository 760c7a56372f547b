package models

import "time"

const (
	NotificationTypeRSVP    = "rsvp_response"
	NotificationTypeCheckin = "guest_checkin"
)

// Notification is an organizer-facing record created as a side effect of
// guest activity. Creation is best-effort and must never fail the primary
// operation.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"created_at"`

	OrganizerID uint  `gorm:"index;column:organizer_id" json:"organizer_id"`
	EventID     uint  `gorm:"index;column:event_id" json:"event_id"`
	GuestID     *uint `gorm:"index;column:guest_id" json:"guest_id,omitempty"`

	Type    string `gorm:"size:50" json:"type"`
	Message string `gorm:"type:text" json:"message"`
	Read    bool   `gorm:"default:false" json:"read"`
}
