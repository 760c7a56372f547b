package services

import (
	"fmt"
	"log"

	"event-backend/models"

	"gorm.io/gorm"
)

// NotificationService records organizer-facing activity. The Notify*
// methods are fire-and-forget: they log failures and never surface them,
// because a missed notification must not fail the guest's action.
type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

func (s *NotificationService) notify(guest *models.Guest, kind, message string) {
	var event models.Event
	if err := s.DB.First(&event, guest.EventID).Error; err != nil {
		log.Printf("notification skipped, event %d lookup failed: %v", guest.EventID, err)
		return
	}

	guestID := guest.ID
	n := models.Notification{
		OrganizerID: event.OrganizerID,
		EventID:     event.ID,
		GuestID:     &guestID,
		Type:        kind,
		Message:     message,
	}
	if err := s.DB.Create(&n).Error; err != nil {
		log.Printf("failed to create %s notification for guest %d: %v", kind, guest.ID, err)
	}
}

// NotifyRSVP records that a guest responded.
func (s *NotificationService) NotifyRSVP(guest *models.Guest) {
	s.notify(guest, models.NotificationTypeRSVP,
		fmt.Sprintf("%s responded: %s", guest.FullName, guest.Status))
}

// NotifyCheckin records that a guest was checked in.
func (s *NotificationService) NotifyCheckin(guest *models.Guest) {
	s.notify(guest, models.NotificationTypeCheckin,
		fmt.Sprintf("%s checked in", guest.FullName))
}

func (s *NotificationService) ListByOrganizer(organizerID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.DB.
		Where("organizer_id = ?", organizerID).
		Order("id DESC").
		Limit(100).
		Find(&notifications).Error
	return notifications, err
}

func (s *NotificationService) MarkRead(id uint) error {
	return s.DB.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
}

func (s *NotificationService) MarkAllRead(organizerID uint) error {
	return s.DB.Model(&models.Notification{}).
		Where("organizer_id = ? AND `read` = ?", organizerID, false).
		Update("read", true).Error
}
