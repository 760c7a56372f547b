package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"event-backend/models"
	"event-backend/utils"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// Create inserts a guest with a freshly minted secret token. The token is
// the guest's capability credential and is never regenerated.
func (s *GuestService) Create(guest *models.Guest) error {
	if guest.EventID == 0 {
		return fmt.Errorf("%w: event_id is required", ErrValidation)
	}
	if strings.TrimSpace(guest.FullName) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}
	guest.SecretToken = token
	if guest.Status == "" {
		guest.Status = models.GuestStatusPending
	}

	return s.DB.Create(guest).Error
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		return nil, err
	}
	return &guest, nil
}

func (s *GuestService) ListByEvent(eventID uint) ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&guests).Error
	return guests, err
}

// Update applies organizer edits. The secret token and QR fields are owned
// by the RSVP flow and stay untouched here.
func (s *GuestService) Update(guest *models.Guest) error {
	if guest.ID == 0 {
		return fmt.Errorf("%w: missing guest id", ErrValidation)
	}
	return s.DB.Model(&models.Guest{}).
		Where("id = ?", guest.ID).
		Omit("secret_token", "qr_payload", "qr_image_path", "qr_issued_at").
		Updates(guest).Error
}

// Delete removes the guest and any seat they held.
func (s *GuestService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guest_id = ?", id).
			Delete(&models.TableAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Guest{}, id).Error
	})
}

// ImportFromContacts copies address-book entries into an event's guest
// list. Contacts whose email already appears on the list are skipped.
func (s *GuestService) ImportFromContacts(eventID uint, contactIDs []uint) ([]models.Guest, error) {
	if eventID == 0 || len(contactIDs) == 0 {
		return nil, fmt.Errorf("%w: event_id and contact ids are required", ErrValidation)
	}

	var contacts []models.Contact
	if err := s.DB.Where("id IN ?", contactIDs).Find(&contacts).Error; err != nil {
		return nil, err
	}

	var existing []models.Guest
	if err := s.DB.Where("event_id = ?", eventID).Find(&existing).Error; err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, g := range existing {
		if g.Email != "" {
			seen[strings.ToLower(g.Email)] = true
		}
	}

	created := make([]models.Guest, 0, len(contacts))
	for _, contact := range contacts {
		if contact.Email != "" && seen[strings.ToLower(contact.Email)] {
			continue
		}
		guest := models.Guest{
			EventID:  eventID,
			FullName: contact.FullName,
			Email:    contact.Email,
			Phone:    contact.Phone,
		}
		if err := s.Create(&guest); err != nil {
			return created, err
		}
		if guest.Email != "" {
			seen[strings.ToLower(guest.Email)] = true
		}
		created = append(created, guest)
	}
	return created, nil
}

// SendInvitation mails the guest their tokenized RSVP link. Best-effort:
// a mail failure is reported but leaves the guest row untouched.
func (s *GuestService) SendInvitation(guestID uint) error {
	guest, err := s.GetByID(guestID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(guest.Email) == "" {
		return fmt.Errorf("%w: guest has no email", ErrValidation)
	}

	var event models.Event
	if err := s.DB.First(&event, guest.EventID).Error; err != nil {
		return err
	}

	frontendURL := utils.EnvOrDefault("FRONTEND_URL", "http://localhost:3000")
	link := utils.BuildRSVPLink(frontendURL, guest.EventID, guest.ID, guest.SecretToken)

	if err := utils.SendRSVPLinkEmail(guest.Email, guest.FullName, event.Title, link); err != nil {
		log.Printf("invitation email failed for guest %d: %v", guest.ID, err)
		return err
	}
	return nil
}
