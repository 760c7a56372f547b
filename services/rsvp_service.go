package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"event-backend/models"
	"event-backend/utils"

	"gorm.io/gorm"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RSVPService handles the guest-facing response flow: token check, status
// transition, preference persistence and QR issuance.
type RSVPService struct {
	DB            *gorm.DB
	Notifications *NotificationService
	UploadsDir    string
}

func NewRSVPService(db *gorm.DB, notifications *NotificationService) *RSVPService {
	return &RSVPService{
		DB:            db,
		Notifications: notifications,
		UploadsDir:    utils.EnvOrDefault("UPLOADS_DIR", "./uploads"),
	}
}

// SubmitRequest is what a guest posts from the invitation page.
type SubmitRequest struct {
	Token  string `json:"token"`
	Status string `json:"status"`

	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`

	Beverages           []string `json:"beverages"`
	FoodPreference      string   `json:"foodPreference"`
	DietaryRestrictions string   `json:"dietaryRestrictions"`
	Message             string   `json:"message"`
	PlusOnes            int      `json:"plusOnes"`
}

// ValidateSubmit checks the request before anything touches the store.
func ValidateSubmit(req SubmitRequest) error {
	switch req.Status {
	case models.GuestStatusConfirmed, models.GuestStatusDeclined, models.GuestStatusMaybe:
	default:
		return fmt.Errorf("%w: status must be confirmed, declined or maybe", ErrValidation)
	}
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if e := strings.TrimSpace(req.Email); e != "" && !emailRegexp.MatchString(e) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if req.PlusOnes < 0 {
		return fmt.Errorf("%w: plusOnes cannot be negative", ErrValidation)
	}
	return nil
}

// GetInvitation loads the guest for the invitation page. The token must
// match exactly; a miss never reveals whether the guest exists.
func (s *RSVPService) GetInvitation(eventID, guestID uint, token string) (*models.Guest, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrNotFoundOrUnauthorized
	}
	var guest models.Guest
	err := s.DB.
		Where("id = ? AND event_id = ? AND secret_token = ?", guestID, eventID, token).
		First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		return nil, err
	}
	return &guest, nil
}

// Submit applies a guest's response. Re-submission is an edit: response
// fields are overwritten, the response date restamped, the QR reissued.
// Last write wins, so identical submits converge on the same row.
func (s *RSVPService) Submit(eventID, guestID uint, req SubmitRequest) (*models.Guest, error) {
	if err := ValidateSubmit(req); err != nil {
		return nil, err
	}

	guest, err := s.GetInvitation(eventID, guestID, req.Token)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	guest.Status = req.Status
	guest.FullName = strings.TrimSpace(req.FullName)
	guest.Phone = strings.TrimSpace(req.Phone)
	guest.Email = strings.TrimSpace(req.Email)
	guest.ResponseDate = &now

	// Preferences only mean something on a confirmed response; a decline
	// or maybe clears whatever an earlier confirmation stored.
	if req.Status == models.GuestStatusConfirmed {
		beverages := req.Beverages
		if beverages == nil {
			beverages = []string{}
		}
		raw, mErr := json.Marshal(beverages)
		if mErr != nil {
			return nil, fmt.Errorf("failed to encode beverages: %w", mErr)
		}
		guest.Beverages = raw
		guest.FoodPreference = strings.TrimSpace(req.FoodPreference)
		guest.DietaryRestrictions = strings.TrimSpace(req.DietaryRestrictions)
		guest.Message = strings.TrimSpace(req.Message)
		guest.PlusOnes = req.PlusOnes
	} else {
		guest.Beverages = nil
		guest.FoodPreference = ""
		guest.DietaryRestrictions = ""
		guest.Message = ""
		guest.PlusOnes = 0
	}

	// Issue the QR artifact. The payload always lands on the row; the
	// rendered image is best-effort.
	guest.QRPayload = utils.BuildRSVPPayload(eventID, guestID, guest.SecretToken)
	guest.QRIssuedAt = &now
	if path, rErr := utils.RenderQRCode(guest.QRPayload, s.UploadsDir); rErr != nil {
		log.Printf("qr render failed for guest %d: %v", guest.ID, rErr)
	} else {
		guest.QRImagePath = path
	}

	if err := s.DB.Save(guest).Error; err != nil {
		return nil, err
	}

	// Organizer notification is non-critical: its failure never rolls back
	// the response.
	if s.Notifications != nil {
		s.Notifications.NotifyRSVP(guest)
	}

	return guest, nil
}

// CheckIn marks a guest as present, typically after the organizer scans
// the guest's QR code. When a payload is supplied it must match what was
// issued.
func (s *RSVPService) CheckIn(eventID, guestID uint, qrPayload string) (*models.Guest, error) {
	var guest models.Guest
	err := s.DB.
		Where("id = ? AND event_id = ?", guestID, eventID).
		First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		return nil, err
	}

	if qrPayload != "" && qrPayload != guest.QRPayload {
		return nil, ErrNotFoundOrUnauthorized
	}

	if !guest.CheckedIn {
		if err := s.DB.Model(&guest).Update("checked_in", true).Error; err != nil {
			return nil, err
		}
		guest.CheckedIn = true
		if s.Notifications != nil {
			s.Notifications.NotifyCheckin(&guest)
		}
	}

	return &guest, nil
}
