package services

import (
	"errors"
	"log"
	"time"

	"event-backend/models"
	"event-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShareLink is a pre-RSVP invitation artifact for an event: a public link,
// a scannable QR and a short code for manual entry. The nonce stands in
// for a guest token since no confirmed identity exists yet.
type ShareLink struct {
	EventID   uint      `json:"event_id"`
	Payload   string    `json:"payload"`
	ImagePath string    `json:"image_path,omitempty"`
	Link      string    `json:"link"`
	Code      string    `json:"code"`
	IssuedAt  time.Time `json:"issued_at"`
}

type ShareService struct {
	DB         *gorm.DB
	UploadsDir string
}

func NewShareService(db *gorm.DB) *ShareService {
	return &ShareService{
		DB:         db,
		UploadsDir: utils.EnvOrDefault("UPLOADS_DIR", "./uploads"),
	}
}

// CreateShareLink issues a fresh share artifact. No expiry is bound into
// the payload; the issuance timestamp is returned so a scanner could
// enforce one later.
func (s *ShareService) CreateShareLink(eventID uint) (*ShareLink, error) {
	var event models.Event
	if err := s.DB.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		return nil, err
	}

	nonce := uuid.NewString()
	payload := utils.BuildSharePayload(event.ID, nonce)

	rawCode, err := utils.GenerateAccessCode(8)
	if err != nil {
		return nil, err
	}
	code, err := utils.FormatAccessCode(rawCode)
	if err != nil {
		return nil, err
	}

	frontendURL := utils.EnvOrDefault("FRONTEND_URL", "http://localhost:3000")
	link := &ShareLink{
		EventID:  event.ID,
		Payload:  payload,
		Link:     utils.BuildShareLink(frontendURL, event.ID, nonce),
		Code:     code,
		IssuedAt: time.Now().UTC(),
	}

	if path, rErr := utils.RenderQRCode(payload, s.UploadsDir); rErr != nil {
		log.Printf("share qr render failed for event %d: %v", event.ID, rErr)
	} else {
		link.ImagePath = path
	}

	return link, nil
}
