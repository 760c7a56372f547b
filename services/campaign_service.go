package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"event-backend/models"
	"event-backend/utils"

	"gorm.io/gorm"
)

type CampaignService struct {
	DB *gorm.DB
}

func NewCampaignService(db *gorm.DB) *CampaignService {
	return &CampaignService{DB: db}
}

func (s *CampaignService) Create(campaign *models.Campaign) error {
	if campaign.EventID == 0 {
		return fmt.Errorf("%w: event_id is required", ErrValidation)
	}
	if strings.TrimSpace(campaign.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrValidation)
	}
	if campaign.Status == "" {
		campaign.Status = models.CampaignStatusDraft
	}
	return s.DB.Create(campaign).Error
}

func (s *CampaignService) GetByID(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := s.DB.First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		return nil, err
	}
	return &campaign, nil
}

func (s *CampaignService) ListByEvent(eventID uint) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := s.DB.
		Where("event_id = ?", eventID).
		Order("id DESC").
		Find(&campaigns).Error
	return campaigns, err
}

func (s *CampaignService) Update(campaign *models.Campaign) error {
	if campaign.ID == 0 {
		return fmt.Errorf("%w: missing campaign id", ErrValidation)
	}
	return s.DB.Model(&models.Campaign{}).
		Where("id = ?", campaign.ID).
		Updates(campaign).Error
}

func (s *CampaignService) Delete(id uint) error {
	return s.DB.Delete(&models.Campaign{}, id).Error
}

// Send mails the campaign to every guest on the event's list who has an
// email address. Delivery is best-effort per recipient; a failed address
// is logged and skipped, not retried.
func (s *CampaignService) Send(id uint) (*models.Campaign, error) {
	campaign, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if campaign.Status == models.CampaignStatusSent {
		return nil, fmt.Errorf("%w: campaign already sent", ErrValidation)
	}

	var event models.Event
	if err := s.DB.First(&event, campaign.EventID).Error; err != nil {
		return nil, err
	}

	var guests []models.Guest
	if err := s.DB.
		Where("event_id = ? AND email <> ''", campaign.EventID).
		Find(&guests).Error; err != nil {
		return nil, err
	}

	sent := 0
	for _, guest := range guests {
		if err := utils.SendCampaignEmail(guest.Email, guest.FullName, event.Title,
			campaign.Subject, campaign.Body); err != nil {
			log.Printf("campaign %d: send to %s failed: %v",
				campaign.ID, utils.MaskEmail(guest.Email), err)
			continue
		}
		sent++
	}

	now := time.Now().UTC()
	campaign.Status = models.CampaignStatusSent
	campaign.SentAt = &now
	campaign.RecipientCount = sent
	if err := s.DB.Model(campaign).Updates(map[string]interface{}{
		"status":          campaign.Status,
		"sent_at":         campaign.SentAt,
		"recipient_count": campaign.RecipientCount,
	}).Error; err != nil {
		return nil, err
	}
	return campaign, nil
}
