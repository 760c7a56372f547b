package services

import (
	"errors"
	"fmt"
	"strings"

	"event-backend/models"

	"gorm.io/gorm"
)

type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

func (s *EventService) Create(event *models.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	return s.DB.Create(event).Error
}

func (s *EventService) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := s.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		return nil, err
	}
	return &event, nil
}

func (s *EventService) ListByOrganizer(organizerID uint) ([]models.Event, error) {
	var events []models.Event
	err := s.DB.
		Where("organizer_id = ?", organizerID).
		Order("id DESC").
		Find(&events).Error
	return events, err
}

func (s *EventService) Update(event *models.Event) error {
	if event.ID == 0 {
		return fmt.Errorf("%w: missing event id", ErrValidation)
	}
	return s.DB.Model(&models.Event{}).
		Where("id = ?", event.ID).
		Updates(event).Error
}

func (s *EventService) Delete(id uint) error {
	return s.DB.Delete(&models.Event{}, id).Error
}
