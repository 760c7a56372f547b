package services

import (
	"errors"
	"fmt"
	"strings"

	"event-backend/models"

	"gorm.io/gorm"
)

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

func (s *ContactService) Create(contact *models.Contact) error {
	if strings.TrimSpace(contact.FullName) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return s.DB.Create(contact).Error
}

func (s *ContactService) GetByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.DB.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		return nil, err
	}
	return &contact, nil
}

func (s *ContactService) ListByOrganizer(organizerID uint) ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.DB.
		Where("organizer_id = ?", organizerID).
		Order("full_name ASC").
		Find(&contacts).Error
	return contacts, err
}

func (s *ContactService) Update(contact *models.Contact) error {
	if contact.ID == 0 {
		return fmt.Errorf("%w: missing contact id", ErrValidation)
	}
	return s.DB.Model(&models.Contact{}).
		Where("id = ?", contact.ID).
		Updates(contact).Error
}

func (s *ContactService) Delete(id uint) error {
	return s.DB.Delete(&models.Contact{}, id).Error
}
