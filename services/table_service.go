package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"event-backend/models"

	"gorm.io/gorm"
)

// TableService owns the seating invariants: an assignment list never grows
// past capacity, and a guest sits at one table at most. Assigning touches
// two rows (assignment + guest.table_id), so every mutation runs inside a
// single transaction.
type TableService struct {
	DB *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{DB: db}
}

func (s *TableService) Create(table *models.Table) error {
	if strings.TrimSpace(table.Name) == "" {
		return fmt.Errorf("%w: table name is required", ErrValidation)
	}
	if table.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	return s.DB.Create(table).Error
}

func (s *TableService) GetByID(id uint) (*models.Table, error) {
	var table models.Table
	err := s.DB.
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("table_assignments.id ASC")
		}).
		First(&table, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		return nil, err
	}
	return &table, nil
}

func (s *TableService) ListByEvent(eventID uint) ([]models.Table, error) {
	var tables []models.Table
	err := s.DB.
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("table_assignments.id ASC")
		}).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&tables).Error
	return tables, err
}

// Update changes name/capacity. Capacity may not shrink below the current
// assignment count.
func (s *TableService) Update(table *models.Table) error {
	if table.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.TableAssignment{}).
			Where("table_id = ?", table.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if int64(table.Capacity) < count {
			return fmt.Errorf("%w: capacity below current assignment count", ErrValidation)
		}
		return tx.Model(&models.Table{}).
			Where("id = ?", table.ID).
			Updates(map[string]interface{}{
				"name":     table.Name,
				"capacity": table.Capacity,
			}).Error
	})
}

// Delete removes the table, its assignment rows and clears the table
// reference on every seated guest.
func (s *TableService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Guest{}).
			Where("table_id = ?", id).
			Update("table_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("table_id = ?", id).
			Delete(&models.TableAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Table{}, id).Error
	})
}

// Assign seats a guest at a table. A guest already seated elsewhere is
// moved; a guest already at this table is rejected with ErrAlreadyAssigned;
// a full table with ErrTableFull. The capacity count happens inside the
// same transaction as the insert so racing assigns cannot both slip past.
func (s *TableService) Assign(tableID, guestID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFoundOrUnauthorized
			}
			return err
		}

		var guest models.Guest
		if err := tx.First(&guest, guestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFoundOrUnauthorized
			}
			return err
		}
		if guest.EventID != table.EventID {
			return fmt.Errorf("%w: guest and table belong to different events", ErrValidation)
		}

		var existing int64
		if err := tx.Model(&models.TableAssignment{}).
			Where("table_id = ? AND guest_id = ?", tableID, guestID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyAssigned
		}

		// one table per guest: drop any seat at another table first
		if err := tx.Where("guest_id = ?", guestID).
			Delete(&models.TableAssignment{}).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.TableAssignment{}).
			Where("table_id = ?", tableID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(table.Capacity) {
			return ErrTableFull
		}

		assignment := models.TableAssignment{
			TableID:    tableID,
			GuestID:    guestID,
			GuestName:  guest.FullName,
			AssignedAt: time.Now().UTC(),
		}
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}

		return tx.Model(&models.Guest{}).
			Where("id = ?", guestID).
			Update("table_id", tableID).Error
	})
}

// Unassign removes a guest from a table. A guest who was never seated
// there is a silent no-op — stale clients may unassign twice.
func (s *TableService) Unassign(tableID, guestID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("table_id = ? AND guest_id = ?", tableID, guestID).
			Delete(&models.TableAssignment{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Guest{}).
			Where("id = ? AND table_id = ?", guestID, tableID).
			Update("table_id", nil).Error
	})
}
