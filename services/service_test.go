package services

import (
	"testing"

	"event-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database with the full schema.
// A single connection keeps :memory: stable across the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Organizer{},
		&models.Event{},
		&models.Guest{},
		&models.Table{},
		&models.TableAssignment{},
		&models.Contact{},
		&models.Notification{},
		&models.Campaign{},
	))

	return db
}

func createTestEvent(t *testing.T, db *gorm.DB) *models.Event {
	t.Helper()

	organizer := models.Organizer{FullName: "Test Organizer", Email: "org@example.com"}
	require.NoError(t, db.Create(&organizer).Error)

	event := models.Event{OrganizerID: organizer.ID, Title: "Launch Party", Location: "Kinshasa"}
	require.NoError(t, db.Create(&event).Error)
	return &event
}

func createTestGuest(t *testing.T, db *gorm.DB, eventID uint, name string) *models.Guest {
	t.Helper()

	svc := NewGuestService(db)
	guest := models.Guest{EventID: eventID, FullName: name, Phone: "+243000000"}
	require.NoError(t, svc.Create(&guest))
	return &guest
}

func createTestTable(t *testing.T, db *gorm.DB, eventID uint, name string, capacity int) *models.Table {
	t.Helper()

	svc := NewTableService(db)
	table := models.Table{EventID: eventID, Name: name, Capacity: capacity}
	require.NoError(t, svc.Create(&table))
	return &table
}
