package models

import (
	"time"

	"gorm.io/gorm"
)

type Table struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	EventID  uint   `gorm:"index;column:event_id" json:"event_id"`
	Name     string `gorm:"size:255" json:"name"`
	Capacity int    `gorm:"column:capacity" json:"capacity"`

	// Insertion order == seating order; removals never reorder.
	Assignments []TableAssignment `gorm:"foreignKey:TableID" json:"assignments"`
}

// TableName avoids the bare "tables" name in MySQL.
func (Table) TableName() string { return "event_tables" }

type TableAssignment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TableID    uint      `gorm:"index;column:table_id" json:"table_id"`
	GuestID    uint      `gorm:"index;column:guest_id" json:"guest_id"`
	GuestName  string    `gorm:"size:255" json:"guest_name"`
	AssignedAt time.Time `gorm:"column:assigned_at" json:"assigned_at"`
}

func (TableAssignment) TableName() string { return "table_assignments" }
