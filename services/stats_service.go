package services

import (
	"event-backend/models"

	"gorm.io/gorm"
)

// EventStats is the derived dashboard view of an event's guest set.
type EventStats struct {
	Total                 int `json:"total"`
	Confirmed             int `json:"confirmed"`
	Declined              int `json:"declined"`
	Pending               int `json:"pending"`
	Maybe                 int `json:"maybe"`
	CheckedIn             int `json:"checked_in"`
	ConfirmedWithPlusOnes int `json:"confirmed_with_plus_ones"`
}

// AggregateGuests counts guests by status. Pure and commutative over the
// input, so recomputing on every change notification is safe and the order
// guests arrive in does not matter.
func AggregateGuests(guests []models.Guest) EventStats {
	var stats EventStats
	stats.Total = len(guests)
	for _, g := range guests {
		switch g.Status {
		case models.GuestStatusConfirmed:
			stats.Confirmed++
			stats.ConfirmedWithPlusOnes += 1 + g.PlusOnes
		case models.GuestStatusDeclined:
			stats.Declined++
		case models.GuestStatusMaybe:
			stats.Maybe++
		default:
			stats.Pending++
		}
		if g.CheckedIn {
			stats.CheckedIn++
		}
	}
	return stats
}

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// ForEvent fetches the live guest set and aggregates it.
func (s *StatsService) ForEvent(eventID uint) (EventStats, error) {
	var guests []models.Guest
	if err := s.DB.Where("event_id = ?", eventID).Find(&guests).Error; err != nil {
		return EventStats{}, err
	}
	return AggregateGuests(guests), nil
}
