package services

import (
	"math/rand"
	"testing"

	"event-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateGuestsEmpty(t *testing.T) {
	stats := AggregateGuests(nil)
	assert.Equal(t, EventStats{}, stats)

	stats = AggregateGuests([]models.Guest{})
	assert.Equal(t, EventStats{}, stats)
}

func TestAggregateGuestsCounts(t *testing.T) {
	guests := []models.Guest{
		{Status: models.GuestStatusConfirmed, PlusOnes: 2},
		{Status: models.GuestStatusConfirmed, PlusOnes: 0, CheckedIn: true},
		{Status: models.GuestStatusDeclined},
		{Status: models.GuestStatusMaybe},
		{Status: models.GuestStatusPending},
		{Status: ""}, // never initialized counts as pending
	}

	stats := AggregateGuests(guests)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.Confirmed)
	assert.Equal(t, 1, stats.Declined)
	assert.Equal(t, 1, stats.Maybe)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.CheckedIn)
	// (1+2) + (1+0)
	assert.Equal(t, 4, stats.ConfirmedWithPlusOnes)
}

func TestAggregateGuestsPermutationInvariant(t *testing.T) {
	guests := []models.Guest{
		{Status: models.GuestStatusConfirmed, PlusOnes: 1},
		{Status: models.GuestStatusDeclined},
		{Status: models.GuestStatusMaybe, CheckedIn: true},
		{Status: models.GuestStatusPending},
		{Status: models.GuestStatusConfirmed, PlusOnes: 3, CheckedIn: true},
	}
	want := AggregateGuests(guests)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.Guest, len(guests))
		copy(shuffled, guests)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, AggregateGuests(shuffled))
	}
}

func TestStatsServiceForEvent(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db)
	other := models.Event{OrganizerID: event.OrganizerID, Title: "Other"}
	require.NoError(t, db.Create(&other).Error)

	g1 := createTestGuest(t, db, event.ID, "Alice")
	require.NoError(t, db.Model(g1).Updates(map[string]interface{}{
		"status": models.GuestStatusConfirmed, "plus_ones": 1,
	}).Error)
	createTestGuest(t, db, event.ID, "Bob")
	// guest on another event must not leak into the aggregate
	createTestGuest(t, db, other.ID, "Carol")

	stats, err := NewStatsService(db).ForEvent(event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.ConfirmedWithPlusOnes)
}
