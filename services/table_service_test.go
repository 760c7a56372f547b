package services

import (
	"testing"

	"event-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db)
	svc := NewTableService(db)

	err := svc.Create(&models.Table{EventID: event.ID, Name: "", Capacity: 4})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Create(&models.Table{EventID: event.ID, Name: "Head Table", Capacity: 0})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Create(&models.Table{EventID: event.ID, Name: "Head Table", Capacity: -3})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAssignAndCapacity(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db)
	svc := NewTableService(db)

	table := createTestTable(t, db, event.ID, "Table 1", 2)
	g1 := createTestGuest(t, db, event.ID, "Alice")
	g2 := createTestGuest(t, db, event.ID, "Bob")
	g3 := createTestGuest(t, db, event.ID, "Carol")

	require.NoError(t, svc.Assign(table.ID, g1.ID))
	require.NoError(t, svc.Assign(table.ID, g2.ID))

	// table at capacity
	assert.ErrorIs(t, svc.Assign(table.ID, g3.ID), ErrTableFull)

	// same guest twice
	assert.ErrorIs(t, svc.Assign(table.ID, g1.ID), ErrAlreadyAssigned)

	got, err := svc.GetByID(table.ID)
	require.NoError(t, err)
	require.Len(t, got.Assignments, 2)
	assert.LessOrEqual(t, len(got.Assignments), got.Capacity)

	// insertion order preserved
	assert.Equal(t, g1.ID, got.Assignments[0].GuestID)
	assert.Equal(t, "Alice", got.Assignments[0].GuestName)
	assert.Equal(t, g2.ID, got.Assignments[1].GuestID)
	assert.False(t, got.Assignments[0].AssignedAt.IsZero())

	// guest row carries the back reference
	var guest models.Guest
	require.NoError(t, db.First(&guest, g1.ID).Error)
	require.NotNil(t, guest.TableID)
	assert.Equal(t, table.ID, *guest.TableID)
}

func TestAssignUnknownRows(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db)
	svc := NewTableService(db)

	table := createTestTable(t, db, event.ID, "Table 1", 2)
	guest := createTestGuest(t, db, event.ID, "Alice")

	assert.ErrorIs(t, svc.Assign(9999, guest.ID), ErrNotFoundOrUnauthorized)
	assert.ErrorIs(t, svc.Assign(table.ID, 9999), ErrNotFoundOrUnauthorized)
}

func TestAssignAcrossEventsRejected(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db)
	other := models.Event{OrganizerID: event.OrganizerID, Title: "Other"}
	require.NoError(t, db.Create(&other).Error)

	svc := NewTableService(db)
	table := createTestTable(t, db, event.ID, "Table 1", 2)
	stranger := createTestGuest(t, db, other.ID, "Mallory")

	assert.ErrorIs(t, svc.Assign(table.ID, stranger.ID), ErrValidation)
}

func TestUnassignIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db)
	svc := NewTableService(db)

	table := createTestTable(t, db, event.ID, "Table 1", 2)
	guest := createTestGuest(t, db, event.ID, "Alice")

	// never assigned: silent no-op
	require.NoError(t, svc.Unassign(table.ID, guest.ID))

	require.NoError(t, svc.Assign(table.ID, guest.ID))
	require.NoError(t, svc.Unassign(table.ID, guest.ID))
	// second unassign is still a no-op
	require.NoError(t, svc.Unassign(table.ID, guest.ID))

	got, err := svc.GetByID(table.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Assignments)

	var g models.Guest
	require.NoError(t, db.First(&g, guest.ID).Error)
	assert.Nil(t, g.TableID)
}

// capacity-1 walkthrough: assign, second assign fails full, unassign frees
// the seat for the second guest.
func TestCapacityOneScenario(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db)
	svc := NewTableService(db)

	table := createTestTable(t, db, event.ID, "Sweetheart", 1)
	g1 := createTestGuest(t, db, event.ID, "Alice")
	g2 := createTestGuest(t, db, event.ID, "Bob")

	require.NoError(t, svc.Assign(table.ID, g1.ID))
	assert.ErrorIs(t, svc.Assign(table.ID, g2.ID), ErrTableFull)

	require.NoError(t, svc.Unassign(table.ID, g1.ID))
	require.NoError(t, svc.Assign(table.ID, g2.ID))

	got, err := svc.GetByID(table.ID)
	require.NoError(t, err)
	require.Len(t, got.Assignments, 1)
	assert.Equal(t, g2.ID, got.Assignments[0].GuestID)
}

func TestAssignMovesGuestBetweenTables(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db)
	svc := NewTableService(db)

	t1 := createTestTable(t, db, event.ID, "Table 1", 2)
	t2 := createTestTable(t, db, event.ID, "Table 2", 2)
	guest := createTestGuest(t, db, event.ID, "Alice")

	require.NoError(t, svc.Assign(t1.ID, guest.ID))
	require.NoError(t, svc.Assign(t2.ID, guest.ID))

	// at most one table per guest
	var count int64
	require.NoError(t, db.Model(&models.TableAssignment{}).
		Where("guest_id = ?", guest.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var g models.Guest
	require.NoError(t, db.First(&g, guest.ID).Error)
	require.NotNil(t, g.TableID)
	assert.Equal(t, t2.ID, *g.TableID)
}

func TestCapacityHoldsUnderAnySequence(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db)
	svc := NewTableService(db)

	table := createTestTable(t, db, event.ID, "Table 1", 3)
	guests := make([]*models.Guest, 6)
	for i := range guests {
		guests[i] = createTestGuest(t, db, event.ID, "Guest")
	}

	// interleaved assigns and unassigns; failures are expected and ignored,
	// the invariant must hold after every step
	ops := []struct {
		assign bool
		guest  int
	}{
		{true, 0}, {true, 1}, {true, 2}, {true, 3}, {false, 1},
		{true, 3}, {true, 4}, {false, 0}, {true, 5}, {true, 1},
	}
	for _, op := range ops {
		if op.assign {
			err := svc.Assign(table.ID, guests[op.guest].ID)
			if err != nil {
				assert.ErrorIs(t, err, ErrTableFull)
			}
		} else {
			require.NoError(t, svc.Unassign(table.ID, guests[op.guest].ID))
		}

		got, err := svc.GetByID(table.ID)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got.Assignments), got.Capacity)
	}
}

func TestUpdateCapacityBelowAssignments(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db)
	svc := NewTableService(db)

	table := createTestTable(t, db, event.ID, "Table 1", 2)
	require.NoError(t, svc.Assign(table.ID, createTestGuest(t, db, event.ID, "Alice").ID))
	require.NoError(t, svc.Assign(table.ID, createTestGuest(t, db, event.ID, "Bob").ID))

	table.Capacity = 1
	assert.ErrorIs(t, svc.Update(table), ErrValidation)

	table.Capacity = 4
	table.Name = "Renamed"
	require.NoError(t, svc.Update(table))

	got, err := svc.GetByID(table.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 4, got.Capacity)
}

func TestDeleteTableClearsGuests(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db)
	svc := NewTableService(db)

	table := createTestTable(t, db, event.ID, "Table 1", 2)
	guest := createTestGuest(t, db, event.ID, "Alice")
	require.NoError(t, svc.Assign(table.ID, guest.ID))

	require.NoError(t, svc.Delete(table.ID))

	_, err := svc.GetByID(table.ID)
	assert.ErrorIs(t, err, ErrNotFoundOrUnauthorized)

	var g models.Guest
	require.NoError(t, db.First(&g, guest.ID).Error)
	assert.Nil(t, g.TableID)

	var count int64
	require.NoError(t, db.Model(&models.TableAssignment{}).
		Where("table_id = ?", table.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
