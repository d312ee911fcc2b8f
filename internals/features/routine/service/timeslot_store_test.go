package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	routineModel "bcaroutine_backend/internals/features/routine/model"
)

func TestTimeSlotStore_SeedsDefaults(t *testing.T) {
	store, err := NewTimeSlotStore(newTestKV(t))
	require.NoError(t, err)

	slots := store.List()
	require.Len(t, slots, 6)
	assert.Equal(t, "1", slots[0].ID)
	assert.Equal(t, "9:00 - 10:00", slots[0].Time)
	assert.False(t, slots[0].Editable)
}

func TestTimeSlotStore_AddRenameRemove(t *testing.T) {
	store, err := NewTimeSlotStore(newTestKV(t))
	require.NoError(t, err)

	slot, err := store.Add()
	require.NoError(t, err)
	assert.Equal(t, "New Time Slot", slot.Time)
	assert.True(t, slot.Editable)
	assert.Len(t, store.List(), 7)

	renamed, err := store.Rename(slot.ID, "4:00 - 5:00")
	require.NoError(t, err)
	assert.Equal(t, "4:00 - 5:00", renamed.Time)

	require.NoError(t, store.Remove(slot.ID))
	assert.Len(t, store.List(), 6)
}

func TestTimeSlotStore_BackToBackAddsGetDistinctIDs(t *testing.T) {
	store, err := NewTimeSlotStore(newTestKV(t))
	require.NoError(t, err)

	first, err := store.Add()
	require.NoError(t, err)
	second, err := store.Add()
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestTimeSlotStore_NotFound(t *testing.T) {
	store, err := NewTimeSlotStore(newTestKV(t))
	require.NoError(t, err)

	_, err = store.Rename("nope", "x")
	assert.ErrorIs(t, err, ErrTimeSlotNotFound)

	err = store.Remove("nope")
	assert.ErrorIs(t, err, ErrTimeSlotNotFound)
}

func TestTimeSlotStore_RemovingLastSlotIsAllowed(t *testing.T) {
	store, err := NewTimeSlotStore(newTestKV(t))
	require.NoError(t, err)

	for _, slot := range store.List() {
		require.NoError(t, store.Remove(slot.ID))
	}
	assert.Empty(t, store.List())
}

func TestTimeSlotStore_RemoveDoesNotCascadeIntoSchedule(t *testing.T) {
	kv := newTestKV(t)

	schedule, err := NewScheduleStore(kv)
	require.NoError(t, err)
	slots, err := NewTimeSlotStore(kv)
	require.NoError(t, err)

	require.NoError(t, schedule.UpsertCell("Monday-1", &routineModel.ScheduleItem{Name: "DSA"}))
	require.NoError(t, slots.Remove("1"))

	// The cell keyed on the removed slot stays behind as an orphan
	assert.Contains(t, schedule.ListCells(), "Monday-1")
}

func TestTimeSlotStore_PersistsAcrossReload(t *testing.T) {
	kv := newTestKV(t)

	store, err := NewTimeSlotStore(kv)
	require.NoError(t, err)
	slot, err := store.Add()
	require.NoError(t, err)

	reloaded, err := NewTimeSlotStore(kv)
	require.NoError(t, err)
	slots := reloaded.List()
	require.Len(t, slots, 7)
	assert.Equal(t, slot.ID, slots[6].ID)
}
