package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	routineModel "bcaroutine_backend/internals/features/routine/model"
	"bcaroutine_backend/internals/kvstore"
)

// seeds an empty subject catalog so add tests start from zero instead of
// the ten defaults
func newEmptySubjectStore(t *testing.T) (*SubjectStore, *ScheduleStore) {
	t.Helper()
	kv := newTestKV(t)

	blob, err := kvstore.EncodeSnapshot([]routineModel.Subject{})
	require.NoError(t, err)
	require.NoError(t, kv.Set(routineModel.SnapshotKeySubjects, blob))

	schedule, err := NewScheduleStore(kv)
	require.NoError(t, err)
	subjects, err := NewSubjectStore(kv, schedule)
	require.NoError(t, err)
	return subjects, schedule
}

func TestSubjectStore_SeedsDefaults(t *testing.T) {
	kv := newTestKV(t)
	schedule, err := NewScheduleStore(kv)
	require.NoError(t, err)

	store, err := NewSubjectStore(kv, schedule)
	require.NoError(t, err)

	subjects := store.List()
	require.Len(t, subjects, 10)
	assert.Equal(t, "Data Structures & Algorithms", subjects[0].Name)
	assert.Equal(t, "#3b82f6", subjects[0].Color)
}

func TestSubjectStore_AddAssignsDistinctIDsAndPaletteColors(t *testing.T) {
	store, _ := newEmptySubjectStore(t)

	first, err := store.Add()
	require.NoError(t, err)
	second, err := store.Add()
	require.NoError(t, err)
	third, err := store.Add()
	require.NoError(t, err)

	// Back-to-back adds land within the same millisecond; ids must still
	// come out distinct.
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, second.ID, third.ID)
	assert.NotEqual(t, first.ID, third.ID)
	assert.Equal(t, routineModel.SubjectPalette[0], first.Color)
	assert.Equal(t, routineModel.SubjectPalette[1], second.Color)
	assert.Equal(t, routineModel.SubjectPalette[2], third.Color)
}

func TestSubjectStore_PaletteWrapsAfterTen(t *testing.T) {
	store, _ := newEmptySubjectStore(t)

	var last routineModel.Subject
	for i := 0; i < 11; i++ {
		var err error
		last, err = store.Add()
		require.NoError(t, err)
	}

	// 11th add wraps to palette index 0
	assert.Equal(t, routineModel.SubjectPalette[0], last.Color)
	assert.Len(t, store.List(), 11)
}

func TestSubjectStore_RenameCascadesIntoSchedule(t *testing.T) {
	store, schedule := newEmptySubjectStore(t)

	subject, err := store.Add()
	require.NoError(t, err)
	subject, err = store.Rename(subject.ID, "DSA")
	require.NoError(t, err)

	require.NoError(t, schedule.UpsertCell("Monday-1", &routineModel.ScheduleItem{Name: "DSA"}))
	require.NoError(t, schedule.UpsertCell("Tuesday-2", &routineModel.ScheduleItem{Name: "DSA"}))
	require.NoError(t, schedule.UpsertCell("Friday-4", &routineModel.ScheduleItem{Name: "OS"}))

	_, err = store.Rename(subject.ID, "Algorithms")
	require.NoError(t, err)

	cells := schedule.ListCells()
	assert.Equal(t, "Algorithms", cells["Monday-1"].Name)
	assert.Equal(t, "Algorithms", cells["Tuesday-2"].Name)
	assert.Equal(t, "OS", cells["Friday-4"].Name, "entries with other names must be untouched")
}

func TestSubjectStore_RemoveDoesNotCascade(t *testing.T) {
	store, schedule := newEmptySubjectStore(t)

	subject, err := store.Add()
	require.NoError(t, err)
	subject, err = store.Rename(subject.ID, "DSA")
	require.NoError(t, err)

	require.NoError(t, schedule.UpsertCell("Monday-1", &routineModel.ScheduleItem{Name: "DSA"}))
	require.NoError(t, store.Remove(subject.ID))

	// The cell keeps the stale name
	assert.Equal(t, "DSA", schedule.ListCells()["Monday-1"].Name)
	assert.Empty(t, store.List())
}

func TestSubjectStore_NotFound(t *testing.T) {
	store, _ := newEmptySubjectStore(t)

	_, err := store.Rename("nope", "x")
	assert.ErrorIs(t, err, ErrSubjectNotFound)
	assert.ErrorIs(t, store.Remove("nope"), ErrSubjectNotFound)
}
