package service

import (
	"errors"
	"log"
	"sync"

	"bcaroutine_backend/internals/kvstore"

	routineModel "bcaroutine_backend/internals/features/routine/model"
)

// ScheduleStore owns the routine grid: cell key → ScheduleItem. Every
// mutation is mirrored synchronously to its snapshot key; a failed write is
// reported but the in-memory state stays as-is (the next successful write
// re-persists everything).
type ScheduleStore struct {
	mu    sync.RWMutex
	cells map[string]routineModel.ScheduleItem
	kv    kvstore.Store
}

func NewScheduleStore(kv kvstore.Store) (*ScheduleStore, error) {
	s := &ScheduleStore{
		cells: make(map[string]routineModel.ScheduleItem),
		kv:    kv,
	}

	blob, found, err := kv.Get(routineModel.SnapshotKeySchedule)
	if err != nil {
		return nil, err
	}
	if found {
		if err := kvstore.DecodeSnapshot(blob, &s.cells); err != nil {
			if !errors.Is(err, kvstore.ErrBadSnapshot) {
				return nil, err
			}
			log.Printf("[WARN] schedule snapshot malformed, quarantining: %v", err)
			if qerr := kv.Quarantine(routineModel.SnapshotKeySchedule); qerr != nil {
				log.Printf("[ERROR] quarantine schedule snapshot: %v", qerr)
			}
			s.cells = make(map[string]routineModel.ScheduleItem)
		}
	}
	return s, nil
}

// UpsertCell inserts or overwrites the cell at key; a nil item deletes it.
// The store does not validate that the key references a known day or time
// slot — orphaned keys are representable and simply ignored by consumers.
func (s *ScheduleStore) UpsertCell(cellKey string, item *routineModel.ScheduleItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item != nil {
		it := *item
		it.ID = cellKey
		s.cells[cellKey] = it
	} else {
		delete(s.cells, cellKey)
	}
	return s.persistLocked()
}

// ListCells returns a copy of the full grid.
func (s *ScheduleStore) ListCells() map[string]routineModel.ScheduleItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]routineModel.ScheduleItem, len(s.cells))
	for k, v := range s.cells {
		out[k] = v
	}
	return out
}

// RenameSubjectRefs rewrites every cell whose name equals oldName. Cells
// with other names are untouched. Called by the subject store's rename
// cascade; a full scan of the grid per rename.
func (s *ScheduleStore) RenameSubjectRefs(oldName, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for key, item := range s.cells {
		if item.Name == oldName {
			item.Name = newName
			s.cells[key] = item
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.persistLocked()
}

// Replace swaps the whole grid (import path).
func (s *ScheduleStore) Replace(cells map[string]routineModel.ScheduleItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cells = make(map[string]routineModel.ScheduleItem, len(cells))
	for k, v := range cells {
		v.ID = k
		s.cells[k] = v
	}
	return s.persistLocked()
}

func (s *ScheduleStore) persistLocked() error {
	blob, err := kvstore.EncodeSnapshot(s.cells)
	if err != nil {
		return err
	}
	return s.kv.Set(routineModel.SnapshotKeySchedule, blob)
}
