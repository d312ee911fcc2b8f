package service

import (
	"errors"
	"log"
	"sync"

	"bcaroutine_backend/internals/kvstore"

	routineModel "bcaroutine_backend/internals/features/routine/model"
)

var ErrTimeSlotNotFound = errors.New("time slot not found")

// TimeSlotStore owns the ordered list of time slots referenced by schedule
// cell keys. Removing a slot does not cascade into the schedule; cells that
// reference it become orphans.
type TimeSlotStore struct {
	mu    sync.RWMutex
	slots []routineModel.TimeSlot
	kv    kvstore.Store
}

func NewTimeSlotStore(kv kvstore.Store) (*TimeSlotStore, error) {
	s := &TimeSlotStore{kv: kv}

	blob, found, err := kv.Get(routineModel.SnapshotKeyTimeSlots)
	if err != nil {
		return nil, err
	}
	if found {
		if err := kvstore.DecodeSnapshot(blob, &s.slots); err != nil {
			if !errors.Is(err, kvstore.ErrBadSnapshot) {
				return nil, err
			}
			log.Printf("[WARN] time-slot snapshot malformed, quarantining: %v", err)
			if qerr := kv.Quarantine(routineModel.SnapshotKeyTimeSlots); qerr != nil {
				log.Printf("[ERROR] quarantine time-slot snapshot: %v", qerr)
			}
			s.slots = nil
		}
	}
	if s.slots == nil {
		s.slots = routineModel.DefaultTimeSlots()
	}
	return s, nil
}

func (s *TimeSlotStore) List() []routineModel.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]routineModel.TimeSlot, len(s.slots))
	copy(out, s.slots)
	return out
}

// Add appends a slot with a timestamp-derived id and a placeholder label.
func (s *TimeSlotStore) Add() (routineModel.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := routineModel.TimeSlot{
		ID:       routineModel.NewTimestampID(),
		Time:     "New Time Slot",
		Editable: true,
	}
	s.slots = append(s.slots, slot)
	return slot, s.persistLocked()
}

func (s *TimeSlotStore) Rename(id, label string) (routineModel.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.slots {
		if s.slots[i].ID == id {
			s.slots[i].Time = label
			return s.slots[i], s.persistLocked()
		}
	}
	return routineModel.TimeSlot{}, ErrTimeSlotNotFound
}

// Remove drops the slot. Removing the last remaining slot is not blocked
// here; the UI discourages it.
func (s *TimeSlotStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.slots {
		if s.slots[i].ID == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return s.persistLocked()
		}
	}
	return ErrTimeSlotNotFound
}

// Replace swaps the whole list (import path).
func (s *TimeSlotStore) Replace(slots []routineModel.TimeSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots = make([]routineModel.TimeSlot, len(slots))
	copy(s.slots, slots)
	return s.persistLocked()
}

func (s *TimeSlotStore) persistLocked() error {
	blob, err := kvstore.EncodeSnapshot(s.slots)
	if err != nil {
		return err
	}
	return s.kv.Set(routineModel.SnapshotKeyTimeSlots, blob)
}
