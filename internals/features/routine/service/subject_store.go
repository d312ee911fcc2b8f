package service

import (
	"errors"
	"log"
	"sync"

	"bcaroutine_backend/internals/kvstore"

	routineModel "bcaroutine_backend/internals/features/routine/model"
)

var ErrSubjectNotFound = errors.New("subject not found")

// SubjectStore owns the subject catalog. Renames cascade into schedule cells
// by the subject's prior name; removals do not cascade anywhere (stale names
// in cells and files stay behind).
type SubjectStore struct {
	mu       sync.Mutex
	subjects []routineModel.Subject
	kv       kvstore.Store
	schedule *ScheduleStore
}

func NewSubjectStore(kv kvstore.Store, schedule *ScheduleStore) (*SubjectStore, error) {
	s := &SubjectStore{kv: kv, schedule: schedule}

	blob, found, err := kv.Get(routineModel.SnapshotKeySubjects)
	if err != nil {
		return nil, err
	}
	if found {
		if err := kvstore.DecodeSnapshot(blob, &s.subjects); err != nil {
			if !errors.Is(err, kvstore.ErrBadSnapshot) {
				return nil, err
			}
			log.Printf("[WARN] subject snapshot malformed, quarantining: %v", err)
			if qerr := kv.Quarantine(routineModel.SnapshotKeySubjects); qerr != nil {
				log.Printf("[ERROR] quarantine subject snapshot: %v", qerr)
			}
			s.subjects = nil
		}
	}
	if s.subjects == nil {
		s.subjects = routineModel.DefaultSubjects()
	}
	return s, nil
}

func (s *SubjectStore) List() []routineModel.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]routineModel.Subject, len(s.subjects))
	copy(out, s.subjects)
	return out
}

// Add appends a placeholder subject. The color is picked round-robin from
// the fixed palette by current subject count.
func (s *SubjectStore) Add() (routineModel.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subject := routineModel.Subject{
		ID:    routineModel.NewTimestampID(),
		Name:  "New Subject",
		Color: routineModel.SubjectPalette[len(s.subjects)%len(routineModel.SubjectPalette)],
	}
	s.subjects = append(s.subjects, subject)
	return subject, s.persistLocked()
}

// Rename updates the subject and rewrites every schedule cell that carried
// its prior name. The prior name is resolved under the lock, so concurrent
// renames of the same subject cannot cascade against a stale name.
func (s *SubjectStore) Rename(id, newName string) (routineModel.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.subjects {
		if s.subjects[i].ID != id {
			continue
		}
		oldName := s.subjects[i].Name
		s.subjects[i].Name = newName
		if err := s.persistLocked(); err != nil {
			return s.subjects[i], err
		}
		if oldName != newName {
			if err := s.schedule.RenameSubjectRefs(oldName, newName); err != nil {
				// Subject rename already persisted; the cascade write
				// failed and is not rolled back.
				return s.subjects[i], err
			}
		}
		return s.subjects[i], nil
	}
	return routineModel.Subject{}, ErrSubjectNotFound
}

// Remove deletes the subject without touching schedule cells or files.
func (s *SubjectStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.subjects {
		if s.subjects[i].ID == id {
			s.subjects = append(s.subjects[:i], s.subjects[i+1:]...)
			return s.persistLocked()
		}
	}
	return ErrSubjectNotFound
}

func (s *SubjectStore) persistLocked() error {
	blob, err := kvstore.EncodeSnapshot(s.subjects)
	if err != nil {
		return err
	}
	return s.kv.Set(routineModel.SnapshotKeySubjects, blob)
}
