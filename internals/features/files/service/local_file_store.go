package service

import (
	"errors"
	"log"
	"sync"
	"time"

	"bcaroutine_backend/internals/kvstore"

	fileModel "bcaroutine_backend/internals/features/files/model"
	routineModel "bcaroutine_backend/internals/features/routine/model"
)

var ErrFileNotFound = errors.New("file not found")

// LocalFileStore keeps local-mode file records: metadata only, mirrored to
// the subject-files snapshot key. The uploaded bytes are deliberately not
// stored.
type LocalFileStore struct {
	mu    sync.Mutex
	files []fileModel.LocalFileMeta
	kv    kvstore.Store
}

func NewLocalFileStore(kv kvstore.Store) (*LocalFileStore, error) {
	s := &LocalFileStore{kv: kv}

	blob, found, err := kv.Get(routineModel.SnapshotKeySubjectFiles)
	if err != nil {
		return nil, err
	}
	if found {
		if err := kvstore.DecodeSnapshot(blob, &s.files); err != nil {
			if !errors.Is(err, kvstore.ErrBadSnapshot) {
				return nil, err
			}
			log.Printf("[WARN] subject-files snapshot malformed, quarantining: %v", err)
			if qerr := kv.Quarantine(routineModel.SnapshotKeySubjectFiles); qerr != nil {
				log.Printf("[ERROR] quarantine subject-files snapshot: %v", qerr)
			}
			s.files = nil
		}
	}
	return s, nil
}

func (s *LocalFileStore) List() []fileModel.LocalFileMeta {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]fileModel.LocalFileMeta, len(s.files))
	copy(out, s.files)
	return out
}

func (s *LocalFileStore) Add(name, fileName, subjectName, mimeType string, size int64) (fileModel.LocalFileMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := fileModel.LocalFileMeta{
		ID:               routineModel.NewTimestampID(),
		Name:             name,
		FileName:         fileName,
		SubjectName:      subjectName,
		Size:             size,
		Type:             mimeType,
		UploadDate:       time.Now().Format(time.RFC3339),
		ContentPersisted: false,
	}
	s.files = append(s.files, meta)
	return meta, s.persistLocked()
}

func (s *LocalFileStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.files {
		if s.files[i].ID == id {
			s.files = append(s.files[:i], s.files[i+1:]...)
			return s.persistLocked()
		}
	}
	return ErrFileNotFound
}

func (s *LocalFileStore) persistLocked() error {
	blob, err := kvstore.EncodeSnapshot(s.files)
	if err != nil {
		return err
	}
	return s.kv.Set(routineModel.SnapshotKeySubjectFiles, blob)
}
