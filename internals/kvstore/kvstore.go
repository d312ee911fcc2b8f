// Persistence adapter for the routine stores: named JSON snapshots, one key
// per store, backed by either local files or a Postgres snapshot table.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const SnapshotVersion = 1

var ErrBadSnapshot = errors.New("kvstore: malformed snapshot")

type Store interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
	// Quarantine moves a malformed snapshot aside so the next load starts
	// fresh instead of trusting it.
	Quarantine(key string) error
}

// envelope wraps every persisted snapshot with a schema version.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// EncodeSnapshot wraps v in the versioned envelope.
func EncodeSnapshot(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Version: SnapshotVersion, Data: data})
}

// DecodeSnapshot validates the envelope and unmarshals its payload into out.
func DecodeSnapshot(b []byte, out interface{}) error {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if env.Version != SnapshotVersion || env.Data == nil {
		return fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, env.Version)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	return nil
}

// =======================
// FILE STORE (local mode)
// =======================

// FileStore keeps one JSON file per key. Writes go through a temp file and
// rename, so a crash never leaves a half-written snapshot behind. There is
// no transaction across keys: each store persists independently.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvstore: create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *FileStore) Quarantine(key string) error {
	err := os.Rename(s.path(key), s.path(key)+".bad")
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
