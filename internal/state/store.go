package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorruptSnapshot is returned by Load when the stored data cannot be
// decoded.
var ErrCorruptSnapshot = errors.New("corrupt state snapshot")

// Store is the load/save boundary of the session.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
}

// FileStore keeps the snapshot in a JSON file under SnapshotKey.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns an empty snapshot when the file does not exist yet.
func (s *FileStore) Load(_ context.Context) (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("read state: %w", err)
	}

	var doc map[string]json.RawMessage
	if err = json.Unmarshal(data, &doc); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	raw, ok := doc[SnapshotKey]
	if !ok || string(raw) == "null" {
		return Snapshot{}, nil
	}
	var snap Snapshot
	if err = json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return snap, nil
}

// Save replaces the file atomically.
func (s *FileStore) Save(_ context.Context, snap Snapshot) error {
	data, err := json.MarshalIndent(map[string]Snapshot{SnapshotKey: snap}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write state: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}

// MemoryStore keeps the snapshot in memory. Saved snapshots are copied
// through JSON so later mutations of the session do not leak into it.
type MemoryStore struct {
	data  []byte
	Saves int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load(_ context.Context) (Snapshot, error) {
	var snap Snapshot
	if s.data == nil {
		return snap, nil
	}
	if err := json.Unmarshal(s.data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return snap, nil
}

func (s *MemoryStore) Save(_ context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	s.data = data
	s.Saves++
	return nil
}
