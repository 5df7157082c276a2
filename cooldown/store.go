package cooldown

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// FileStore keeps cooldown state in a JSON file, typically under the
// user's config directory. A missing file is an empty state.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (map[int64]time.Time, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[int64]time.Time{}, nil
		}
		return nil, err
	}

	// json object keys are strings, so ids go through strconv
	raw := map[string]time.Time{}
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	failed := make(map[int64]time.Time, len(raw))
	for k, v := range raw {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		failed[id] = v
	}
	return failed, nil
}

func (s *FileStore) Save(failed map[int64]time.Time) error {
	raw := make(map[string]time.Time, len(failed))
	for id, at := range failed {
		raw[strconv.FormatInt(id, 10)] = at
	}

	content, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, content, 0o644)
}

// MemStore is an in-memory Store for tests and one-shot clients.
type MemStore struct {
	failed map[int64]time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{failed: map[int64]time.Time{}}
}

func (s *MemStore) Load() (map[int64]time.Time, error) {
	copied := make(map[int64]time.Time, len(s.failed))
	for id, at := range s.failed {
		copied[id] = at
	}
	return copied, nil
}

func (s *MemStore) Save(failed map[int64]time.Time) error {
	copied := make(map[int64]time.Time, len(failed))
	for id, at := range failed {
		copied[id] = at
	}
	s.failed = copied
	return nil
}
