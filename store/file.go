package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"bakeryctl/domain"
)

// FileStore is a JSON file-backed implementation of domain.StateStore.
// Saves go through a temp file plus rename so a crash never leaves a
// half-written state file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// compile-time assertion
var _ domain.StateStore = (*FileStore)(nil)

// NewFileStore constructs a FileStore at the given path. The file is created
// lazily on the first save; a missing file loads as empty state.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (domain.State, error) {
	if err := ctx.Err(); err != nil {
		return domain.State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// no state yet; that's fine
			return domain.State{}, nil
		}
		return domain.State{}, err
	}
	if len(b) == 0 {
		return domain.State{}, nil
	}
	var st domain.State
	if err := json.Unmarshal(b, &st); err != nil {
		return domain.State{}, err
	}
	return st, nil
}

func (s *FileStore) Save(ctx context.Context, st domain.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(st)
}

func (s *FileStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(domain.State{})
}

func (s *FileStore) write(st domain.State) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	// 0600: the file holds session cookies
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
