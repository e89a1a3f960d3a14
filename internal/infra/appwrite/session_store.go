package appwrite

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// SessionStore keeps the secret of the active session between calls.
type SessionStore interface {
	// Load returns the stored secret, or "" when signed out.
	Load() (string, error)
	Save(secret string) error
	Clear() error
}

// MemorySessionStore holds the secret for the life of the process.
type MemorySessionStore struct {
	mu     sync.RWMutex
	secret string
}

// NewMemorySessionStore creates an empty store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.secret, nil
}

func (s *MemorySessionStore) Save(secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secret = secret

	return nil
}

func (s *MemorySessionStore) Clear() error {
	return s.Save("")
}

// FileSessionStore persists the secret in a file readable only by the owner,
// so that separate CLI invocations share one session.
type FileSessionStore struct {
	mu   sync.Mutex
	path string
}

// NewFileSessionStore creates a store backed by path. The file is created on first Save.
func NewFileSessionStore(path string) (*FileSessionStore, error) {
	if path == "" {
		return nil, errors.New("session file path is required")
	}

	return &FileSessionStore{path: path}, nil
}

func (s *FileSessionStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read session file %s", s.path)
	}

	return strings.TrimSpace(string(raw)), nil
}

func (s *FileSessionStore) Save(secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrapf(err, "failed to create session directory for %s", s.path)
	}
	if err := os.WriteFile(s.path, []byte(secret), 0o600); err != nil {
		return errors.Wrapf(err, "failed to write session file %s", s.path)
	}

	return nil
}

func (s *FileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "failed to remove session file %s", s.path)
	}

	return nil
}
