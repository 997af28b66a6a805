package tokenstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the token pair as a JSON file so sessions survive
// process restarts, the way a browser keeps tokens in durable storage
// across page reloads. The file is owner-readable only.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// DefaultPath returns the conventional credentials location under the
// user's configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "resumeforge", "credentials.json"), nil
}

// NewFileStore creates a file-backed store at the given path. The parent
// directory is created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes the pair atomically: a temp file in the same directory is
// renamed over the previous one, so readers never observe a partial pair.
func (s *FileStore) Save(pair TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}

	data, err := json.Marshal(pair)
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".credentials-*")
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Join(ErrSaveFailed, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Join(ErrSaveFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrSaveFailed, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}

// Load reads the stored pair. A missing or unreadable file is reported as
// no pair present rather than an error: an unavailable store degrades to an
// unauthenticated session.
func (s *FileStore) Load() (TokenPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return TokenPair{}, false
	}

	var pair TokenPair
	if err := json.Unmarshal(data, &pair); err != nil {
		return TokenPair{}, false
	}
	if pair.IsZero() {
		return TokenPair{}, false
	}
	return pair, true
}

// Clear removes the credentials file.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Join(ErrClearFailed, err)
	}
	return nil
}
