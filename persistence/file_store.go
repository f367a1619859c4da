package persistence

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// FileStore persists integer values as a flat TOML table
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path
// The file and its directory are created on first Set
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the score file location under the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "drone-runner", "scores.toml"), nil
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Exists checks if the backing file exists
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s *FileStore) Get(key string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return 0, false, err
	}
	v, ok := values[key]
	return int(v), ok, nil
}

func (s *FileStore) Set(key string, value int) error {
	if key == "" {
		return ErrEmptyKey
	}
	if value < 0 {
		return ErrNegativeValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = int64(value)
	return s.save(values)
}

// load reads the table; a missing file is an empty table
func (s *FileStore) load() (map[string]int64, error) {
	values := make(map[string]int64)
	if _, err := toml.DecodeFile(s.path, &values); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return values, nil
}

// save writes through a temp file and rename so a crash never leaves a torn file
func (s *FileStore) save(values map[string]int64) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".scores-*.toml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := toml.NewEncoder(tmp).Encode(values); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
