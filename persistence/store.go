package persistence

import "errors"

// Store is a durable key-value store holding integer values
type Store interface {
	// Get returns the value for key; ok is false when the key is absent
	Get(key string) (value int, ok bool, err error)
	// Set stores value under key
	Set(key string, value int) error
}

// Sentinel errors
var (
	ErrNegativeValue = errors.New("negative value")
	ErrEmptyKey      = errors.New("empty key")
)

// Open returns a file store at path, or a memory store when path is empty
func Open(path string) Store {
	if path == "" {
		return NewMemoryStore()
	}
	return NewFileStore(path)
}
