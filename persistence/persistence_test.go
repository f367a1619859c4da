package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testKey = "drone_runner_best"

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	if _, ok, err := s.Get(testKey); ok || err != nil {
		t.Errorf("Expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(testKey, 42); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, ok, err := s.Get(testKey)
	if err != nil || !ok || v != 42 {
		t.Errorf("Expected 42, got %d ok=%v err=%v", v, ok, err)
	}

	if err := s.Set(testKey, -1); !errors.Is(err, ErrNegativeValue) {
		t.Errorf("Expected ErrNegativeValue, got %v", err)
	}
	if err := s.Set("", 1); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Expected ErrEmptyKey, got %v", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.toml")
	s := NewFileStore(path)

	if s.Exists() {
		t.Fatal("Expected file to not exist before first write")
	}
	if _, ok, err := s.Get(testKey); ok || err != nil {
		t.Errorf("Expected missing file to read as absent, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(testKey, 137); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("other", 5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !s.Exists() {
		t.Fatal("Expected file to exist after write")
	}

	// A fresh store reads what the first one wrote
	reopened := NewFileStore(path)
	v, ok, err := reopened.Get(testKey)
	if err != nil || !ok || v != 137 {
		t.Errorf("Expected 137 after reopen, got %d ok=%v err=%v", v, ok, err)
	}
	v, _, _ = reopened.Get("other")
	if v != 5 {
		t.Errorf("Expected other key to survive, got %d", v)
	}

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the score file in directory, found %d entries", len(entries))
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path)
	if _, _, err := s.Get(testKey); err == nil {
		t.Error("Expected decode error for corrupt file")
	}
}

// failingStore fails every operation
type failingStore struct{}

func (failingStore) Get(string) (int, bool, error) { return 0, false, errors.New("unavailable") }
func (failingStore) Set(string, int) error         { return errors.New("unavailable") }

func TestScoreboardLoadsBest(t *testing.T) {
	store := NewMemoryStore()
	store.Set(testKey, 80)

	sb := NewScoreboard(store, testKey)
	if sb.Best() != 80 {
		t.Errorf("Expected best 80, got %d", sb.Best())
	}
}

func TestScoreboardSubmit(t *testing.T) {
	store := NewMemoryStore()
	store.Set(testKey, 50)
	sb := NewScoreboard(store, testKey)

	if sb.Submit(50) {
		t.Error("Equal score should not improve best")
	}
	if sb.Submit(12) {
		t.Error("Lower score should not improve best")
	}
	if v, _, _ := store.Get(testKey); v != 50 {
		t.Errorf("Expected stored best to stay 50, got %d", v)
	}

	if !sb.Submit(51) {
		t.Error("Higher score should improve best")
	}
	if v, _, _ := store.Get(testKey); v != 51 {
		t.Errorf("Expected stored best 51, got %d", v)
	}
	if sb.Best() != 51 {
		t.Errorf("Expected in-memory best 51, got %d", sb.Best())
	}
}

func TestScoreboardDegradesOnStoreFailure(t *testing.T) {
	sb := NewScoreboard(failingStore{}, testKey)
	if sb.Best() != 0 {
		t.Errorf("Expected best 0 when store is unavailable, got %d", sb.Best())
	}

	if sb.Submit(30) {
		t.Error("Expected no improvement when the store rejects the write")
	}
	if sb.Best() != 0 {
		t.Errorf("Expected best to stay 0, got %d", sb.Best())
	}
}

// readOnlyStore serves reads from memory and rejects every write
type readOnlyStore struct {
	*MemoryStore
}

func (readOnlyStore) Set(string, int) error { return errors.New("read-only") }

func TestScoreboardKeepsBestOnWriteFailure(t *testing.T) {
	mem := NewMemoryStore()
	mem.Set(testKey, 20)
	sb := NewScoreboard(readOnlyStore{mem}, testKey)

	if sb.Best() != 20 {
		t.Fatalf("Expected best 20, got %d", sb.Best())
	}
	if sb.Submit(35) {
		t.Error("Expected failed write to report no improvement")
	}
	if sb.Best() != 20 {
		t.Errorf("Expected best to stay 20, got %d", sb.Best())
	}
	if v, _, _ := mem.Get(testKey); v != 20 {
		t.Errorf("Expected stored best 20, got %d", v)
	}
}

func TestScoreboardNilStore(t *testing.T) {
	sb := NewScoreboard(nil, testKey)
	if sb.Best() != 0 {
		t.Errorf("Expected best 0, got %d", sb.Best())
	}
	sb.Submit(7)
	if sb.Best() != 7 {
		t.Errorf("Expected best 7, got %d", sb.Best())
	}
}

func TestFinalize(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0, 0},
		{-3, 0},
		{9.99, 9},
		{10, 10},
		{123.456, 123},
	}
	for _, tt := range tests {
		if got := Finalize(tt.score); got != tt.want {
			t.Errorf("Finalize(%f): expected %d, got %d", tt.score, tt.want, got)
		}
	}
}

func TestOpen(t *testing.T) {
	if _, ok := Open("").(*MemoryStore); !ok {
		t.Error("Expected memory store for empty path")
	}
	path := filepath.Join(t.TempDir(), "scores.toml")
	fs, ok := Open(path).(*FileStore)
	if !ok || fs.Path() != path {
		t.Errorf("Expected file store at %s", path)
	}
}
