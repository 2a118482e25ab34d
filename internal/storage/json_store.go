package storage

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/prefs"
)

type jsonDocument struct {
	Version     int               `json:"version"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Preferences map[string]string `json:"preferences"`
}

// JSONStore keeps preferences in a single human-editable JSON file. It is
// selected when the config path ends in .json.
type JSONStore struct {
	path string

	mu  sync.Mutex
	doc *jsonDocument
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Keep an existing file
	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	doc := &jsonDocument{
		Version:     1,
		Preferences: make(map[string]string),
	}
	if err := s.save(doc); err != nil {
		return err
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &jsonDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Preferences == nil {
		doc.Preferences = make(map[string]string)
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes doc atomically via a temp file and rename. Callers swap doc in
// only after it succeeds, so memory never runs ahead of the file.
func (s *JSONStore) save(doc *jsonDocument) error {
	doc.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to save storage: %w", err)
	}
	return nil
}

// edit applies fn to a copy of the preferences and commits the copy once it
// is on disk.
func (s *JSONStore) edit(fn func(values map[string]string)) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	next := &jsonDocument{
		Version:     s.doc.Version,
		Preferences: maps.Clone(s.doc.Preferences),
	}
	fn(next.Preferences)
	if err := s.save(next); err != nil {
		return err
	}
	s.doc = next
	return nil
}

func (s *JSONStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return "", fmt.Errorf("storage not loaded")
	}
	v, ok := s.doc.Preferences[key]
	if !ok {
		return "", prefs.ErrNotFound
	}
	return v, nil
}

func (s *JSONStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.edit(func(values map[string]string) {
		values[key] = value
	})
}

func (s *JSONStore) Clear(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.edit(func(values map[string]string) {
		for _, key := range keys {
			delete(values, key)
		}
	})
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
