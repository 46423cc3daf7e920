package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/habitheroapp/habithero/internal/models"
)

// JSONStore keeps the document as an indented JSON file.
type JSONStore struct {
	path string
	data *models.AppData
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init(now time.Time) error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	data := models.DefaultData(now)
	s.data = &data
	return s.save()
}

func (s *JSONStore) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("%w: failed to read storage: %v", ErrUnavailable, err)
	}

	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	normalize(&data)
	s.data = &data
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("%w: failed to write storage: %v", ErrUnavailable, err)
	}

	return nil
}

func (s *JSONStore) GetData() (models.AppData, error) {
	if s.data == nil {
		return models.AppData{}, ErrNotInitialized
	}
	return *s.data, nil
}

func (s *JSONStore) SaveData(data models.AppData, now time.Time) error {
	data.LastUpdated = now
	s.data = &data
	return s.save()
}

func (s *JSONStore) Reset() error {
	s.data = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: failed to remove storage: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// normalize repairs documents written by older versions: nil slices become
// empty and the derived XP fields are recomputed from TotalXP.
func normalize(data *models.AppData) {
	if data.Habits == nil {
		data.Habits = []models.Habit{}
	}
	if data.Moods == nil {
		data.Moods = []models.Mood{}
	}
	if data.UserStats.Badges == nil {
		data.UserStats.Badges = []string{}
	}
	if data.UserStats.Level < 1 {
		data.UserStats.Level = data.UserStats.TotalXP/1000 + 1
		data.UserStats.XP = data.UserStats.TotalXP % 1000
		data.UserStats.XPToNext = 1000 - data.UserStats.XP
	}
}
