package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/habitheroapp/habithero/internal/models"
	_ "modernc.org/sqlite"
)

const schemaVersion = 1

// SQLiteStore persists the document as a single row. The document is the
// unit of persistence, so the schema is one serialized blob plus metadata
// rather than a relational decomposition.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init(now time.Time) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("%w: failed to open database: %v", ErrUnavailable, err)
	}
	s.db = db

	if err := s.bootstrap(); err != nil {
		return err
	}

	return s.SaveData(models.DefaultData(now), now)
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("%w: failed to open database: %v", ErrUnavailable, err)
	}
	s.db = db

	if err := s.bootstrap(); err != nil {
		return err
	}

	// Validate that the stored document decodes before the session starts.
	if _, err := s.GetData(); err != nil && !errors.Is(err, ErrNotInitialized) {
		return err
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) bootstrap() error {
	schema := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS app_document (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data TEXT NOT NULL,
		last_updated TEXT NOT NULL
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("%w: failed to create schema: %v", ErrUnavailable, err)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
		return fmt.Errorf("%w: failed to read schema version: %v", ErrUnavailable, err)
	}
	if count == 0 {
		if _, err := s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("%w: failed to record schema version: %v", ErrUnavailable, err)
		}
	}
	return nil
}

func (s *SQLiteStore) GetData() (models.AppData, error) {
	if s.db == nil {
		return models.AppData{}, ErrNotInitialized
	}

	var raw string
	err := s.db.QueryRow("SELECT data FROM app_document WHERE id = 1").Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AppData{}, ErrNotInitialized
	}
	if err != nil {
		return models.AppData{}, fmt.Errorf("%w: failed to read document: %v", ErrUnavailable, err)
	}

	var data models.AppData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return models.AppData{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	normalize(&data)
	return data, nil
}

func (s *SQLiteStore) SaveData(data models.AppData, now time.Time) error {
	if s.db == nil {
		return ErrNotInitialized
	}

	data.LastUpdated = now
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO app_document (id, data, last_updated) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, last_updated = excluded.last_updated`,
		string(raw), now.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("%w: failed to write document: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *SQLiteStore) Reset() error {
	if err := s.Close(); err != nil {
		return fmt.Errorf("%w: failed to close database: %v", ErrUnavailable, err)
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: failed to remove database: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
