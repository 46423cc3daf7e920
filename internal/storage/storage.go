// Package storage persists the application document. Two backends share the
// Provider interface: a whole-file JSON store and a SQLite store. The unit
// of persistence is always the entire document; every save replaces it.
package storage

import (
	"errors"
	"time"

	"github.com/habitheroapp/habithero/internal/models"
)

var (
	// ErrNotInitialized is returned by Load when no document exists yet.
	ErrNotInitialized = errors.New("storage not initialized")
	// ErrParse is returned when a persisted or imported document cannot be
	// decoded. The previously persisted document is left intact.
	ErrParse = errors.New("malformed document")
	// ErrUnavailable is returned when the underlying store cannot be read
	// or written. Callers degrade to in-memory operation for the session.
	ErrUnavailable = errors.New("storage unavailable")
)

// Provider is the persistence contract. Implementations are not safe for
// concurrent use; the app runs a single mutator at a time.
type Provider interface {
	// Init creates the store seeded with the default document. It fails if
	// the store already exists.
	Init(now time.Time) error
	// Load opens the store and reads the persisted document into memory.
	Load() error
	Close() error

	// GetData returns the current document.
	GetData() (models.AppData, error)
	// SaveData replaces the whole document, stamping LastUpdated with now.
	SaveData(data models.AppData, now time.Time) error

	// Reset removes the persisted document. The next Init starts from the
	// default document again.
	Reset() error

	GetConfigPath() string
}
