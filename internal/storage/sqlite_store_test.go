package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habithero.db"))
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_InitAndLoadRoundTrip(t *testing.T) {
	store := setupSQLiteStore(t)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	if err := store.Init(now); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteStore(store.GetConfigPath())
	defer reopened.Close()
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	data, err := reopened.GetData()
	if err != nil {
		t.Fatalf("GetData failed: %v", err)
	}
	if len(data.Habits) != 4 {
		t.Errorf("seed habits = %d, want 4", len(data.Habits))
	}
	if data.UserStats.Level != 1 {
		t.Errorf("seed level = %d, want 1", data.UserStats.Level)
	}
}

func TestSQLiteStore_SaveReplacesDocument(t *testing.T) {
	store := setupSQLiteStore(t)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	if err := store.Init(now); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	data, _ := store.GetData()
	data.UserStats.TotalXP = 250
	data.UserStats.XP = 250
	data.UserStats.XPToNext = 750
	later := now.Add(time.Hour)
	if err := store.SaveData(data, later); err != nil {
		t.Fatalf("SaveData failed: %v", err)
	}

	got, err := store.GetData()
	if err != nil {
		t.Fatalf("GetData failed: %v", err)
	}
	if got.UserStats.TotalXP != 250 {
		t.Errorf("totalXP = %d, want 250", got.UserStats.TotalXP)
	}
	if !got.LastUpdated.Equal(later) {
		t.Errorf("LastUpdated = %v, want %v", got.LastUpdated, later)
	}
}

func TestSQLiteStore_LoadMissingFile(t *testing.T) {
	store := setupSQLiteStore(t)
	if err := store.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("err = %v, want ErrNotInitialized", err)
	}
}

func TestSQLiteStore_Reset(t *testing.T) {
	store := setupSQLiteStore(t)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	if err := store.Init(now); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if _, err := os.Stat(store.GetConfigPath()); !os.IsNotExist(err) {
		t.Errorf("database file still exists after reset")
	}
	if err := store.Init(now); err != nil {
		t.Errorf("Init after Reset failed: %v", err)
	}
}
