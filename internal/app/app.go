// Package app wires the derivation engines to the store: it owns the
// load/mutate/save lifecycle of the document and threads a single clock
// reading through each mutation so a whole pass sees one "now".
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/habitheroapp/habithero/internal/achievement"
	"github.com/habitheroapp/habithero/internal/analytics"
	"github.com/habitheroapp/habithero/internal/dateutil"
	"github.com/habitheroapp/habithero/internal/logger"
	"github.com/habitheroapp/habithero/internal/models"
	"github.com/habitheroapp/habithero/internal/progression"
	"github.com/habitheroapp/habithero/internal/storage"
	"github.com/habitheroapp/habithero/internal/tracker"
)

// Service coordinates mutations against the document. Not safe for
// concurrent use; the application processes one event at a time.
type Service struct {
	store storage.Provider
	clock func() time.Time

	data     models.AppData
	loaded   bool
	memOnly  bool
	unlocked map[string]bool // achievement ids already reported this lifetime
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

func New(store storage.Provider, opts ...Option) *Service {
	s := &Service{
		store:    store,
		clock:    time.Now,
		unlocked: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ToggleOutcome reports the side effects of a completion toggle.
type ToggleOutcome struct {
	Result          tracker.ToggleResult
	LeveledUp       bool
	NewAchievements []achievement.State
	Stats           models.UserStats
}

// Open loads the document, creating the default one on first run, then
// corrects streaks that went stale while the app was closed. An unavailable
// store degrades the session to in-memory operation over the default
// document instead of failing. Achievements already unlocked at load time
// become the notification baseline so a reload never re-reports them.
func (s *Service) Open() error {
	now := s.clock()

	err := s.store.Load()
	switch {
	case errors.Is(err, storage.ErrNotInitialized):
		logger.Info("no document found, creating default")
		if initErr := s.store.Init(now); initErr != nil {
			if !errors.Is(initErr, storage.ErrUnavailable) {
				return fmt.Errorf("failed to initialize storage: %w", initErr)
			}
			s.degrade(initErr)
		}
	case errors.Is(err, storage.ErrUnavailable):
		s.degrade(err)
	case err != nil:
		return err
	}

	data := models.DefaultData(now)
	if !s.memOnly {
		data, err = s.store.GetData()
		if errors.Is(err, storage.ErrUnavailable) {
			s.degrade(err)
			data = models.DefaultData(now)
		} else if err != nil {
			return err
		}
	}

	data.Habits = tracker.RecomputeStreaks(data.Habits, now)
	s.data = data
	s.loaded = true

	for _, st := range achievement.Evaluate(data.Habits, data.UserStats, now) {
		if st.Unlocked {
			s.unlocked[st.ID] = true
		}
	}

	return s.save(now)
}

func (s *Service) Close() error {
	return s.store.Close()
}

// Data returns the current in-memory document.
func (s *Service) Data() models.AppData {
	return s.data
}

// Now reads the service clock.
func (s *Service) Now() time.Time {
	return s.clock()
}

// InMemoryOnly reports whether persistence has degraded for this session.
func (s *Service) InMemoryOnly() bool {
	return s.memOnly
}

// ToggleHabit flips today's completion for the habit, awards XP on a
// completion (never on an uncomplete) and re-scans the achievement catalog,
// folding newly earned badges back into the user stats.
func (s *Service) ToggleHabit(id string) (ToggleOutcome, error) {
	now := s.clock()

	habits, result, err := tracker.ToggleCompletion(s.data.Habits, id, now)
	if err != nil {
		return ToggleOutcome{}, err
	}

	stats := s.data.UserStats
	leveledUp := false
	if result.Completed {
		stats, leveledUp = progression.AwardXP(stats, progression.XPPerCompletion)
	}

	states := achievement.Evaluate(habits, stats, now)
	var fresh []achievement.State
	for _, st := range states {
		if st.Unlocked && !s.unlocked[st.ID] {
			s.unlocked[st.ID] = true
			stats = progression.GrantBadge(stats, st.Badge)
			fresh = append(fresh, st)
		}
	}

	s.data.Habits = habits
	s.data.UserStats = stats
	if err := s.save(now); err != nil {
		return ToggleOutcome{}, err
	}

	return ToggleOutcome{
		Result:          result,
		LeveledUp:       leveledUp,
		NewAchievements: fresh,
		Stats:           stats,
	}, nil
}

// AddHabit appends a new habit and persists the document.
func (s *Service) AddHabit(draft tracker.Draft) (models.Habit, error) {
	now := s.clock()
	habits, habit := tracker.Add(s.data.Habits, draft)
	s.data.Habits = habits
	if err := s.save(now); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// UpdateHabit edits name/emoji/category/target of a habit.
func (s *Service) UpdateHabit(id string, draft tracker.Draft) error {
	now := s.clock()
	habits, err := tracker.Update(s.data.Habits, id, draft)
	if err != nil {
		return err
	}
	s.data.Habits = habits
	return s.save(now)
}

// RemoveHabit deletes a habit. Derived metrics drop its contribution on the
// next evaluation; already-reported unlocks stay reported.
func (s *Service) RemoveHabit(id string) error {
	now := s.clock()
	habits, err := tracker.Remove(s.data.Habits, id)
	if err != nil {
		return err
	}
	s.data.Habits = habits
	return s.save(now)
}

// SetMood upserts today's mood entry: a second entry for the same calendar
// day overwrites the first.
func (s *Service) SetMood(kind models.MoodKind, note string) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown mood %q", kind)
	}
	now := s.clock()
	entry := models.Mood{Date: now, Mood: kind, Note: note}

	replaced := false
	for i, m := range s.data.Moods {
		if dateutil.SameDay(m.Date, now) {
			s.data.Moods[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		s.data.Moods = append(s.data.Moods, entry)
	}
	return s.save(now)
}

// TodayMood returns today's mood entry, if any.
func (s *Service) TodayMood() (models.Mood, bool) {
	now := s.clock()
	for _, m := range s.data.Moods {
		if dateutil.SameDay(m.Date, now) {
			return m, true
		}
	}
	return models.Mood{}, false
}

// Achievements evaluates the full catalog against the current document.
func (s *Service) Achievements() []achievement.State {
	return achievement.Evaluate(s.data.Habits, s.data.UserStats, s.clock())
}

// Series builds the day-bucketed analytics series over the window.
func (s *Service) Series(windowDays int) []analytics.DayPoint {
	return analytics.BuildDailySeries(s.data.Habits, s.data.Moods, s.clock(), windowDays)
}

// Export serializes the current document.
func (s *Service) Export() ([]byte, error) {
	return storage.Export(s.data)
}

// Import replaces the whole document with a parsed export. On parse failure
// nothing changes, in memory or on disk.
func (s *Service) Import(raw []byte) error {
	data, err := storage.Import(raw)
	if err != nil {
		return err
	}
	now := s.clock()
	data.Habits = tracker.RecomputeStreaks(data.Habits, now)
	s.data = data
	return s.save(now)
}

// Reset removes the persisted document and reloads the defaults.
func (s *Service) Reset() error {
	if err := s.store.Reset(); err != nil {
		return err
	}
	s.unlocked = make(map[string]bool)
	now := s.clock()
	if err := s.store.Init(now); err != nil {
		return fmt.Errorf("failed to re-initialize storage: %w", err)
	}
	data, err := s.store.GetData()
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

// save persists the document. A storage-unavailable failure degrades the
// session to in-memory operation instead of aborting the mutation.
func (s *Service) save(now time.Time) error {
	s.data.LastUpdated = now
	err := s.store.SaveData(s.data, now)
	if errors.Is(err, storage.ErrUnavailable) {
		s.degrade(err)
		return nil
	}
	return err
}

// degrade switches the session to in-memory operation, logging on the
// first transition only.
func (s *Service) degrade(err error) {
	if !s.memOnly {
		logger.Warn("storage unavailable, continuing in memory", "error", err)
	}
	s.memOnly = true
}
