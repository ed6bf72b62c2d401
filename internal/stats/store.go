// Package stats owns the per-day counters and the per-day workout list.
// Records are partitioned by calendar date, so a new day starts clean
// without any explicit reset.
package stats

import (
	"time"

	"github.com/carlamendes/bloom/internal/constants"
	"github.com/carlamendes/bloom/internal/logger"
	"github.com/carlamendes/bloom/internal/models"
	"github.com/carlamendes/bloom/internal/storage"
)

type Store struct {
	store storage.Provider
}

func NewStore(store storage.Provider) *Store {
	return &Store{store: store}
}

// Stats returns the given day's counters, zero-valued when nothing has been
// recorded yet. Unreadable records also fall back to the zero value: daily
// counters favor availability over strictness.
func (s *Store) Stats(day time.Time) models.DailyStats {
	var stats models.DailyStats
	ok, err := storage.GetJSON(s.store, storage.DayKey(constants.KeyStats, day), &stats)
	if err != nil {
		logger.Warn("Failed to read daily stats, using defaults", "error", err)
		return models.DailyStats{}
	}
	if !ok {
		return models.DailyStats{}
	}
	return stats
}

// SaveStats replaces the given day's counters.
func (s *Store) SaveStats(stats models.DailyStats, day time.Time) error {
	return storage.SetJSON(s.store, storage.DayKey(constants.KeyStats, day), stats)
}

// Workouts returns the given day's workout list, starting from the default
// catalog when the day has no stored list yet.
func (s *Store) Workouts(day time.Time) []models.Workout {
	var workouts []models.Workout
	ok, err := storage.GetJSON(s.store, storage.DayKey(constants.KeyWorkouts, day), &workouts)
	if err != nil {
		logger.Warn("Failed to read workouts, using defaults", "error", err)
		return defaultWorkouts()
	}
	if !ok {
		return defaultWorkouts()
	}
	return workouts
}

// SaveWorkouts replaces the given day's workout list.
func (s *Store) SaveWorkouts(workouts []models.Workout, day time.Time) error {
	return storage.SetJSON(s.store, storage.DayKey(constants.KeyWorkouts, day), workouts)
}

// AddWorkout appends a user-defined entry to the given day's list.
func (s *Store) AddWorkout(workout models.Workout, day time.Time) error {
	workouts := s.Workouts(day)
	return s.SaveWorkouts(append(workouts, workout), day)
}

// CompletedCount returns how many entries in the list are completed.
func CompletedCount(workouts []models.Workout) int {
	count := 0
	for _, w := range workouts {
		if w.Completed {
			count++
		}
	}
	return count
}
