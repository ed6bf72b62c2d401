// Package journal owns the durable append-only logs: meals, mood history,
// and progress entries. These never reset at day boundaries.
package journal

import (
	"github.com/carlamendes/bloom/internal/constants"
	"github.com/carlamendes/bloom/internal/logger"
	"github.com/carlamendes/bloom/internal/models"
	"github.com/carlamendes/bloom/internal/storage"
)

type Journal struct {
	store storage.Provider
}

func New(store storage.Provider) *Journal {
	return &Journal{store: store}
}

// Meals returns the full meal log, oldest first.
func (j *Journal) Meals() []models.Meal {
	var meals []models.Meal
	readLog(j.store, constants.KeyMeals, &meals)
	return meals
}

// AddMeal appends an entry to the meal log.
func (j *Journal) AddMeal(meal models.Meal) error {
	meals := append(j.Meals(), meal)
	return storage.SetJSON(j.store, constants.KeyMeals, meals)
}

// Moods returns the full mood history, oldest first.
func (j *Journal) Moods() []models.MoodLog {
	var moods []models.MoodLog
	readLog(j.store, constants.KeyMoods, &moods)
	return moods
}

// AddMood appends an entry to the mood history.
func (j *Journal) AddMood(mood models.MoodLog) error {
	moods := append(j.Moods(), mood)
	return storage.SetJSON(j.store, constants.KeyMoods, moods)
}

// Progress returns the full progress log, oldest first.
func (j *Journal) Progress() []models.ProgressEntry {
	var entries []models.ProgressEntry
	readLog(j.store, constants.KeyProgress, &entries)
	return entries
}

// AddProgress appends an entry to the progress log.
func (j *Journal) AddProgress(entry models.ProgressEntry) error {
	entries := append(j.Progress(), entry)
	return storage.SetJSON(j.store, constants.KeyProgress, entries)
}

// readLog decodes an append-only log record, treating missing or unreadable
// records as empty.
func readLog(store storage.Provider, key string, v any) {
	if _, err := storage.GetJSON(store, key, v); err != nil {
		logger.Warn("Failed to read journal log, treating as empty", "key", key, "error", err)
	}
}
