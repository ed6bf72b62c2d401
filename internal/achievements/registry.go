// Package achievements owns the fixed achievement catalog and its unlock
// state. Unlocks are at-most-once: a set timestamp is never overwritten.
package achievements

import (
	"time"

	"github.com/carlamendes/bloom/internal/constants"
	"github.com/carlamendes/bloom/internal/logger"
	"github.com/carlamendes/bloom/internal/models"
	"github.com/carlamendes/bloom/internal/storage"
)

type Registry struct {
	store storage.Provider
}

func NewRegistry(store storage.Provider) *Registry {
	return &Registry{store: store}
}

// List returns the full catalog, lazily falling back to the default set
// when nothing has been stored yet or the record cannot be read.
func (r *Registry) List() []models.Achievement {
	var catalog []models.Achievement
	ok, err := storage.GetJSON(r.store, constants.KeyAchievements, &catalog)
	if err != nil {
		logger.Warn("Failed to read achievements, using defaults", "error", err)
		return defaultCatalog()
	}
	if !ok {
		return defaultCatalog()
	}
	return catalog
}

// Find returns the catalog entry with the given id.
func (r *Registry) Find(id string) (models.Achievement, bool) {
	for _, a := range r.List() {
		if a.ID == id {
			return a, true
		}
	}
	return models.Achievement{}, false
}

// Unlock marks the achievement as unlocked at the given time. Returns false
// as a no-op when the id is unknown or the achievement is already unlocked;
// callers rely on that to avoid duplicate celebration.
func (r *Registry) Unlock(id string, now time.Time) (bool, error) {
	catalog := r.List()

	for i, a := range catalog {
		if a.ID != id {
			continue
		}
		if a.Unlocked() {
			return false, nil
		}

		ts := now.Format(time.RFC3339)
		catalog[i].UnlockedAt = &ts
		if err := storage.SetJSON(r.store, constants.KeyAchievements, catalog); err != nil {
			return false, err
		}

		logger.Info("Achievement unlocked", "id", id, "title", a.Title)
		return true, nil
	}

	return false, nil
}
