// Package challenge owns the fixed 30-day challenge sequence. Days toggle
// independently in any order; toggling a day off never revokes experience
// that was awarded when it was completed.
package challenge

import (
	"errors"

	"github.com/carlamendes/bloom/internal/constants"
	"github.com/carlamendes/bloom/internal/logger"
	"github.com/carlamendes/bloom/internal/models"
	"github.com/carlamendes/bloom/internal/storage"
)

// ErrUnknownDay is returned when toggling a day outside the fixed sequence.
var ErrUnknownDay = errors.New("unknown challenge day")

type Tracker struct {
	store storage.Provider
}

func NewTracker(store storage.Provider) *Tracker {
	return &Tracker{store: store}
}

// List returns the full sequence, lazily falling back to the default
// catalog when nothing has been stored yet or the record cannot be read.
func (t *Tracker) List() []models.ChallengeDay {
	var sequence []models.ChallengeDay
	ok, err := storage.GetJSON(t.store, constants.KeyChallenge, &sequence)
	if err != nil {
		logger.Warn("Failed to read challenge, using defaults", "error", err)
		return defaultSequence()
	}
	if !ok {
		return defaultSequence()
	}
	return sequence
}

// Toggle flips the completed flag of the entry whose day number matches and
// returns the full updated sequence.
func (t *Tracker) Toggle(day int) ([]models.ChallengeDay, error) {
	sequence := t.List()

	found := false
	for i := range sequence {
		if sequence[i].Day == day {
			sequence[i].Completed = !sequence[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil, ErrUnknownDay
	}

	if err := storage.SetJSON(t.store, constants.KeyChallenge, sequence); err != nil {
		return nil, err
	}

	return sequence, nil
}

// CompletedCount returns how many days of the sequence are completed.
func CompletedCount(sequence []models.ChallengeDay) int {
	count := 0
	for _, d := range sequence {
		if d.Completed {
			count++
		}
	}
	return count
}
