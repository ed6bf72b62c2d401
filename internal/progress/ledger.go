// Package progress owns the durable user record: accumulated experience,
// the level derived from it, and the consecutive-day streak. The award path
// here is the only code that changes level or streak.
package progress

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/carlamendes/bloom/internal/constants"
	"github.com/carlamendes/bloom/internal/logger"
	"github.com/carlamendes/bloom/internal/models"
	"github.com/carlamendes/bloom/internal/storage"
)

// ErrNoUser is returned when an award is attempted before the user record
// has been created.
var ErrNoUser = errors.New("no user record exists")

// Ledger reads and writes the user record through the storage provider.
type Ledger struct {
	store storage.Provider
}

func NewLedger(store storage.Provider) *Ledger {
	return &Ledger{store: store}
}

// Award is the result of an experience award.
type Award struct {
	User      models.User
	Amount    int
	LeveledUp bool
}

// LevelForXP maps accumulated experience to a level. Level n begins at
// 100*(n-1)^2 XP, so the thresholds are 0, 100, 400, 900, 1600, ...
func LevelForXP(xp int) int {
	if xp < 100 {
		return 1
	}
	return int(math.Sqrt(float64(xp)/100)) + 1
}

// Get returns the user record, or ErrNoUser if none has been created.
func (l *Ledger) Get() (models.User, error) {
	var user models.User
	ok, err := storage.GetJSON(l.store, constants.KeyUser, &user)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrNoUser
	}
	return user, nil
}

// Exists reports whether a user record has been created.
func (l *Ledger) Exists() bool {
	_, err := l.Get()
	return err == nil
}

// Create writes the initial user record. Fails if one already exists.
func (l *Ledger) Create(name, goal string, today time.Time) (models.User, error) {
	if l.Exists() {
		return models.User{}, fmt.Errorf("user record already exists")
	}

	user := models.User{
		Name:           name,
		Goal:           goal,
		XP:             0,
		Level:          1,
		Streak:         1,
		LastActiveDate: storage.FormatDay(today),
	}

	if err := storage.SetJSON(l.store, constants.KeyUser, user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Save replaces the user record's free-form fields. Level, streak, and XP
// are carried over from the stored record so this path cannot change them.
func (l *Ledger) Save(name, goal string) (models.User, error) {
	user, err := l.Get()
	if err != nil {
		return models.User{}, err
	}

	user.Name = name
	user.Goal = goal

	if err := storage.SetJSON(l.store, constants.KeyUser, user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// AwardXP adds experience to the user record, recomputes the level, and
// updates the streak relative to today. Returns ErrNoUser if the record has
// not been created yet.
func (l *Ledger) AwardXP(amount int, today time.Time) (Award, error) {
	user, err := l.Get()
	if err != nil {
		return Award{}, err
	}

	oldLevel := user.Level
	user.XP += amount
	user.Level = LevelForXP(user.XP)
	user.Streak = nextStreak(user, today)
	user.LastActiveDate = storage.FormatDay(today)

	if err := storage.SetJSON(l.store, constants.KeyUser, user); err != nil {
		return Award{}, err
	}

	award := Award{
		User:      user,
		Amount:    amount,
		LeveledUp: user.Level > oldLevel,
	}

	logger.Debug("Awarded experience",
		"amount", amount, "xp", user.XP, "level", user.Level, "streak", user.Streak)

	return award, nil
}

// nextStreak applies the streak continuation rule: same calendar day leaves
// the streak unchanged; a whole-day gap within the tolerance window
// increments it; anything larger resets it to 1. The gap is computed by
// calendar-date subtraction, never elapsed wall-clock time.
func nextStreak(user models.User, today time.Time) int {
	todayKey := storage.FormatDay(today)
	if user.LastActiveDate == todayKey {
		return user.Streak
	}

	last, err := storage.ParseDay(user.LastActiveDate)
	if err != nil {
		// Unreadable date: treat as a broken streak rather than failing
		// the award.
		logger.Warn("Unparseable last active date, resetting streak",
			"last_active_date", user.LastActiveDate)
		return 1
	}

	gap := wholeDays(last, today)
	if gap <= 0 {
		// Clock moved backwards: treat like same-day activity. The streak
		// is kept, and a rolled-back date can never inflate it.
		return user.Streak
	}
	if gap <= constants.StreakGapDays {
		return user.Streak + 1
	}
	return 1
}

// wholeDays returns the number of calendar dates between two moments,
// ignoring their time components.
func wholeDays(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
