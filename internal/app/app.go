// Package app is the event layer: it orchestrates the progress ledger,
// daily stats, achievement registry, challenge tracker, and journal in
// response to user actions. Components never call each other; all
// cross-component ordering lives here.
package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/carlamendes/bloom/internal/achievements"
	"github.com/carlamendes/bloom/internal/challenge"
	"github.com/carlamendes/bloom/internal/constants"
	"github.com/carlamendes/bloom/internal/journal"
	"github.com/carlamendes/bloom/internal/models"
	"github.com/carlamendes/bloom/internal/progress"
	"github.com/carlamendes/bloom/internal/stats"
	"github.com/carlamendes/bloom/internal/storage"
)

type App struct {
	Ledger       *progress.Ledger
	Stats        *stats.Store
	Achievements *achievements.Registry
	Challenge    *challenge.Tracker
	Journal      *journal.Journal
}

func New(store storage.Provider) *App {
	return &App{
		Ledger:       progress.NewLedger(store),
		Stats:        stats.NewStore(store),
		Achievements: achievements.NewRegistry(store),
		Challenge:    challenge.NewTracker(store),
		Journal:      journal.New(store),
	}
}

// Result describes what an action earned: the experience award (when one
// was made) and any achievement that was unlocked just now. A nil Unlocked
// means no celebration is due; repeat unlocks never surface here.
type Result struct {
	Awarded  bool
	Award    progress.Award
	Unlocked *models.Achievement
}

// award runs the ledger and records the outcome on the result.
func (a *App) award(res *Result, amount int, now time.Time) error {
	award, err := a.Ledger.AwardXP(amount, now)
	if err != nil {
		return err
	}
	res.Awarded = true
	res.Award = award
	return nil
}

// unlock attempts an achievement unlock and surfaces it on the result only
// when it happened just now.
func (a *App) unlock(res *Result, id string, now time.Time) error {
	unlocked, err := a.Achievements.Unlock(id, now)
	if err != nil {
		return err
	}
	if unlocked {
		if ach, ok := a.Achievements.Find(id); ok {
			res.Unlocked = &ach
		}
	}
	return nil
}

// AddWater adds milliliters to today's hydration counter, awards
// experience, and unlocks the hydration achievement when the daily goal is
// reached.
func (a *App) AddWater(ml int, now time.Time) (Result, models.DailyStats, error) {
	var res Result

	daily := a.Stats.Stats(now)
	daily.WaterML += ml
	if err := a.Stats.SaveStats(daily, now); err != nil {
		return res, daily, err
	}

	if err := a.award(&res, constants.XPWater, now); err != nil {
		return res, daily, err
	}

	if daily.WaterML >= constants.WaterGoalML {
		if err := a.unlock(&res, achievements.IDHydrated, now); err != nil {
			return res, daily, err
		}
	}

	return res, daily, nil
}

// ToggleWorkout flips a workout's completed flag and mirrors the completed
// count into today's stats. Experience is awarded only on the incomplete to
// complete transition; unchecking never takes experience back.
func (a *App) ToggleWorkout(id string, now time.Time) (Result, []models.Workout, error) {
	var res Result

	workouts := a.Stats.Workouts(now)
	completing := false
	found := false
	for i := range workouts {
		if workouts[i].ID == id {
			completing = !workouts[i].Completed
			workouts[i].Completed = !workouts[i].Completed
			found = true
			break
		}
	}
	if !found {
		return res, workouts, nil
	}

	if err := a.Stats.SaveWorkouts(workouts, now); err != nil {
		return res, workouts, err
	}

	daily := a.Stats.Stats(now)
	daily.WorkoutsCompleted = stats.CompletedCount(workouts)
	if err := a.Stats.SaveStats(daily, now); err != nil {
		return res, workouts, err
	}

	if completing {
		if err := a.award(&res, constants.XPWorkout, now); err != nil {
			return res, workouts, err
		}
	}

	if daily.WorkoutsCompleted == len(workouts) {
		if err := a.unlock(&res, achievements.IDFirstStep, now); err != nil {
			return res, workouts, err
		}
	}

	return res, workouts, nil
}

// AddWorkout appends a user-defined workout to today's list.
func (a *App) AddWorkout(title string, category models.WorkoutCategory, durationMin int, now time.Time) (models.Workout, error) {
	workout := models.Workout{
		ID:          uuid.New().String(),
		Title:       title,
		Category:    category,
		DurationMin: durationMin,
		Tip:         "Keep good posture and respect your limits.",
	}

	if err := a.Stats.AddWorkout(workout, now); err != nil {
		return models.Workout{}, err
	}

	return workout, nil
}

// ToggleChallenge flips a challenge day. Completing a day awards experience
// and checks the 7, 15, and 30 day milestones against the completed count
// at that instant; a milestone fires only when the count lands exactly on
// it, whichever days make it up.
func (a *App) ToggleChallenge(day int, now time.Time) (Result, []models.ChallengeDay, error) {
	var res Result

	completing := false
	for _, d := range a.Challenge.List() {
		if d.Day == day {
			completing = !d.Completed
			break
		}
	}

	sequence, err := a.Challenge.Toggle(day)
	if err != nil {
		return res, nil, err
	}

	if !completing {
		return res, sequence, nil
	}

	if err := a.award(&res, constants.XPChallenge, now); err != nil {
		return res, sequence, err
	}

	milestones := map[int]string{
		7:  achievements.IDWeekOne,
		15: achievements.IDHalfway,
		30: achievements.IDFullMonth,
	}
	if id, ok := milestones[challenge.CompletedCount(sequence)]; ok {
		if err := a.unlock(&res, id, now); err != nil {
			return res, sequence, err
		}
	}

	return res, sequence, nil
}

// LogMood appends a mood entry, records the label as today's mood, awards
// experience, and unlocks the mindful achievement on first use.
func (a *App) LogMood(emoji, label, note string, now time.Time) (Result, error) {
	var res Result

	if err := a.Journal.AddMood(models.MoodLog{
		ID:        uuid.New().String(),
		Emoji:     emoji,
		Label:     label,
		Note:      note,
		Timestamp: now.Format(time.RFC3339),
	}); err != nil {
		return res, err
	}

	daily := a.Stats.Stats(now)
	daily.Mood = label
	if err := a.Stats.SaveStats(daily, now); err != nil {
		return res, err
	}

	if err := a.award(&res, constants.XPMood, now); err != nil {
		return res, err
	}

	if err := a.unlock(&res, achievements.IDMindful, now); err != nil {
		return res, err
	}

	return res, nil
}

// AddMeal appends a meal to the journal, bumps today's meal counter, and
// awards experience.
func (a *App) AddMeal(mealType models.MealType, description string, now time.Time) (Result, error) {
	var res Result

	if err := a.Journal.AddMeal(models.Meal{
		ID:          uuid.New().String(),
		Type:        mealType,
		Description: description,
		Timestamp:   now.Format(time.RFC3339),
	}); err != nil {
		return res, err
	}

	daily := a.Stats.Stats(now)
	daily.MealsLogged++
	if err := a.Stats.SaveStats(daily, now); err != nil {
		return res, err
	}

	if err := a.award(&res, constants.XPMeal, now); err != nil {
		return res, err
	}

	return res, nil
}

// QuietMinute records a self-care ritual moment and awards experience.
func (a *App) QuietMinute(now time.Time) (Result, error) {
	var res Result

	daily := a.Stats.Stats(now)
	ts := now.Format(time.RFC3339)
	daily.LastRitual = &ts
	if err := a.Stats.SaveStats(daily, now); err != nil {
		return res, err
	}

	if err := a.award(&res, constants.XPRitual, now); err != nil {
		return res, err
	}

	return res, nil
}

// SavePhoto stores an enhanced progress photo in the journal and awards
// experience once. The photo arrives as an opaque artifact; how it was
// produced is not this layer's concern.
func (a *App) SavePhoto(photoB64 string, now time.Time) (Result, error) {
	var res Result

	if err := a.Journal.AddProgress(models.ProgressEntry{
		ID:    uuid.New().String(),
		Date:  now.Format(time.RFC3339),
		Photo: photoB64,
	}); err != nil {
		return res, err
	}

	if err := a.award(&res, constants.XPPhoto, now); err != nil {
		return res, err
	}

	return res, nil
}

// AddMeasurement appends a body measurement to the progress log. No
// experience is tied to plain measurements.
func (a *App) AddMeasurement(weightKg, waistCm, hipsCm float64, now time.Time) (models.ProgressEntry, error) {
	entry := models.ProgressEntry{
		ID:       uuid.New().String(),
		Date:     now.Format(time.RFC3339),
		WeightKg: weightKg,
		WaistCm:  waistCm,
		HipsCm:   hipsCm,
	}

	if err := a.Journal.AddProgress(entry); err != nil {
		return models.ProgressEntry{}, err
	}

	return entry, nil
}
