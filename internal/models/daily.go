package models

// DailyStats holds one calendar day's counters. A new date starts from the
// zero value; days are never merged.
type DailyStats struct {
	WaterML           int     `json:"water_ml"`
	Mood              string  `json:"mood"`
	WorkoutsCompleted int     `json:"workouts_completed"`
	MealsLogged       int     `json:"meals_logged"`
	LastRitual        *string `json:"last_ritual,omitempty"` // RFC3339 timestamp
}

type WorkoutCategory string

const (
	WorkoutBreathing     WorkoutCategory = "breathing"
	WorkoutStretching    WorkoutCategory = "stretching"
	WorkoutWalking       WorkoutCategory = "walking"
	WorkoutMobility      WorkoutCategory = "mobility"
	WorkoutStrengthening WorkoutCategory = "strengthening"
)

// Workout is one entry in a day's workout list. Each day's list starts from
// the default catalog; user-added entries belong to that day only.
type Workout struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Category    WorkoutCategory `json:"category"`
	DurationMin int             `json:"duration_min"`
	Completed   bool            `json:"completed"`
	Tip         string          `json:"tip,omitempty"`
}
