package models

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Meal is one entry of the durable append-only meal log.
type Meal struct {
	ID          string   `json:"id"`
	Type        MealType `json:"type"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"` // base64
	Timestamp   string   `json:"timestamp"`       // RFC3339
}

// MoodLog is one entry of the durable mood history. The day's current mood
// label lives in DailyStats; this log keeps every entry.
type MoodLog struct {
	ID        string `json:"id"`
	Emoji     string `json:"emoji"`
	Label     string `json:"label"`
	Note      string `json:"note,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339
}

// MealSuggestion is one entry of the fixed quick-suggestion catalog shown
// alongside meal logging. Suggestions are configuration, never stored.
type MealSuggestion struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Benefit     string `json:"benefit"`
	Icon        string `json:"icon"`
}

// ProgressEntry is one entry of the durable progress log: a body metric
// snapshot, a photo artifact, or both.
type ProgressEntry struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"` // RFC3339
	WeightKg float64 `json:"weight_kg"`
	WaistCm  float64 `json:"waist_cm,omitempty"`
	HipsCm   float64 `json:"hips_cm,omitempty"`
	Photo    string  `json:"photo,omitempty"` // base64
}
