package stats

import "github.com/carlamendes/bloom/internal/models"

// defaultWorkouts is the starter list every new day begins from. User-added
// entries live alongside these for that day only.
func defaultWorkouts() []models.Workout {
	return []models.Workout{
		{
			ID:          "1",
			Title:       "Diaphragmatic Breathing",
			Category:    models.WorkoutBreathing,
			DurationMin: 5,
			Tip:         "Lie on your back with one hand on your chest and one on your belly. Breathe in so only the belly hand rises, then exhale slowly through your mouth.",
		},
		{
			ID:          "2",
			Title:       "Morning Stretch",
			Category:    models.WorkoutStretching,
			DurationMin: 10,
			Tip:         "Keep the movements gentle. Reach your arms overhead, roll your shoulders, and stretch your neck to each side. Never push into pain.",
		},
		{
			ID:          "3",
			Title:       "Light Walk",
			Category:    models.WorkoutWalking,
			DurationMin: 20,
			Tip:         "Keep your spine tall and your core lightly engaged to protect your lower back. Wear comfortable shoes and hold a steady pace.",
		},
		{
			ID:          "4",
			Title:       "Hip Mobility",
			Category:    models.WorkoutMobility,
			DurationMin: 8,
			Tip:         "Lying down with knees bent, let both knees fall gently to one side and then the other, keeping your shoulders on the floor.",
		},
	}
}
