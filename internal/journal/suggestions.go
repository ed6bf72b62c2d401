package journal

import "github.com/carlamendes/bloom/internal/models"

// Suggestions returns the fixed quick-meal catalog. Picking one is a
// shortcut for logging; nothing about the catalog is persisted.
func Suggestions() []models.MealSuggestion {
	return []models.MealSuggestion{
		{
			ID:          "1",
			Title:       "Yogurt + Fruit",
			Description: "Plain yogurt with strawberries and homemade granola.",
			Benefit:     "Calcium & Fiber",
			Icon:        "🍓",
		},
		{
			ID:          "2",
			Title:       "Quick Omelette",
			Description: "Two beaten eggs with spinach and tomato.",
			Benefit:     "Protein & Iron",
			Icon:        "🍳",
		},
		{
			ID:          "3",
			Title:       "Nut Mix",
			Description: "A handful of walnuts, cashews and almonds.",
			Benefit:     "Good Fats",
			Icon:        "🥜",
		},
		{
			ID:          "4",
			Title:       "Avocado Toast",
			Description: "Whole-grain bread with half a mashed avocado.",
			Benefit:     "Energy",
			Icon:        "🥑",
		},
		{
			ID:          "5",
			Title:       "Green Juice",
			Description: "Kale, lemon, apple and ginger.",
			Benefit:     "Detox",
			Icon:        "🥬",
		},
		{
			ID:          "6",
			Title:       "Banana with Oats",
			Description: "Mashed banana with oats and a drizzle of honey.",
			Benefit:     "Pre-workout",
			Icon:        "🍌",
		},
	}
}
