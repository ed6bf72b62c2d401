package achievements

import "github.com/carlamendes/bloom/internal/models"

// Catalog ids referenced by the event layer's unlock checks.
const (
	IDFirstStep = "1"
	IDHydrated  = "2"
	IDMindful   = "3"
	IDWeekOne   = "4"
	IDHalfway   = "5"
	IDFullMonth = "6"
)

// defaultCatalog is the fixed achievement set. Unlock timestamps start nil.
func defaultCatalog() []models.Achievement {
	return []models.Achievement{
		{ID: IDFirstStep, Title: "First Step", Description: "Completed every workout in a day", Icon: "🌱"},
		{ID: IDHydrated, Title: "Hydrated", Description: "Drank 2L of water in a day", Icon: "💧"},
		{ID: IDMindful, Title: "Mindful", Description: "Logged how you were feeling", Icon: "🧘"},
		{ID: IDWeekOne, Title: "Golden Week", Description: "Completed 7 challenge days", Icon: "⭐"},
		{ID: IDHalfway, Title: "Halfway There", Description: "Completed 15 challenge days", Icon: "🚀"},
		{ID: IDFullMonth, Title: "Full Circle", Description: "Completed all 30 challenge days", Icon: "👑"},
	}
}
