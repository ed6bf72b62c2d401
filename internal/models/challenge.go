package models

type ChallengeCategory string

const (
	ChallengeNutrition ChallengeCategory = "nutrition"
	ChallengeMind      ChallengeCategory = "mind"
	ChallengeBody      ChallengeCategory = "body"
)

// ChallengeDay is one entry of the fixed 30-day sequence. Day numbers are
// stable and never renumbered; Completed toggles freely in any order.
type ChallengeDay struct {
	Day         int               `json:"day"` // 1..30
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    ChallengeCategory `json:"category"`
	Completed   bool              `json:"completed"`
}
