package models

// Achievement is one entry of the fixed catalog. UnlockedAt is nil while
// locked and, once set, is never cleared or overwritten.
type Achievement struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	UnlockedAt  *string `json:"unlocked_at"` // RFC3339 timestamp, nil = locked
}

// Unlocked reports whether the achievement has been unlocked.
func (a Achievement) Unlocked() bool {
	return a.UnlockedAt != nil
}
