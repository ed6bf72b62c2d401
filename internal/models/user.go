package models

// User is the single durable user record for this installation. Level and
// Streak are only ever mutated by the progress ledger's award path.
type User struct {
	Name           string `json:"name"`
	Goal           string `json:"goal"`
	XP             int    `json:"xp"`
	Level          int    `json:"level"`
	Streak         int    `json:"streak"`
	LastActiveDate string `json:"last_active_date"` // YYYY-MM-DD format
}
