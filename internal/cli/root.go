package cli

import (
	"fmt"

	"github.com/carlamendes/bloom/internal/app"
	"github.com/carlamendes/bloom/internal/storage"
)

type Context struct {
	Store storage.Provider
	App   *app.App
}

// PrintResult prints the experience and celebration feedback for an action
// result: the XP gained, a level-up banner, and any newly unlocked
// achievement. A result that earned nothing prints nothing.
func PrintResult(res app.Result, label string) {
	if res.Awarded {
		fmt.Printf("+%d XP — %s\n", res.Award.Amount, label)
		if res.Award.LeveledUp {
			fmt.Printf("🎉 Level up! You reached level %d\n", res.Award.User.Level)
		}
	}
	if res.Unlocked != nil {
		fmt.Printf("%s Achievement unlocked: %s — %s\n",
			res.Unlocked.Icon, res.Unlocked.Title, res.Unlocked.Description)
	}
}
