package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/carlamendes/bloom/internal/challenge"
	"github.com/carlamendes/bloom/internal/constants"
	"github.com/carlamendes/bloom/internal/progress"
	"github.com/carlamendes/bloom/internal/stats"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	user, err := ctx.App.Ledger.Get()
	if err != nil {
		if errors.Is(err, progress.ErrNoUser) {
			return fmt.Errorf("no profile yet, run 'bloom init' first")
		}
		return err
	}

	now := time.Now()
	daily := ctx.App.Stats.Stats(now)
	workouts := ctx.App.Stats.Workouts(now)
	completed := challenge.CompletedCount(ctx.App.Challenge.List())

	fmt.Printf("%s — level %d (%d XP), %d day streak\n", user.Name, user.Level, user.XP, user.Streak)
	if user.Goal != "" {
		fmt.Printf("Goal: %s\n", user.Goal)
	}
	fmt.Println()

	fmt.Printf("Today (%s):\n", now.Format(constants.DateFormat))
	fmt.Printf("  Water:    %d ml\n", daily.WaterML)
	mood := daily.Mood
	if mood == "" {
		mood = "not logged yet"
	}
	fmt.Printf("  Mood:     %s\n", mood)
	fmt.Printf("  Workouts: %d/%d completed\n", stats.CompletedCount(workouts), len(workouts))
	fmt.Printf("  Meals:    %d logged\n", daily.MealsLogged)
	fmt.Println()

	fmt.Printf("Challenge: %d/%d days completed\n", completed, constants.ChallengeDays)
	return nil
}
