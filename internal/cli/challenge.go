package cli

import (
	"fmt"
	"time"

	"github.com/carlamendes/bloom/internal/challenge"
	"github.com/carlamendes/bloom/internal/constants"
	"github.com/carlamendes/bloom/internal/models"
)

type ChallengeCmd struct {
	List   ChallengeListCmd   `cmd:"" help:"Show the 30-day challenge." default:"1"`
	Toggle ChallengeToggleCmd `cmd:"" help:"Mark a challenge day done or not done."`
}

type ChallengeListCmd struct{}

func (c *ChallengeListCmd) Run(ctx *Context) error {
	printChallenge(ctx.App.Challenge.List())
	return nil
}

type ChallengeToggleCmd struct {
	Day int `arg:"" help:"Day number (1-30)."`
}

func (c *ChallengeToggleCmd) Run(ctx *Context) error {
	res, sequence, err := ctx.App.ToggleChallenge(c.Day, time.Now())
	if err != nil {
		return err
	}

	printChallenge(sequence)
	PrintResult(res, fmt.Sprintf("Day %d", c.Day))
	if res.Awarded {
		fmt.Println(challenge.Motivation())
	}
	return nil
}

func printChallenge(sequence []models.ChallengeDay) {
	for _, d := range sequence {
		mark := "[ ]"
		if d.Completed {
			mark = "[x]"
		}
		fmt.Printf("%s Day %2d  %s (%s)\n", mark, d.Day, d.Title, d.Category)
	}
	fmt.Printf("%d/%d days completed\n", challenge.CompletedCount(sequence), constants.ChallengeDays)
}
