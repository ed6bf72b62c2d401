package cli

import (
	"fmt"
	"time"

	"github.com/carlamendes/bloom/internal/models"
	"github.com/carlamendes/bloom/internal/stats"
)

type WorkoutCmd struct {
	List   WorkoutListCmd   `cmd:"" help:"Show today's workouts." default:"1"`
	Toggle WorkoutToggleCmd `cmd:"" help:"Mark a workout done or not done."`
	Add    WorkoutAddCmd    `cmd:"" help:"Add a custom workout for today."`
}

type WorkoutListCmd struct{}

func (c *WorkoutListCmd) Run(ctx *Context) error {
	workouts := ctx.App.Stats.Workouts(time.Now())
	printWorkouts(workouts)
	return nil
}

type WorkoutToggleCmd struct {
	ID string `arg:"" help:"Workout ID (see 'bloom workout list')."`
}

func (c *WorkoutToggleCmd) Run(ctx *Context) error {
	res, workouts, err := ctx.App.ToggleWorkout(c.ID, time.Now())
	if err != nil {
		return err
	}

	printWorkouts(workouts)
	PrintResult(res, "Workout")
	return nil
}

type WorkoutAddCmd struct {
	Title    string `arg:"" help:"Workout title."`
	Category string `help:"Category: breathing, stretching, walking, mobility, strengthening." default:"mobility"`
	Duration int    `help:"Duration in minutes." default:"10"`
}

func (c *WorkoutAddCmd) Run(ctx *Context) error {
	workout, err := ctx.App.AddWorkout(c.Title, models.WorkoutCategory(c.Category), c.Duration, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Added %q (%s, %d min) for today\n", workout.Title, workout.Category, workout.DurationMin)
	return nil
}

func printWorkouts(workouts []models.Workout) {
	for _, w := range workouts {
		mark := "[ ]"
		if w.Completed {
			mark = "[x]"
		}
		fmt.Printf("%s %s  %s (%s, %d min)\n", mark, w.ID, w.Title, w.Category, w.DurationMin)
	}
	fmt.Printf("%d/%d completed today\n", stats.CompletedCount(workouts), len(workouts))
}
