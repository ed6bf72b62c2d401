package cli

import (
	"fmt"
	"time"

	"github.com/carlamendes/bloom/internal/journal"
	"github.com/carlamendes/bloom/internal/models"
)

type MealCmd struct {
	Add     MealAddCmd     `cmd:"" help:"Log a meal." default:"1"`
	List    MealListCmd    `cmd:"" help:"Show logged meals."`
	Suggest MealSuggestCmd `cmd:"" help:"Show quick meal suggestions."`
}

type MealAddCmd struct {
	Description string `arg:"" help:"What you ate."`
	Type        string `help:"Meal type: breakfast, lunch, dinner, snack." default:"snack"`
}

func (c *MealAddCmd) Run(ctx *Context) error {
	res, err := ctx.App.AddMeal(models.MealType(c.Type), c.Description, time.Now())
	if err != nil {
		return err
	}

	PrintResult(res, "Meal logged")
	return nil
}

type MealListCmd struct {
	Last int `help:"Number of entries to show." default:"10"`
}

func (c *MealListCmd) Run(ctx *Context) error {
	meals := ctx.App.Journal.Meals()
	if len(meals) == 0 {
		fmt.Println("No meals logged yet.")
		return nil
	}

	start := len(meals) - c.Last
	if start < 0 {
		start = 0
	}

	for _, m := range meals[start:] {
		fmt.Printf("%s  %-9s  %s\n", m.Timestamp, m.Type, m.Description)
	}
	return nil
}

type MealSuggestCmd struct{}

func (c *MealSuggestCmd) Run(ctx *Context) error {
	for _, s := range journal.Suggestions() {
		fmt.Printf("%s %s — %s (%s)\n", s.Icon, s.Title, s.Description, s.Benefit)
	}
	fmt.Println("\nLog one with: bloom meal add \"<title>\"")
	return nil
}
