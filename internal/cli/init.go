package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
)

type InitCmd struct {
	Name string `help:"Your name."`
	Goal string `help:"What you want to get out of the next weeks."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized bloom storage at: %s\n", ctx.Store.GetConfigPath())

	name := c.Name
	goal := c.Goal

	// Ask interactively for whatever the flags didn't provide.
	if name == "" || goal == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("What should we call you?").
					Value(&name),
				huh.NewInput().
					Title("What is your goal?").
					Placeholder("e.g. get my energy back").
					Value(&goal),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if name == "" {
		name = "Friend"
	}

	user, err := ctx.App.Ledger.Create(name, goal, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Welcome, %s! You are level %d — every small step counts.\n", user.Name, user.Level)
	return nil
}
