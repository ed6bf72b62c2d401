package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/carlamendes/bloom/internal/keyring"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store the enhancement API key in the OS keyring."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the enhancement API key from the OS keyring."`
	Status KeyringStatusCmd `cmd:"" help:"Check whether an API key is configured." default:"1"`
}

type KeyringSetCmd struct {
	Key string `help:"API key. Prompted for if not given." default:""`
}

func (c *KeyringSetCmd) Run(ctx *Context) error {
	key := c.Key
	if key == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Enhancement API key").
				EchoMode(huh.EchoModePassword).
				Value(&key),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	if key == "" {
		return fmt.Errorf("no API key provided")
	}

	if err := keyring.SetAPIKey(key); err != nil {
		return err
	}

	fmt.Println("API key stored.")
	return nil
}

type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}

	fmt.Println("API key removed.")
	return nil
}

type KeyringStatusCmd struct{}

func (c *KeyringStatusCmd) Run(ctx *Context) error {
	if _, err := keyring.GetAPIKey(); err != nil {
		fmt.Println("No API key configured.")
		return nil
	}

	fmt.Println("An API key is configured.")
	return nil
}
