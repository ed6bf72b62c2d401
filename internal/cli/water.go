package cli

import (
	"fmt"
	"time"
)

type WaterCmd struct {
	Add WaterAddCmd `cmd:"" help:"Log water intake." default:"1"`
}

type WaterAddCmd struct {
	Amount int `arg:"" optional:"" default:"200" help:"Amount in milliliters."`
}

func (c *WaterAddCmd) Run(ctx *Context) error {
	if c.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", c.Amount)
	}

	res, daily, err := ctx.App.AddWater(c.Amount, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Water today: %d ml\n", daily.WaterML)
	PrintResult(res, "Hydration")
	return nil
}
