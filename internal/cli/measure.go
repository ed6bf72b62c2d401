package cli

import (
	"fmt"
	"time"
)

type MeasureCmd struct {
	Add  MeasureAddCmd  `cmd:"" help:"Record body measurements." default:"1"`
	List MeasureListCmd `cmd:"" help:"Show measurement history."`
}

type MeasureAddCmd struct {
	Weight float64 `arg:"" help:"Weight in kg."`
	Waist  float64 `help:"Waist in cm." default:"0"`
	Hips   float64 `help:"Hips in cm." default:"0"`
}

func (c *MeasureAddCmd) Run(ctx *Context) error {
	entry, err := ctx.App.AddMeasurement(c.Weight, c.Waist, c.Hips, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %.1f kg on %s\n", entry.WeightKg, entry.Date)
	return nil
}

type MeasureListCmd struct{}

func (c *MeasureListCmd) Run(ctx *Context) error {
	entries := ctx.App.Journal.Progress()
	if len(entries) == 0 {
		fmt.Println("No measurements recorded yet.")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %.1f kg", e.Date, e.WeightKg)
		if e.WaistCm > 0 {
			line += fmt.Sprintf("  waist %.1f cm", e.WaistCm)
		}
		if e.HipsCm > 0 {
			line += fmt.Sprintf("  hips %.1f cm", e.HipsCm)
		}
		if e.Photo != "" {
			line += "  📷"
		}
		fmt.Println(line)
	}
	return nil
}
