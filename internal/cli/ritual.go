package cli

import (
	"fmt"
	"time"
)

// RitualCmd logs a completed breathing minute. The breathing itself happens
// away from the terminal; this records it once done.
type RitualCmd struct{}

func (c *RitualCmd) Run(ctx *Context) error {
	res, err := ctx.App.QuietMinute(time.Now())
	if err != nil {
		return err
	}

	fmt.Println("One quiet minute, well spent 🌿")
	PrintResult(res, "Quiet minute")
	return nil
}
