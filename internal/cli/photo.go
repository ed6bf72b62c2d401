package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/carlamendes/bloom/internal/enhance"
)

const defaultInstruction = "Enhance lighting and clarity. Keep the subject natural and unaltered."

type PhotoCmd struct {
	Add PhotoAddCmd `cmd:"" help:"Save a progress photo." default:"1"`
}

type PhotoAddCmd struct {
	Path        string `arg:"" type:"existingfile" help:"Path to the photo."`
	Raw         bool   `help:"Save the photo as-is without enhancement."`
	Instruction string `help:"Enhancement instruction." default:""`
	Out         string `help:"Write the enhanced photo to this path as well." default:""`
}

func (c *PhotoAddCmd) Run(ctx *Context) error {
	image, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("could not read photo: %w", err)
	}

	if !c.Raw {
		client, err := enhance.NewClient()
		if err != nil {
			return err
		}

		instruction := c.Instruction
		if instruction == "" {
			instruction = defaultInstruction
		}

		enhanced, err := client.Enhance(context.Background(), image, mimeTypeFor(c.Path), instruction)
		if err != nil {
			return fmt.Errorf("enhancement failed, photo not saved: %w", err)
		}
		image = enhanced

		if c.Out != "" {
			if err := os.WriteFile(c.Out, image, 0o644); err != nil {
				return fmt.Errorf("could not write enhanced photo: %w", err)
			}
		}
	}

	res, err := ctx.App.SavePhoto(base64.StdEncoding.EncodeToString(image), time.Now())
	if err != nil {
		return err
	}

	fmt.Println("Progress photo saved")
	PrintResult(res, "Photo")
	return nil
}

func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
