package cli

import (
	"fmt"
	"time"
)

// moodChoices are the quick-pick moods offered by the log command. Any
// free-text label is also accepted.
var moodChoices = map[string]string{
	"happy":   "😄",
	"tired":   "😴",
	"anxious": "😨",
	"drained": "😫",
	"calm":    "😌",
}

type MoodCmd struct {
	Log  MoodLogCmd  `cmd:"" help:"Log how you are feeling." default:"1"`
	List MoodListCmd `cmd:"" help:"Show mood history."`
}

type MoodLogCmd struct {
	Label string `arg:"" help:"Mood label (happy, tired, anxious, drained, calm, or your own words)."`
	Note  string `help:"Optional note." default:""`
}

func (c *MoodLogCmd) Run(ctx *Context) error {
	emoji, ok := moodChoices[c.Label]
	if !ok {
		emoji = "💭"
	}

	res, err := ctx.App.LogMood(emoji, c.Label, c.Note, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Today you are feeling %s %s\n", c.Label, emoji)
	PrintResult(res, "Mood logged")
	return nil
}

type MoodListCmd struct {
	Last int `help:"Number of entries to show." default:"7"`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	moods := ctx.App.Journal.Moods()
	if len(moods) == 0 {
		fmt.Println("No moods logged yet.")
		return nil
	}

	start := len(moods) - c.Last
	if start < 0 {
		start = 0
	}

	for _, m := range moods[start:] {
		line := fmt.Sprintf("%s  %s %s", m.Timestamp, m.Emoji, m.Label)
		if m.Note != "" {
			line += " — " + m.Note
		}
		fmt.Println(line)
	}
	return nil
}
