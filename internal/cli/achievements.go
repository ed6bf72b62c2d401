package cli

import "fmt"

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *Context) error {
	for _, a := range ctx.App.Achievements.List() {
		if a.Unlocked() {
			fmt.Printf("%s %s — %s (unlocked %s)\n", a.Icon, a.Title, a.Description, *a.UnlockedAt)
		} else {
			fmt.Printf("🔒 %s — %s\n", a.Title, a.Description)
		}
	}
	return nil
}
