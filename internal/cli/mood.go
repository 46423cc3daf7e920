package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/habitheroapp/habithero/internal/models"
)

type MoodCmd struct {
	Mood string `arg:"" optional:"" help:"Today's mood (happy, neutral or sad). Prompts when omitted."`
	Note string `help:"Optional note for the day." default:""`
}

func (c *MoodCmd) Run(ctx *Context) error {
	kind := models.MoodKind(c.Mood)
	note := c.Note

	if c.Mood == "" {
		var picked string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("How are you feeling today?").
					Options(
						huh.NewOption("😊 Happy", string(models.MoodHappy)),
						huh.NewOption("😐 Neutral", string(models.MoodNeutral)),
						huh.NewOption("😔 Sad", string(models.MoodSad)),
					).
					Value(&picked),
				huh.NewInput().
					Title("Note (optional)").
					Value(&note),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
		kind = models.MoodKind(picked)
	}

	if err := ctx.Service.SetMood(kind, note); err != nil {
		return err
	}
	fmt.Printf("Mood recorded: %s\n", kind)
	return nil
}
