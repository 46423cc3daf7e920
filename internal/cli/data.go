package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
)

type ExportCmd struct {
	Out string `help:"Output file path. Prints to stdout when omitted." type:"path" default:""`
}

func (c *ExportCmd) Run(ctx *Context) error {
	raw, err := ctx.Service.Export()
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Println(string(raw))
		return nil
	}
	if err := os.WriteFile(c.Out, raw, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported to %s\n", c.Out)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Previously exported JSON file." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	raw, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	if err := ctx.Service.Import(raw); err != nil {
		return fmt.Errorf("import failed, existing data untouched: %w", err)
	}
	data := ctx.Service.Data()
	fmt.Printf("Imported %d habits and %d mood entries.\n", len(data.Habits), len(data.Moods))
	return nil
}

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Force {
		var confirm bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Delete all habits, moods and progress?").
					Description("This removes the stored document. There is no undo.").
					Value(&confirm),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
		if !confirm {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := ctx.Service.Reset(); err != nil {
		return err
	}
	fmt.Println("All data reset to defaults.")
	return nil
}

type InitCmd struct{}

// Run confirms initialization; the default document is created by the
// session open that precedes command dispatch.
func (c *InitCmd) Run(ctx *Context) error {
	data := ctx.Service.Data()
	fmt.Printf("Storage ready at %s (%d habits, level %d)\n",
		ctx.ConfigPath, len(data.Habits), data.UserStats.Level)
	return nil
}
