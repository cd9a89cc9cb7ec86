package main

import (
	"github.com/spf13/cobra"

	"go.eggybyte.com/camelgen/internal/core/errors"
	"go.eggybyte.com/camelgen/internal/settings"
	"go.eggybyte.com/camelgen/internal/ui"
)

var templatesDir string

// templatesCmd represents the templates command.
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List and check the project templates",
	Long: `List the template flavors and render every template with sample values.

Use --templates to check a directory before passing it to camelgen new.
With --verbose every template file is listed.`,
	RunE: runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.Flags().StringVar(&templatesDir, "templates", "", "Directory overriding the built-in templates")
}

func runTemplates(cmd *cobra.Command, args []string) error {
	env, err := settings.Load()
	if err != nil {
		return err
	}
	return checkTemplates(templatesDir, env)
}

func checkTemplates(dir string, env *settings.Settings) error {
	loader := newLoader(dir, env)

	flavors, err := loader.Flavors()
	if err != nil {
		return err
	}
	for _, flavor := range flavors {
		files, err := loader.List(flavor)
		if err != nil {
			return err
		}
		ui.Info("%s (%d files)", flavor, len(files))
		for _, f := range files {
			ui.Debug("  %s/%s", flavor, f)
		}
	}

	problems, err := loader.ValidateAll()
	if err != nil {
		return err
	}
	for _, p := range problems {
		ui.Error("%s", errors.Message(p))
	}
	if len(problems) > 0 {
		return errors.Newf(errors.CodeInternal, "%d template(s) failed to render", len(problems))
	}

	ui.Success("All templates render")
	return nil
}
