package main

import (
	"github.com/spf13/cobra"

	"go.eggybyte.com/camelgen/internal/ui"
)

var (
	newFlags     projectFlags
	newWSDL2Rest bool
)

// newCmd represents the new command.
var newCmd = &cobra.Command{
	Use:   "new [key=value...]",
	Short: "Create a Camel project",
	Long: `Create a Camel project from the built-in templates.

Answers can be given as flags or as key=value arguments
(appname, camelVersion, camelDSL, package, wsdl, outdirectory, jaxrs, jaxws).
Missing answers are prompted for; with --non-interactive defaults are used.

With --wsdl2rest the wsdl2rest converter generates a REST facade for the
given WSDL and rewrites the routing context. The java DSL is not supported
in that mode.

Example:
  camelgen new appname=MyApp camelVersion=2.22.2 camelDSL=blueprint package=com.acme.myapp
  camelgen new --wsdl2rest --camel-dsl spring --wsdl http://localhost:3000/svc?wsdl`,
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
	newFlags.register(newCmd, true)
	newCmd.Flags().BoolVar(&newWSDL2Rest, "wsdl2rest", false, "Generate a REST facade from a WSDL")
}

func runNew(cmd *cobra.Command, args []string) error {
	env, logger, err := loadEnvironment()
	if err != nil {
		return err
	}

	in, err := newFlags.resolveInputs(cmd, args)
	if err != nil {
		return err
	}

	opts := runOptions{
		Dest:           newFlags.dest,
		Templates:      newFlags.templates,
		WSDL2Rest:      newWSDL2Rest,
		Debug:          newFlags.debug,
		NonInteractive: ui.IsNonInteractive(),
		Logger:         logger,
	}
	if !opts.NonInteractive {
		opts.Prompter = ui.NewStdPrompter()
	}

	_, err = generateProject(cmd.Context(), env, in, opts)
	return err
}
