package main

import (
	"github.com/spf13/cobra"

	"go.eggybyte.com/camelgen/internal/ui"
)

var convertFlags projectFlags

// wsdl2restCmd represents the wsdl2rest command.
var wsdl2restCmd = &cobra.Command{
	Use:   "wsdl2rest [key=value...]",
	Short: "Generate a REST facade for an existing project",
	Long: `Run the wsdl2rest converter over a project created by camelgen.

The project fields are read from .camelgen.yaml; the WSDL location, the
output directory and the endpoint addresses are taken from flags, key=value
arguments or prompts.

The converter is looked up in $CAMELGEN_WSDL2REST_HOME/target and run with
$CAMELGEN_JAVA. CAMELGEN_WSDL2REST_TIMEOUT bounds its run time.

Example:
  camelgen wsdl2rest wsdl=http://localhost:3000/helloworldservice?wsdl --debug`,
	RunE: runWSDL2Rest,
}

func init() {
	rootCmd.AddCommand(wsdl2restCmd)
	convertFlags.register(wsdl2restCmd, false)
}

func runWSDL2Rest(cmd *cobra.Command, args []string) error {
	env, logger, err := loadEnvironment()
	if err != nil {
		return err
	}

	in, err := convertFlags.resolveInputs(cmd, args)
	if err != nil {
		return err
	}

	opts := runOptions{
		Dest:           convertFlags.dest,
		Debug:          convertFlags.debug,
		NonInteractive: ui.IsNonInteractive(),
		Logger:         logger,
	}
	if !opts.NonInteractive {
		opts.Prompter = ui.NewStdPrompter()
	}

	_, err = convertProject(cmd.Context(), env, in, opts)
	return err
}
