package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"go.eggybyte.com/camelgen/internal/core/errors"
	"go.eggybyte.com/camelgen/internal/settings"
	"go.eggybyte.com/camelgen/internal/toolrunner"
	"go.eggybyte.com/camelgen/internal/ui"
	"go.eggybyte.com/camelgen/internal/wsdl2rest"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the generator environment",
	Long: `Check what camelgen needs besides itself.

This command verifies:
  • Java is installed ($CAMELGEN_JAVA, default java)
  • The wsdl2rest converter jar is present ($CAMELGEN_WSDL2REST_HOME/target)
  • The converter log configuration exists
  • The project templates render

Example:
  camelgen doctor`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	env, err := settings.Load()
	if err != nil {
		return err
	}
	return diagnose(cmd.Context(), env)
}

// diagnose runs every check and fails when one of them reports an error.
// Missing optional pieces only warn.
func diagnose(ctx context.Context, env *settings.Settings) error {
	separator := strings.Repeat("=", 60)
	ui.Info("camelgen Environment Diagnostics")
	ui.Info("%s", separator)

	ui.Info("System Information")
	ui.Info("  OS/Arch:    %s/%s", runtime.GOOS, runtime.GOARCH)
	ui.Info("  Go Version: %s", runtime.Version())
	ui.Info("")

	hasErrors := false
	hasWarnings := false

	ui.Info("wsdl2rest")
	if version, err := checkJava(ctx, env.Java); err != nil {
		ui.Error("  [x] Java: %s", errors.Message(err))
		hasErrors = true
	} else {
		ui.Success("  [+] Java: %s", version)
	}

	if jar, ok := wsdl2rest.FindJar(env.JarDir()); ok {
		ui.Success("  [+] Converter: %s", jar)
	} else {
		ui.Error("  [x] Converter: no wsdl2rest jar in %s", env.JarDir())
		hasErrors = true
	}

	if _, err := os.Stat(env.LogConfigPath()); err != nil {
		ui.Warning("  [!] Log configuration missing: %s", env.LogConfigPath())
		hasWarnings = true
	} else {
		ui.Success("  [+] Log configuration: %s", env.LogConfigPath())
	}
	ui.Info("")

	ui.Info("Templates")
	problems, err := newLoader("", env).ValidateAll()
	switch {
	case err != nil:
		ui.Error("  [x] %s", errors.Message(err))
		hasErrors = true
	case len(problems) > 0:
		ui.Error("  [x] %d template(s) failed to render", len(problems))
		hasErrors = true
	default:
		ui.Success("  [+] Templates render")
	}

	ui.Info("")
	ui.Info("%s", separator)
	if hasErrors {
		ui.Error("Diagnostics completed with ERRORS")
		ui.Info("Generating plain projects still works; --wsdl2rest needs the items above.")
		return errors.New(errors.CodeFailedPrecondition, "environment check failed")
	}
	if hasWarnings {
		ui.Warning("Diagnostics completed with WARNINGS")
		return nil
	}
	ui.Success("All checks passed - environment ready")
	return nil
}

// checkJava returns the first line of "java -version", which the JVM prints
// to stderr.
func checkJava(ctx context.Context, java string) (string, error) {
	if _, err := toolrunner.CheckToolAvailability(java); err != nil {
		return "", err
	}

	result, err := toolrunner.NewRunner("").Exec(ctx, java, "-version")
	if err != nil {
		return "", err
	}

	output := strings.TrimSpace(result.Stderr)
	if output == "" {
		output = strings.TrimSpace(result.Stdout)
	}
	if line, _, _ := strings.Cut(output, "\n"); line != "" {
		return line, nil
	}
	return fmt.Sprintf("%s (version unknown)", java), nil
}
