package main

import (
	"context"
	"os"
	"path/filepath"

	"go.eggybyte.com/camelgen/internal/configschema"
	"go.eggybyte.com/camelgen/internal/core/errors"
	"go.eggybyte.com/camelgen/internal/core/log"
	"go.eggybyte.com/camelgen/internal/generators"
	"go.eggybyte.com/camelgen/internal/params"
	"go.eggybyte.com/camelgen/internal/projectfs"
	"go.eggybyte.com/camelgen/internal/settings"
	"go.eggybyte.com/camelgen/internal/templates"
	"go.eggybyte.com/camelgen/internal/ui"
	"go.eggybyte.com/camelgen/internal/version"
	"go.eggybyte.com/camelgen/internal/wsdl2rest"
)

// runOptions carries everything a generator run needs besides the inputs.
type runOptions struct {
	Dest           string
	Templates      string
	WSDL2Rest      bool
	Debug          bool
	NonInteractive bool
	Prompter       params.Prompter
	Logger         log.Logger
}

// confirmer is implemented by *ui.Prompter.
type confirmer interface {
	Confirm(format string, args ...interface{}) bool
}

type runSummary struct {
	Dir    string
	Config configschema.Config
	Report *generators.Report
	Result *wsdl2rest.Result
}

// generateProject resolves the answers, materializes the template tree and,
// in wsdl2rest mode, runs the converter over the new project.
func generateProject(ctx context.Context, env *settings.Settings, in params.Inputs, opts runOptions) (*runSummary, error) {
	dir, err := filepath.Abs(opts.Dest)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInvalidArgument, "resolve destination", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Nop()
	}

	ui.Banner()

	stored, err := configschema.LoadAnswers(dir)
	if err != nil {
		return nil, err
	}
	if !opts.NonInteractive && existingProject(dir, stored) {
		if c, ok := opts.Prompter.(confirmer); ok && !c.Confirm("Files in %s will be overwritten. Continue?", dir) {
			return nil, errors.New(errors.CodeAborted, "generation cancelled")
		}
	}

	cfg, err := params.Resolve(in, params.Defaults(dir, stored), opts.Prompter, params.Options{
		WSDL2Rest:      opts.WSDL2Rest,
		Debug:          opts.Debug,
		NonInteractive: opts.NonInteractive,
		Logger:         logger,
	})
	if err != nil {
		return nil, err
	}
	printConfig(cfg)

	total := 2
	if cfg.WSDL2Rest {
		total = 3
	}
	summary := &runSummary{Dir: dir, Config: cfg}

	ui.Step(1, total, "Creating project files in %s", dir)
	pfs := projectfs.New(dir)
	pfs.SetVerbose(ui.IsVerbose())
	scaffolder := generators.NewScaffolder(pfs, newLoader(opts.Templates, env), logger)
	report, err := scaffolder.Materialize(cfg)
	summary.Report = report
	if err != nil {
		return summary, err
	}
	ui.Debug("%d folders created, %d files written, %d templates skipped",
		len(report.CreatedDirs), len(report.Written), len(report.Skipped))

	if cfg.WSDL2Rest {
		ui.Step(2, total, "Generating REST facade from %s", cfg.WSDL)
		result, err := runConverter(ctx, env, cfg, dir, logger)
		summary.Result = result
		if err != nil {
			return summary, err
		}
	}

	ui.Step(total, total, "Saving answers to %s", configschema.AnswersFile)
	if err := configschema.SaveAnswers(dir, configschema.AnswersFromConfig(cfg, version.Version)); err != nil {
		return summary, err
	}

	ui.Success("Camel project %s created", cfg.Name)
	return summary, nil
}

// convertProject runs the converter over an existing project. Stored answers
// supply the project fields; only the WSDL fields are resolved.
func convertProject(ctx context.Context, env *settings.Settings, in params.Inputs, opts runOptions) (*runSummary, error) {
	dir, err := filepath.Abs(opts.Dest)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInvalidArgument, "resolve destination", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Nop()
	}

	stored, err := configschema.LoadAnswers(dir)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errors.Newf(errors.CodeFailedPrecondition,
			"%s is not a camelgen project (no %s); run camelgen new first", dir, configschema.AnswersFile)
	}

	cfg, err := params.Resolve(inputsFromAnswers(stored).Merge(in), params.Defaults(dir, stored), opts.Prompter, params.Options{
		WSDL2Rest:      true,
		Debug:          opts.Debug,
		NonInteractive: opts.NonInteractive,
		Logger:         logger,
	})
	if err != nil {
		return nil, err
	}

	summary := &runSummary{Dir: dir, Config: cfg}
	ui.Info("wsdl url: %s", cfg.WSDL)
	ui.Info("output path: %s", cfg.OutDirectory)

	result, err := runConverter(ctx, env, cfg, dir, logger)
	summary.Result = result
	if err != nil {
		return summary, err
	}

	if err := configschema.SaveAnswers(dir, configschema.AnswersFromConfig(cfg, version.Version)); err != nil {
		return summary, err
	}
	ui.Success("REST facade generated for %s", cfg.Name)
	return summary, nil
}

func runConverter(ctx context.Context, env *settings.Settings, cfg configschema.Config, dir string, logger log.Logger) (*wsdl2rest.Result, error) {
	invoker := wsdl2rest.NewInvoker(env,
		wsdl2rest.WithSink(ui.Stdout()),
		wsdl2rest.WithLogger(logger),
		wsdl2rest.WithVerbose(ui.IsVerbose()),
	)
	result, err := invoker.Run(ctx, wsdl2rest.Request{Config: cfg, ProjectDir: dir})
	if err != nil {
		return result, err
	}
	ui.Debug("wsdl2rest finished in %s", result.Duration)
	return result, nil
}

func existingProject(dir string, stored *configschema.Answers) bool {
	if stored != nil {
		return true
	}
	_, err := os.Stat(filepath.Join(dir, "pom.xml"))
	return err == nil
}

func inputsFromAnswers(a *configschema.Answers) params.Inputs {
	var in params.Inputs
	set := func(target **string, value string) {
		if value != "" {
			*target = params.String(value)
		}
	}
	set(&in.Name, a.Name)
	set(&in.CamelVersion, a.CamelVersion)
	set(&in.CamelDSL, a.CamelDSL)
	set(&in.Package, a.Package)
	set(&in.WSDL, a.WSDL)
	set(&in.OutDirectory, a.OutDirectory)
	set(&in.JaxRS, a.JaxRS)
	set(&in.JaxWS, a.JaxWS)
	return in
}

// newLoader selects the template trees: an explicit directory, then
// CAMELGEN_TEMPLATES, then the embedded ones.
func newLoader(dir string, env *settings.Settings) *templates.Loader {
	if dir == "" && env != nil {
		dir = env.Templates
	}
	if dir == "" {
		return templates.NewLoader(nil)
	}
	return templates.NewLoader(os.DirFS(dir))
}

func printConfig(cfg configschema.Config) {
	ui.KeyValue("camel project name", cfg.Name)
	ui.KeyValue("camel version", cfg.CamelVersion)
	ui.KeyValue("camel DSL", cfg.CamelDSL.String())
	ui.KeyValue("package name", cfg.Package)
	if cfg.WSDL2Rest {
		ui.KeyValue("wsdl url", cfg.WSDL)
		ui.KeyValue("output path", cfg.OutDirectory)
		if cfg.JaxRSURL != "" {
			ui.KeyValue("jaxrs address", cfg.JaxRSURL)
		}
		if cfg.JaxWSURL != "" {
			ui.KeyValue("jaxws address", cfg.JaxWSURL)
		}
	}
}
