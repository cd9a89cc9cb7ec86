package params

import (
	"path/filepath"
	"strings"

	"go.eggybyte.com/camelgen/internal/configschema"
	"go.eggybyte.com/camelgen/internal/core/errors"
	"go.eggybyte.com/camelgen/internal/core/log"
	"go.eggybyte.com/camelgen/internal/version"
)

// Built-in fallbacks used when neither the command line nor stored answers
// provide a value.
const (
	DefaultCamelVersion = version.DefaultCamelVersion
	DefaultCamelDSL     = configschema.DSLSpring
	DefaultOutDirectory = "src/main/java"
)

// DefaultSet holds the fallback value of every field. The package default
// is derived from the resolved project name, so it is computed late.
type DefaultSet struct {
	Name         string
	CamelVersion string
	CamelDSL     string
	OutDirectory string
}

// Defaults computes the fallback values for a project generated into dir.
// Stored answers from a previous run override the version and DSL defaults.
func Defaults(dir string, stored *configschema.Answers) DefaultSet {
	name := filepath.Base(filepath.Clean(dir))
	if abs, err := filepath.Abs(dir); err == nil {
		name = filepath.Base(abs)
	}

	d := DefaultSet{
		Name:         name,
		CamelVersion: DefaultCamelVersion,
		CamelDSL:     string(DefaultCamelDSL),
		OutDirectory: DefaultOutDirectory,
	}
	if stored != nil {
		if stored.CamelVersion != "" {
			d.CamelVersion = stored.CamelVersion
		}
		if stored.CamelDSL != "" {
			d.CamelDSL = stored.CamelDSL
		}
	}
	return d
}

// For returns the default of the field identified by key, given the values
// resolved so far.
func (d DefaultSet) For(key string, resolved Inputs) string {
	switch key {
	case KeyName:
		return d.Name
	case KeyCamelVersion:
		return d.CamelVersion
	case KeyCamelDSL:
		return d.CamelDSL
	case KeyPackage:
		name, ok := resolved.Get(KeyName)
		if !ok {
			name = d.Name
		}
		return configschema.DefaultPackage(name)
	case KeyOutDirectory:
		return d.OutDirectory
	default:
		return ""
	}
}

// Prompter asks a question and reports rejected answers. *ui.Prompter
// implements it.
type Prompter interface {
	Ask(message, defaultValue string) (string, error)
	Reject(err error)
}

// Options controls one resolution.
type Options struct {
	WSDL2Rest      bool
	Debug          bool
	NonInteractive bool
	Logger         log.Logger
}

// Resolve builds the final configuration. Supplied values are validated
// first; missing fields are then asked for in prompt order, or taken from
// defaults when prompting is disabled. An invalid prompt answer is rejected
// and the question repeated.
func Resolve(in Inputs, defaults DefaultSet, prompter Prompter, opts Options) (configschema.Config, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Nop()
	}

	for _, f := range fields {
		if f.WSDL2RestOnly && !opts.WSDL2Rest {
			continue
		}
		v, ok := in.Get(f.Key)
		if !ok || f.Validate == nil {
			continue
		}
		if err := f.Validate(v, opts.WSDL2Rest); err != nil {
			return configschema.Config{}, errors.Wrapf(errors.CodeInvalidArgument, "resolve "+f.Key, err,
				"%s", errors.Message(err))
		}
	}

	resolved := in
	interactive := !opts.NonInteractive && prompter != nil
	for _, f := range PlanPrompts(in, opts.WSDL2Rest) {
		def := defaults.For(f.Key, resolved)

		var answer string
		if interactive {
			var err error
			answer, err = ask(prompter, f, def, opts.WSDL2Rest)
			if err != nil {
				return configschema.Config{}, err
			}
		} else {
			answer = def
		}

		if f.Required && strings.TrimSpace(answer) == "" {
			return configschema.Config{}, errors.Newf(errors.CodeInvalidArgument,
				"missing required parameter %q", f.Key)
		}
		if answer != "" {
			_ = resolved.Set(f.Key, answer)
		}
		logger.Debug("parameter resolved", log.Str("key", f.Key), log.Str("value", answer))
	}

	// Fields not planned still need their fallback, e.g. outdirectory when
	// every required answer was supplied.
	for _, f := range fields {
		if f.WSDL2RestOnly && !opts.WSDL2Rest {
			continue
		}
		if _, ok := resolved.Get(f.Key); !ok {
			if def := defaults.For(f.Key, resolved); def != "" {
				_ = resolved.Set(f.Key, def)
			}
		}
	}

	cfg := toConfig(resolved, opts)
	if err := configschema.ValidateVersion(cfg.CamelVersion); err != nil {
		logger.Warn(errors.Message(err), log.Str("camelVersion", cfg.CamelVersion))
	}
	if err := cfg.Validate(); err != nil {
		return configschema.Config{}, err
	}
	return cfg, nil
}

func ask(prompter Prompter, f Field, def string, wsdl2rest bool) (string, error) {
	for {
		answer, err := prompter.Ask(f.Message, def)
		if err != nil {
			return "", errors.Wrapf(errors.CodeAborted, "prompt "+f.Key, err,
				"no answer for %q", f.Key)
		}
		answer = strings.TrimSpace(answer)
		if f.Required && answer == "" {
			prompter.Reject(errors.Newf(errors.CodeInvalidArgument, "A value for %s is required.", f.Key))
			continue
		}
		if f.Validate == nil {
			return answer, nil
		}
		if err := f.Validate(answer, wsdl2rest); err != nil {
			prompter.Reject(err)
			continue
		}
		return answer, nil
	}
}

func toConfig(in Inputs, opts Options) configschema.Config {
	get := func(key string) string {
		v, _ := in.Get(key)
		return v
	}
	return configschema.Config{
		Name:         get(KeyName),
		CamelVersion: get(KeyCamelVersion),
		CamelDSL:     configschema.DSL(get(KeyCamelDSL)),
		Package:      get(KeyPackage),
		WSDL:         get(KeyWSDL),
		OutDirectory: get(KeyOutDirectory),
		JaxRSURL:     get(KeyJaxRS),
		JaxWSURL:     get(KeyJaxWS),
		WSDL2Rest:    opts.WSDL2Rest,
		Debug:        opts.Debug,
	}
}
