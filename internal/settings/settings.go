// Package settings binds the tool environment of camelgen.
//
// Overview:
//   - Responsibility: Read CAMELGEN_* environment variables into Settings
//   - Key Types: Settings
//   - Concurrency Model: Settings is an immutable value after Load
//   - Error Semantics: Malformed or out-of-range values are INVALID_ARGUMENT errors
//   - Performance Notes: Reflection runs once per process
//
// Usage:
//
//	s, err := settings.Load()
//	jarDir := s.JarDir()
package settings

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"go.eggybyte.com/camelgen/internal/core/errors"
)

// Settings is the environment of one camelgen process.
type Settings struct {
	// WSDL2RestHome holds target/wsdl2rest*.jar and config/logging.properties.
	// Empty selects the wsdl2rest directory next to the camelgen executable.
	WSDL2RestHome string `env:"CAMELGEN_WSDL2REST_HOME"`

	Java             string        `env:"CAMELGEN_JAVA" default:"java" validate:"required"`
	WSDL2RestTimeout time.Duration `env:"CAMELGEN_WSDL2REST_TIMEOUT" default:"0s" validate:"gte=0"`

	LogLevel  string `env:"CAMELGEN_LOG_LEVEL" default:"warn" validate:"oneof=debug info warn warning error"`
	LogFormat string `env:"CAMELGEN_LOG_FORMAT" default:"logfmt" validate:"oneof=logfmt json"`

	// Templates overrides the embedded template trees with a directory.
	Templates string `env:"CAMELGEN_TEMPLATES"`
}

// Load reads Settings from the process environment.
func Load() (*Settings, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom reads Settings through lookup.
func LoadFrom(lookup LookupFunc) (*Settings, error) {
	var s Settings
	if err := bind(lookup, &s); err != nil {
		return nil, errors.Wrapf(errors.CodeInvalidArgument, "load settings", err, "%v", err)
	}

	if err := validator.New().Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return nil, errors.Newf(errors.CodeInvalidArgument, "invalid setting %s=%v: failed %q rule",
				fe.Field(), fe.Value(), fe.Tag())
		}
		return nil, errors.Wrap(errors.CodeInvalidArgument, "validate settings", err)
	}

	if s.WSDL2RestHome == "" {
		s.WSDL2RestHome = defaultHome()
	}
	return &s, nil
}

func defaultHome() string {
	exe, err := os.Executable()
	if err != nil {
		return "wsdl2rest"
	}
	return filepath.Join(filepath.Dir(exe), "wsdl2rest")
}

// JarDir is the directory scanned for the wsdl2rest jar.
func (s *Settings) JarDir() string {
	return filepath.Join(s.WSDL2RestHome, "target")
}

// LogConfigPath is the log4j configuration handed to the converter.
func (s *Settings) LogConfigPath() string {
	return filepath.Join(s.WSDL2RestHome, "config", "logging.properties")
}
