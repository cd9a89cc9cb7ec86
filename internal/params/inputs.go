// Package params resolves the answers of one generator run.
//
// Overview:
//   - Responsibility: Merge CLI flags, key=value arguments, stored answers,
//     prompts and defaults into a validated configschema.Config
//   - Key Types: Inputs, Field, Defaults, Prompter, Options
//   - Concurrency Model: Resolution is sequential; Inputs values are copied, not shared
//   - Error Semantics: Invalid supplied values fail with INVALID_ARGUMENT,
//     invalid prompt answers are rejected and asked again
//   - Performance Notes: At most one prompt per field per attempt
//
// Usage:
//
//	in, err := params.ParseAssignments(args)
//	cfg, err := params.Resolve(in, params.Defaults(dest, stored), prompter, params.Options{})
package params

import (
	"fmt"
	"strings"

	"go.eggybyte.com/camelgen/internal/core/errors"
)

// Inputs holds the values supplied before prompting. A nil field was not
// supplied; an empty string counts as not supplied as well.
type Inputs struct {
	Name         *string
	CamelVersion *string
	CamelDSL     *string
	Package      *string
	WSDL         *string
	OutDirectory *string
	JaxRS        *string
	JaxWS        *string
}

// String returns a pointer to s, for building Inputs literals.
func String(s string) *string {
	return &s
}

// present reports whether p carries a non-empty value.
func present(p *string) bool {
	return p != nil && strings.TrimSpace(*p) != ""
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// Merge returns a copy of in where every field supplied by other replaces
// the corresponding field of in.
func (in Inputs) Merge(other Inputs) Inputs {
	merged := in
	for _, f := range fields {
		if v := f.get(&other); present(*v) {
			*f.get(&merged) = *v
		}
	}
	return merged
}

// Get returns the supplied value of the field identified by key.
func (in Inputs) Get(key string) (string, bool) {
	f, ok := fieldByKey(key)
	if !ok {
		return "", false
	}
	p := *f.get(&in)
	return value(p), present(p)
}

// Set stores a value for the field identified by key.
func (in *Inputs) Set(key, v string) error {
	f, ok := fieldByKey(key)
	if !ok {
		return errors.Newf(errors.CodeInvalidArgument, "unknown parameter %q", key)
	}
	*f.get(in) = String(v)
	return nil
}

// ParseAssignments parses positional key=value arguments such as
// "appname=MyApp" or "camelDSL=blueprint". The value is everything after the
// first '='.
func ParseAssignments(args []string) (Inputs, error) {
	var in Inputs
	for _, arg := range args {
		key, v, ok := strings.Cut(arg, "=")
		if !ok {
			return Inputs{}, errors.Newf(errors.CodeInvalidArgument,
				"argument %q is not of the form key=value", arg)
		}
		key = strings.TrimSpace(key)
		if key == "appname" {
			key = KeyName
		}
		if err := in.Set(key, v); err != nil {
			return Inputs{}, errors.Wrapf(errors.CodeInvalidArgument, "parse assignments", err,
				"unknown parameter %q (known: %s)", key, strings.Join(Keys(), ", "))
		}
	}
	return in, nil
}

// Keys returns the accepted parameter keys in prompt order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	return keys
}

func (in Inputs) String() string {
	var parts []string
	for _, f := range fields {
		if p := *f.get(&in); present(p) {
			parts = append(parts, fmt.Sprintf("%s=%s", f.Key, value(p)))
		}
	}
	return strings.Join(parts, " ")
}
