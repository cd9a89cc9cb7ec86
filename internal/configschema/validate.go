package configschema

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"

	"go.eggybyte.com/camelgen/internal/core/errors"
)

var packagePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z0-9_]+)+[0-9a-z_]$`)

// reservedKeywords are the Java language keywords, which may not appear as a
// package segment.
var reservedKeywords = map[string]struct{}{
	"abstract": {}, "assert": {}, "boolean": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "class": {}, "continue": {},
	"default": {}, "do": {}, "double": {}, "else": {}, "enum": {},
	"extends": {}, "final": {}, "finally": {}, "float": {}, "for": {},
	"if": {}, "implements": {}, "import": {}, "instanceof": {}, "int": {},
	"interface": {}, "long": {}, "native": {}, "new": {}, "package": {},
	"private": {}, "protected": {}, "public": {}, "return": {}, "short": {},
	"static": {}, "strictfp": {}, "super": {}, "switch": {}, "synchronized": {},
	"this": {}, "throw": {}, "throws": {}, "transient": {}, "try": {},
	"void": {}, "volatile": {}, "while": {},
}

// IsReservedKeyword reports whether word is a Java keyword.
func IsReservedKeyword(word string) bool {
	_, ok := reservedKeywords[word]
	return ok
}

// ValidatePackage checks a Java package name against the standard naming
// grammar and the keyword list.
func ValidatePackage(name string) error {
	if !packagePattern.MatchString(name) {
		return errors.New(errors.CodeInvalidArgument,
			"Unsupported package name. Package must follow standard Java package naming guidelines.")
	}
	for _, segment := range strings.Split(name, ".") {
		if IsReservedKeyword(segment) {
			return errors.Newf(errors.CodeInvalidArgument,
				"Package name may not contain standard Java keywords such as '%s'.", segment)
		}
	}
	return nil
}

// ValidateDSL checks a DSL token. The java flavor has no XML context for the
// converter to rewrite, so it is rejected when wsdl2rest is active.
func ValidateDSL(value string, wsdl2rest bool) error {
	dsl := DSL(value)
	if !dsl.Valid() {
		return errors.New(errors.CodeInvalidArgument,
			"Camel DSL must be either 'spring', 'spring-boot', 'blueprint', or 'java'.")
	}
	if wsdl2rest && !dsl.HasXMLContext() {
		return errors.New(errors.CodeInvalidArgument,
			"Camel DSL must be either 'spring', 'spring-boot', or 'blueprint' when generating from a WSDL.")
	}
	return nil
}

// ValidateVersion performs a local syntax check of a Camel version. Camel
// versions are dotted numbers optionally followed by a qualifier
// (2.21.0.fuse-710018); the numeric core must be valid semver.
func ValidateVersion(version string) error {
	core := version
	if parts := strings.SplitN(version, ".", 4); len(parts) == 4 {
		core = strings.Join(parts[:3], ".")
	}
	if !semver.IsValid("v" + core) {
		return errors.Newf(errors.CodeInvalidArgument,
			"Camel version '%s' does not look like a release version (expected MAJOR.MINOR.PATCH).", version)
	}
	return nil
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("javapkg", func(fl validator.FieldLevel) bool {
			return ValidatePackage(fl.Field().String()) == nil
		})
	})
	return validate
}

// ValidateEndpoint checks an optional endpoint address override. An empty
// value means the converter's own default and is accepted.
func ValidateEndpoint(value string) error {
	if err := structValidator().Var(value, "omitempty,url"); err != nil {
		return errors.Newf(errors.CodeInvalidArgument,
			"Endpoint address '%s' must be an absolute URL, e.g. http://localhost:8081/jaxrs.", value)
	}
	return nil
}

// Validate checks the whole configuration. Field rules come from the struct
// tags; DSL and package checks produce the same messages as the individual
// validators.
func (c Config) Validate() error {
	if err := ValidateDSL(string(c.CamelDSL), c.WSDL2Rest); err != nil && c.CamelDSL != "" {
		return err
	}
	if c.Package != "" {
		if err := ValidatePackage(c.Package); err != nil {
			return err
		}
	}

	if err := structValidator().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return errors.Newf(errors.CodeInvalidArgument, "invalid %s: failed %q rule", fe.Field(), fe.Tag())
		}
		return errors.Wrap(errors.CodeInvalidArgument, "validate config", err)
	}
	return nil
}

// PackageToPath converts a dotted package into a slash-separated path.
func PackageToPath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}

// DefaultPackage derives "com.<name>" from a project name, lower-casing it
// and dropping characters that are not legal in a package segment.
func DefaultPackage(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	segment := strings.TrimLeft(b.String(), "0123456789_")
	if len(segment) < 2 || IsReservedKeyword(segment) {
		segment = "app"
	}
	return fmt.Sprintf("com.%s", segment)
}
