// Package configschema defines the finalized project configuration and the
// stored-answers file of a generated project.
//
// Overview:
//   - Responsibility: Config and DSL types, validation rules, .camelgen.yaml I/O
//   - Key Types: Config, DSL, Answers
//   - Concurrency Model: Config is an immutable value after resolution
//   - Error Semantics: Validation failures are returned as INVALID_ARGUMENT errors
//   - Performance Notes: Single-pass parsing
//
// Usage:
//
//	if err := configschema.ValidatePackage("com.acme.orders"); err != nil {
//	    ui.Error("%v", err)
//	}
package configschema

// DSL is the Camel configuration style of the generated project.
type DSL string

const (
	DSLSpring     DSL = "spring"
	DSLSpringBoot DSL = "spring-boot"
	DSLBlueprint  DSL = "blueprint"
	DSLJava       DSL = "java"
)

// DSLs lists every supported flavor in prompt order.
var DSLs = []DSL{DSLBlueprint, DSLSpring, DSLSpringBoot, DSLJava}

// HasXMLContext reports whether the flavor carries an XML routing context
// that the wsdl2rest converter can rewrite.
func (d DSL) HasXMLContext() bool {
	switch d {
	case DSLSpring, DSLSpringBoot, DSLBlueprint:
		return true
	default:
		return false
	}
}

// Valid reports whether d is one of the supported flavors.
func (d DSL) Valid() bool {
	for _, known := range DSLs {
		if d == known {
			return true
		}
	}
	return false
}

func (d DSL) String() string {
	return string(d)
}

// Config is the finalized configuration of one generator run.
//
// The first four fields form the template namespace; the WSDL fields are only
// meaningful when WSDL2Rest is set.
type Config struct {
	Name         string `yaml:"name" validate:"required"`
	CamelVersion string `yaml:"camelVersion" validate:"required"`
	CamelDSL     DSL    `yaml:"camelDSL" validate:"required,oneof=spring spring-boot blueprint java"`
	Package      string `yaml:"package" validate:"required,javapkg"`

	WSDL         string `yaml:"wsdl,omitempty" validate:"required_if=WSDL2Rest true"`
	OutDirectory string `yaml:"outdirectory,omitempty" validate:"required_if=WSDL2Rest true"`
	JaxRSURL     string `yaml:"jaxrs,omitempty" validate:"omitempty,url"`
	JaxWSURL     string `yaml:"jaxws,omitempty" validate:"omitempty,url"`

	WSDL2Rest bool `yaml:"-"`
	Debug     bool `yaml:"-"`
}

// PackagePath returns the package as a slash-separated directory path.
func (c Config) PackagePath() string {
	return PackageToPath(c.Package)
}
