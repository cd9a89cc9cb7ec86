package params

import "go.eggybyte.com/camelgen/internal/configschema"

// Parameter keys, as accepted by ParseAssignments and stored in the answers file.
const (
	KeyName         = "name"
	KeyCamelVersion = "camelVersion"
	KeyCamelDSL     = "camelDSL"
	KeyPackage      = "package"
	KeyWSDL         = "wsdl"
	KeyOutDirectory = "outdirectory"
	KeyJaxRS        = "jaxrs"
	KeyJaxWS        = "jaxws"
)

// Field describes one question of the generator.
type Field struct {
	Key     string
	Message string

	// Required fields must end up with a non-empty value.
	Required bool

	// WSDL2RestOnly fields are only asked when generating from a WSDL.
	WSDL2RestOnly bool

	// Validate checks an answer; nil accepts anything.
	Validate func(value string, wsdl2rest bool) error

	get func(in *Inputs) **string
}

var fields = []Field{
	{
		Key:      KeyName,
		Message:  "Your Camel project name",
		Required: true,
		get:      func(in *Inputs) **string { return &in.Name },
	},
	{
		Key:      KeyCamelVersion,
		Message:  "Your Camel version",
		Required: true,
		get:      func(in *Inputs) **string { return &in.CamelVersion },
	},
	{
		Key:      KeyCamelDSL,
		Message:  "Camel DSL type (blueprint, spring, spring-boot, or java)",
		Required: true,
		Validate: configschema.ValidateDSL,
		get:      func(in *Inputs) **string { return &in.CamelDSL },
	},
	{
		Key:      KeyPackage,
		Message:  "Package name:",
		Required: true,
		Validate: func(v string, _ bool) error { return configschema.ValidatePackage(v) },
		get:      func(in *Inputs) **string { return &in.Package },
	},
	{
		Key:           KeyWSDL,
		Message:       "URL to the input WSDL",
		Required:      true,
		WSDL2RestOnly: true,
		get:           func(in *Inputs) **string { return &in.WSDL },
	},
	{
		Key:           KeyOutDirectory,
		Message:       "Name of the output directory for generated artifacts",
		Required:      true,
		WSDL2RestOnly: true,
		get:           func(in *Inputs) **string { return &in.OutDirectory },
	},
	{
		Key:           KeyJaxRS,
		Message:       "Address of the generated jaxrs endpoint",
		WSDL2RestOnly: true,
		Validate:      func(v string, _ bool) error { return configschema.ValidateEndpoint(v) },
		get:           func(in *Inputs) **string { return &in.JaxRS },
	},
	{
		Key:           KeyJaxWS,
		Message:       "Address of the target jaxws endpoint",
		WSDL2RestOnly: true,
		Validate:      func(v string, _ bool) error { return configschema.ValidateEndpoint(v) },
		get:           func(in *Inputs) **string { return &in.JaxWS },
	},
}

func fieldByKey(key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// PlanPrompts returns the fields that still have to be asked for, in prompt
// order. It returns nil when every required field is supplied; the optional
// endpoint overrides are only asked alongside missing required answers.
func PlanPrompts(in Inputs, wsdl2rest bool) []Field {
	var missing []Field
	requiredMissing := false
	for _, f := range fields {
		if f.WSDL2RestOnly && !wsdl2rest {
			continue
		}
		if present(*f.get(&in)) {
			continue
		}
		if f.Required {
			requiredMissing = true
		}
		missing = append(missing, f)
	}
	if !requiredMissing {
		return nil
	}
	return missing
}
