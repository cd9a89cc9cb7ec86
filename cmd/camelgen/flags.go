package main

import (
	"github.com/spf13/cobra"

	"go.eggybyte.com/camelgen/internal/params"
)

// projectFlags are the answer flags shared by new and wsdl2rest. Only flags
// set on the command line become inputs.
type projectFlags struct {
	name         string
	camelVersion string
	camelDSL     string
	pkg          string
	wsdl         string
	outDirectory string
	jaxrs        string
	jaxws        string

	dest      string
	templates string
	debug     bool
}

func (f *projectFlags) register(cmd *cobra.Command, withProject bool) {
	flags := cmd.Flags()
	if withProject {
		flags.StringVar(&f.name, "name", "", "Camel project name (default: destination directory name)")
		flags.StringVar(&f.camelVersion, "camel-version", "", "Camel version (default: 2.18.1 or the stored answer)")
		flags.StringVar(&f.pkg, "package", "", "Java package of the generated sources (default: com.<name>)")
		flags.StringVar(&f.templates, "templates", "", "Directory overriding the built-in templates")
	}
	flags.StringVar(&f.camelDSL, "camel-dsl", "", "Camel DSL: spring, spring-boot, blueprint or java")
	flags.StringVar(&f.wsdl, "wsdl", "", "URL or path of the input WSDL")
	flags.StringVar(&f.outDirectory, "out-directory", "", "Output directory for generated artifacts (default: src/main/java)")
	flags.StringVar(&f.jaxrs, "jaxrs", "", "Address of the generated jaxrs endpoint")
	flags.StringVar(&f.jaxws, "jaxws", "", "Address of the target jaxws endpoint")
	flags.StringVarP(&f.dest, "dest", "d", ".", "Project directory")
	flags.BoolVar(&f.debug, "debug", false, "Stream wsdl2rest output to the console")
}

func (f *projectFlags) inputs(cmd *cobra.Command) params.Inputs {
	var in params.Inputs
	set := func(flag string, target **string, value string) {
		if cmd.Flags().Changed(flag) {
			*target = params.String(value)
		}
	}
	set("name", &in.Name, f.name)
	set("camel-version", &in.CamelVersion, f.camelVersion)
	set("camel-dsl", &in.CamelDSL, f.camelDSL)
	set("package", &in.Package, f.pkg)
	set("wsdl", &in.WSDL, f.wsdl)
	set("out-directory", &in.OutDirectory, f.outDirectory)
	set("jaxrs", &in.JaxRS, f.jaxrs)
	set("jaxws", &in.JaxWS, f.jaxws)
	return in
}

// resolveInputs merges key=value arguments with flags; flags win.
func (f *projectFlags) resolveInputs(cmd *cobra.Command, args []string) (params.Inputs, error) {
	in, err := params.ParseAssignments(args)
	if err != nil {
		return params.Inputs{}, err
	}
	return in.Merge(f.inputs(cmd)), nil
}
