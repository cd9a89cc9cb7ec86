// Package wsdl2rest drives the external wsdl2rest converter, which turns a
// SOAP WSDL into a REST facade and rewrites the routing context of a project.
//
// Overview:
//   - Responsibility: Locate the converter jar, assemble its command line,
//     run it and report the outcome
//   - Key Types: Invocation, Invoker, Result, ExitError
//   - Concurrency Model: One subprocess per Run; its output is streamed by toolrunner
//   - Error Semantics: FAILED_PRECONDITION for the java DSL, NOT_FOUND when no jar
//     is installed, *ExitError for a nonzero exit
//   - Performance Notes: Dominated by the JVM; camelgen itself only waits
//
// Usage:
//
//	inv := wsdl2rest.NewInvoker(settings, wsdl2rest.WithSink(os.Stdout))
//	result, err := inv.Run(ctx, wsdl2rest.Request{Config: cfg, ProjectDir: dest})
package wsdl2rest

import (
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.eggybyte.com/camelgen/internal/configschema"
	"go.eggybyte.com/camelgen/internal/core/errors"
)

// Context locations, relative to the project root, that the converter rewrites.
const (
	SpringContextPath     = "src/main/resources/META-INF/spring/camel-context.xml"
	SpringBootContextPath = "src/main/resources/spring/camel-context.xml"
	BlueprintContextPath  = "src/main/resources/OSGI-INF/blueprint/blueprint.xml"
)

// Invocation is one fully resolved converter command line.
type Invocation struct {
	ID          string
	JarPath     string
	LogConfig   string
	WSDL        string
	OutputPath  string
	ContextPath string
	DSL         configschema.DSL
	JaxRSURL    string
	JaxWSURL    string
	Debug       bool
}

// Args returns the java arguments of the invocation, flags in fixed order.
func (inv Invocation) Args() []string {
	args := []string{
		"-Dlog4j.configuration=" + inv.LogConfig,
		"-jar", inv.JarPath,
		"--wsdl", inv.WSDL,
		"--out", inv.OutputPath,
		ContextFlag(inv.DSL), inv.ContextPath,
	}
	if inv.JaxRSURL != "" {
		args = append(args, "--jaxrs", inv.JaxRSURL)
	}
	if inv.JaxWSURL != "" {
		args = append(args, "--jaxws", inv.JaxWSURL)
	}
	return args
}

// CommandLine renders the invocation for logs.
func (inv Invocation) CommandLine(java string) string {
	return java + " " + strings.Join(inv.Args(), " ")
}

// ContextPath returns the routing context location of a DSL flavor, or ""
// for flavors without an XML context.
func ContextPath(dsl configschema.DSL) string {
	switch dsl {
	case configschema.DSLSpring:
		return SpringContextPath
	case configschema.DSLSpringBoot:
		return SpringBootContextPath
	case configschema.DSLBlueprint:
		return BlueprintContextPath
	default:
		return ""
	}
}

// ContextFlag returns the converter option naming the context file.
func ContextFlag(dsl configschema.DSL) string {
	if dsl == configschema.DSLBlueprint {
		return "--blueprint-context"
	}
	return "--camel-context"
}

// FindJar returns the converter jar in dir: a *.jar file whose name contains
// "wsdl2rest". Repackaging leftovers (*.original), sources and javadoc jars
// are ignored. When several match, the lexically first wins.
func FindJar(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	var candidates []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.Contains(name, "wsdl2rest") {
			continue
		}
		if strings.HasSuffix(name, ".original") || !strings.HasSuffix(name, ".jar") {
			continue
		}
		if strings.HasSuffix(name, "-sources.jar") || strings.HasSuffix(name, "-javadoc.jar") {
			continue
		}
		candidates = append(candidates, name)
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Strings(candidates)
	return filepath.Join(dir, candidates[0]), true
}

// NormalizeWSDL returns the converter's --wsdl argument: http, https and
// file URLs pass through, local paths become absolute file URIs.
func NormalizeWSDL(src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", errors.New(errors.CodeInvalidArgument, "a WSDL location is required")
	}

	lower := strings.ToLower(src)
	for _, scheme := range []string{"http://", "https://", "file:"} {
		if strings.HasPrefix(lower, scheme) {
			return src, nil
		}
	}
	return FileURI(src)
}

// FileURI converts a local path into an absolute file:// URI.
func FileURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(errors.CodeInvalidArgument, "file uri", err, "cannot resolve path %s", path)
	}
	slashed := filepath.ToSlash(abs)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	u := url.URL{Scheme: "file", Path: slashed}
	return u.String(), nil
}
