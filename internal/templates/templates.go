// Package templates provides the project template trees and their renderer.
//
// Overview:
//   - Responsibility: Expose the per-flavor template trees, render template files
//   - Key Types: Loader, Data, UserProps
//   - Concurrency Model: Loader is immutable after construction and safe for concurrent use
//   - Error Semantics: Parse and execution failures are INTERNAL errors naming the template
//   - Performance Notes: Templates are parsed on every render; trees are small
//
// Templates use "<%=" and "%>" as action delimiters so that Camel property
// placeholders ("{{name}}") pass through untouched.
//
// Usage:
//
//	loader := templates.NewLoader(nil)
//	out, err := loader.LoadAndRender("spring/pom.xml", templates.NewData(cfg))
package templates

import (
	"bytes"
	"embed"
	"encoding/xml"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"

	"go.eggybyte.com/camelgen/internal/configschema"
	"go.eggybyte.com/camelgen/internal/core/errors"
)

// Action delimiters of every project template.
const (
	LeftDelim  = "<%="
	RightDelim = "%>"
)

//go:embed all:templates
var templateFS embed.FS

// Embedded returns the built-in template trees, one top-level directory per
// DSL flavor.
func Embedded() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// UserProps is the set of values visible to templates.
type UserProps struct {
	Name         string
	CamelVersion string
	CamelDSL     string
	Package      string
}

// Data is the template namespace: templates reference .UserProps.<Field>.
type Data struct {
	UserProps UserProps
}

// NewData builds the template namespace for cfg.
func NewData(cfg configschema.Config) Data {
	return Data{UserProps: UserProps{
		Name:         cfg.Name,
		CamelVersion: cfg.CamelVersion,
		CamelDSL:     string(cfg.CamelDSL),
		Package:      cfg.Package,
	}}
}

// IsMarkup reports whether a template renders to XML: *.xml files and their
// wsdl2rest variants such as pom.xml.wsdl2rest.
func IsMarkup(name string) bool {
	name = strings.TrimSuffix(name, ".wsdl2rest")
	return strings.HasSuffix(name, ".xml")
}

func (d Data) escaped() Data {
	return Data{UserProps: UserProps{
		Name:         escapeXML(d.UserProps.Name),
		CamelVersion: escapeXML(d.UserProps.CamelVersion),
		CamelDSL:     escapeXML(d.UserProps.CamelDSL),
		Package:      escapeXML(d.UserProps.Package),
	}}
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// Loader provides template loading and rendering functionality.
//
// Concurrency:
//   - Safe for concurrent use
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader over fsys. A nil fsys selects the embedded trees.
func NewLoader(fsys fs.FS) *Loader {
	if fsys == nil {
		fsys = Embedded()
	}
	return &Loader{fsys: fsys}
}

// FS returns the file system the loader reads from.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// Flavors lists the top-level template directories in lexical order.
func (l *Loader) Flavors() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "list flavors", err)
	}
	var flavors []string
	for _, e := range entries {
		if e.IsDir() {
			flavors = append(flavors, e.Name())
		}
	}
	return flavors, nil
}

// List returns every file of a flavor, slash-separated and relative to the
// flavor directory.
func (l *Loader) List(flavor string) ([]string, error) {
	var files []string
	err := fs.WalkDir(l.fsys, flavor, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, strings.TrimPrefix(p, flavor+"/"))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(errors.CodeNotFound, "list templates", err, "no templates for flavor %q", flavor)
	}
	sort.Strings(files)
	return files, nil
}

// Load reads a template file.
//
// Parameters:
//   - templatePath: Slash-separated path, starting with the flavor directory
//
// Returns:
//   - string: Template content
//   - error: NOT_FOUND when the file does not exist
func (l *Loader) Load(templatePath string) (string, error) {
	content, err := fs.ReadFile(l.fsys, templatePath)
	if err != nil {
		return "", errors.Wrapf(errors.CodeNotFound, "load template", err, "failed to load template %s", templatePath)
	}
	return string(content), nil
}

// Render executes templateContent with data. When name is an XML template
// and data is a Data, every UserProps value is XML-escaped first.
func (l *Loader) Render(name, templateContent string, data any) ([]byte, error) {
	tmpl, err := parse(name, templateContent)
	if err != nil {
		return nil, err
	}
	if d, ok := data.(Data); ok && IsMarkup(name) {
		data = d.escaped()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(errors.CodeInternal, "render template", err, "failed to render template %s", name)
	}
	return buf.Bytes(), nil
}

// LoadAndRender loads a template and renders it with data.
func (l *Loader) LoadAndRender(templatePath string, data any) ([]byte, error) {
	content, err := l.Load(templatePath)
	if err != nil {
		return nil, err
	}
	return l.Render(templatePath, content, data)
}

// ValidateAll renders every template of every flavor against sample values
// and returns one error per broken template.
func (l *Loader) ValidateAll() ([]error, error) {
	flavors, err := l.Flavors()
	if err != nil {
		return nil, err
	}

	var problems []error
	for _, flavor := range flavors {
		files, err := l.List(flavor)
		if err != nil {
			return nil, err
		}
		sample := Data{UserProps: UserProps{
			Name:         "sample",
			CamelVersion: "2.18.1",
			CamelDSL:     flavor,
			Package:      "com.sample",
		}}
		for _, f := range files {
			if _, err := l.LoadAndRender(path.Join(flavor, f), sample); err != nil {
				problems = append(problems, err)
			}
		}
	}
	return problems, nil
}

func parse(name, content string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"ToUpper":     strings.ToUpper,
		"ToLower":     strings.ToLower,
		"PackagePath": configschema.PackageToPath,
	}

	tmpl, err := template.New(path.Base(name)).
		Delims(LeftDelim, RightDelim).
		Option("missingkey=error").
		Funcs(funcMap).
		Parse(content)
	if err != nil {
		return nil, errors.Wrapf(errors.CodeInternal, "parse template", err, "failed to parse template %s", name)
	}
	return tmpl, nil
}
