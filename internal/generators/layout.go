package generators

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"go.eggybyte.com/camelgen/internal/configschema"
	"go.eggybyte.com/camelgen/internal/core/errors"
)

// JavaSourceRoot is the source folder that gets the package path appended.
const JavaSourceRoot = "src/main/java"

// WSDL2RestPom is the pom variant carrying the CXF dependencies the
// converter's output needs. It is written as pom.xml.
const WSDL2RestPom = "pom.xml.wsdl2rest"

// plainOnlyFiles are replaced by WSDL2RestPom or regenerated by the
// converter in wsdl2rest mode.
var plainOnlyFiles = map[string]struct{}{
	"pom.xml":           {},
	"camel-context.xml": {},
	"blueprint.xml":     {},
}

func classify(rel string) Skip {
	base := path.Base(rel)
	if base == WSDL2RestPom {
		return WSDL2RestOnly
	}
	if _, ok := plainOnlyFiles[base]; ok {
		return PlainOnly
	}
	return SkipNone
}

// Enumerate lists every folder and file below the flavor directory dsl of
// fsys, dotfiles included, in walk order (parents before children).
func Enumerate(fsys fs.FS, dsl string) ([]TemplateEntry, error) {
	var entries []TemplateEntry
	err := fs.WalkDir(fsys, dsl, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == dsl {
			return nil
		}
		rel := strings.TrimPrefix(p, dsl+"/")
		if d.IsDir() {
			entries = append(entries, TemplateEntry{RelativePath: rel, Kind: KindFolder})
			return nil
		}
		entries = append(entries, TemplateEntry{RelativePath: rel, Kind: KindFile, Skip: classify(rel)})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(errors.CodeNotFound, "enumerate templates", err,
			"no template tree for Camel DSL %q", dsl)
	}
	return entries, nil
}

// RewritePath inserts the package directories after every src/main/java
// segment sequence of rel. Paths without that sequence are returned
// unchanged, as is rel when pkg is empty.
//
//	RewritePath("src/main/java/routes", "com.acme") == "src/main/java/com/acme/routes"
func RewritePath(rel, pkg string) string {
	if pkg == "" {
		return rel
	}
	segments := strings.Split(rel, "/")
	pkgSegments := strings.Split(configschema.PackageToPath(pkg), "/")

	out := make([]string, 0, len(segments)+len(pkgSegments))
	for i := 0; i < len(segments); i++ {
		out = append(out, segments[i])
		if i >= 2 && segments[i-2] == "src" && segments[i-1] == "main" && segments[i] == "java" {
			out = append(out, pkgSegments...)
		}
	}
	return strings.Join(out, "/")
}

// OutputName maps a template file path to the file it produces.
func OutputName(rel string) string {
	if path.Base(rel) == WSDL2RestPom {
		return path.Join(path.Dir(rel), "pom.xml")
	}
	return rel
}

// Folders returns the distinct output folders of entries for package pkg,
// sorted.
func Folders(entries []TemplateEntry, pkg string) []string {
	seen := make(map[string]struct{})
	var folders []string
	for _, e := range entries {
		if e.Kind != KindFolder {
			continue
		}
		out := RewritePath(e.RelativePath, pkg)
		if _, ok := seen[out]; ok {
			continue
		}
		seen[out] = struct{}{}
		folders = append(folders, out)
	}
	sort.Strings(folders)
	return folders
}
