// Package generators materializes a project from a template tree.
//
// Overview:
//   - Responsibility: Enumerate the template tree of a DSL flavor, recreate its
//     folders under a package-qualified layout, render every file that applies
//     to the active mode
//   - Key Types: TemplateEntry, Scaffolder, Report
//   - Concurrency Model: Sequential generation; one Scaffolder per destination
//   - Error Semantics: The first failure aborts; files already written stay on disk
//   - Performance Notes: One pass over the tree, one write per file
//
// Usage:
//
//	s := generators.NewScaffolder(projectfs.New(dest), templates.NewLoader(nil), logger)
//	report, err := s.Materialize(cfg)
package generators

// Kind distinguishes folders from files in a template tree.
type Kind int

const (
	KindFolder Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindFolder {
		return "folder"
	}
	return "file"
}

// Skip states in which mode a template file is materialized.
type Skip int

const (
	// SkipNone files are written in both modes.
	SkipNone Skip = iota
	// PlainOnly files are replaced or produced by the wsdl2rest converter.
	PlainOnly
	// WSDL2RestOnly files are only written when generating from a WSDL.
	WSDL2RestOnly
)

// TemplateEntry is one folder or file of a template tree.
type TemplateEntry struct {
	// RelativePath is slash-separated and relative to the flavor directory.
	RelativePath string
	Kind         Kind
	Skip         Skip
}

// Included reports whether the entry is materialized in the given mode.
func (e TemplateEntry) Included(wsdl2rest bool) bool {
	switch e.Skip {
	case PlainOnly:
		return !wsdl2rest
	case WSDL2RestOnly:
		return wsdl2rest
	default:
		return true
	}
}

// Report summarizes one materialization. Paths are relative to the
// destination root.
type Report struct {
	Flavor       string
	CreatedDirs  []string
	ExistingDirs []string
	Written      []string
	Skipped      []string
}
