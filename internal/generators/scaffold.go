package generators

import (
	"path"

	"go.eggybyte.com/camelgen/internal/configschema"
	"go.eggybyte.com/camelgen/internal/core/errors"
	"go.eggybyte.com/camelgen/internal/core/log"
	"go.eggybyte.com/camelgen/internal/projectfs"
	"go.eggybyte.com/camelgen/internal/templates"
)

// Scaffolder writes a project from a template tree into a destination.
//
// Concurrency:
//   - Not safe for concurrent use on the same destination
type Scaffolder struct {
	fs     *projectfs.ProjectFS
	loader *templates.Loader
	logger log.Logger
}

// NewScaffolder creates a scaffolder. A nil logger discards log output.
func NewScaffolder(pfs *projectfs.ProjectFS, loader *templates.Loader, logger log.Logger) *Scaffolder {
	if logger == nil {
		logger = log.Nop()
	}
	return &Scaffolder{fs: pfs, loader: loader, logger: logger}
}

// Materialize creates every folder of the cfg.CamelDSL tree and renders every
// file that applies to the active mode.
//
// Parameters:
//   - cfg: Validated configuration
//
// Returns:
//   - *Report: What was created, written and skipped (also on failure)
//   - error: NOT_FOUND for an unknown tree, INTERNAL for render and I/O failures
func (s *Scaffolder) Materialize(cfg configschema.Config) (*Report, error) {
	flavor := string(cfg.CamelDSL)
	report := &Report{Flavor: flavor}
	logger := s.logger.With(log.Str("flavor", flavor), log.Str("package", cfg.Package))

	entries, err := Enumerate(s.loader.FS(), flavor)
	if err != nil {
		return report, err
	}

	logger.Info("Creating folders")
	for _, e := range entries {
		if e.Kind != KindFolder {
			continue
		}
		out := RewritePath(e.RelativePath, cfg.Package)
		created, err := s.fs.CreateDirectory(out)
		if err != nil {
			return report, err
		}
		if created {
			report.CreatedDirs = append(report.CreatedDirs, out)
		} else {
			report.ExistingDirs = append(report.ExistingDirs, out)
		}
	}

	logger.Info("Copying files", log.Bool("wsdl2rest", cfg.WSDL2Rest))
	data := templates.NewData(cfg)
	for _, e := range entries {
		if e.Kind != KindFile {
			continue
		}
		if !e.Included(cfg.WSDL2Rest) {
			logger.Debug("template skipped", log.Str("template", e.RelativePath))
			report.Skipped = append(report.Skipped, e.RelativePath)
			continue
		}

		content, err := s.loader.LoadAndRender(path.Join(flavor, e.RelativePath), data)
		if err != nil {
			logger.Error(err, "template rendering failed", log.Str("template", e.RelativePath))
			return report, err
		}

		out := RewritePath(OutputName(e.RelativePath), cfg.Package)
		if err := s.fs.WriteFile(out, content, 0644); err != nil {
			return report, errors.Wrapf(errors.CodeInternal, "materialize", err, "failed to write %s", out)
		}
		logger.Debug("template rendered", log.Str("template", e.RelativePath), log.Str("output", out))
		report.Written = append(report.Written, out)
	}

	logger.Info("Project materialized",
		log.Int("folders", len(report.CreatedDirs)+len(report.ExistingDirs)),
		log.Int("files", len(report.Written)),
		log.Int("skipped", len(report.Skipped)))
	return report, nil
}
