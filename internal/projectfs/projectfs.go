// Package projectfs provides the file system operations used to lay out a
// generated project.
//
// Overview:
//   - Responsibility: Create folders, write rendered files, probe existing files
//   - Key Types: ProjectFS rooted at the destination directory
//   - Concurrency Model: Sequential file operations
//   - Error Semantics: File system failures are INTERNAL errors naming the relative path
//   - Performance Notes: Idempotent directory creation, one write per file
//
// Usage:
//
//	pfs := projectfs.New(dest)
//	_, err := pfs.CreateDirectory("src/main/java/com/acme")
//	err = pfs.WriteFile("pom.xml", content, 0644)
package projectfs

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.eggybyte.com/camelgen/internal/core/errors"
	"go.eggybyte.com/camelgen/internal/ui"
)

// ProjectFS performs file operations relative to a project root.
type ProjectFS struct {
	rootDir string
	verbose bool
}

// New creates a ProjectFS rooted at rootDir.
func New(rootDir string) *ProjectFS {
	return &ProjectFS{rootDir: rootDir}
}

// SetVerbose enables per-operation debug output.
func (p *ProjectFS) SetVerbose(enabled bool) {
	p.verbose = enabled
}

// Root returns the project root directory.
func (p *ProjectFS) Root() string {
	return p.rootDir
}

// Path returns the absolute-or-rooted form of a slash-separated relative path.
func (p *ProjectFS) Path(rel string) string {
	return filepath.Join(p.rootDir, filepath.FromSlash(rel))
}

// CreateDirectory creates a directory and its parents. An existing directory
// is not an error; created reports whether anything was made.
//
// Parameters:
//   - rel: Slash-separated path relative to the root
//
// Returns:
//   - bool: True when the directory did not exist before
//   - error: INTERNAL error when creation fails or a file occupies the path
func (p *ProjectFS) CreateDirectory(rel string) (bool, error) {
	fullPath := p.Path(rel)

	if info, err := os.Stat(fullPath); err == nil {
		if !info.IsDir() {
			return false, errors.Newf(errors.CodeInternal, "cannot create directory %s: a file with that name exists", rel)
		}
		if p.verbose {
			ui.Debug("Directory already exists: %s", rel)
		}
		return false, nil
	}

	if err := os.MkdirAll(fullPath, 0755); err != nil {
		return false, errors.Wrapf(errors.CodeInternal, "create directory", err, "failed to create directory %s", rel)
	}

	if p.verbose {
		ui.Debug("Created directory: %s", rel)
	}
	return true, nil
}

// WriteFile writes content to rel, creating parent directories as needed.
// Existing files are overwritten.
func (p *ProjectFS) WriteFile(rel string, content []byte, mode fs.FileMode) error {
	fullPath := p.Path(rel)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return errors.Wrapf(errors.CodeInternal, "write file", err, "failed to create parent directory for %s", rel)
	}
	if err := os.WriteFile(fullPath, content, mode); err != nil {
		return errors.Wrapf(errors.CodeInternal, "write file", err, "failed to write file %s", rel)
	}

	if p.verbose {
		ui.Debug("Written file: %s", rel)
	}
	return nil
}

// FileExists checks if a file or directory exists at rel.
func (p *ProjectFS) FileExists(rel string) (bool, error) {
	_, err := os.Stat(p.Path(rel))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// DirectoryExists checks if rel is an existing directory.
func (p *ProjectFS) DirectoryExists(rel string) (bool, error) {
	info, err := os.Stat(p.Path(rel))
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ReadFile reads the file at rel.
func (p *ProjectFS) ReadFile(rel string) ([]byte, error) {
	content, err := os.ReadFile(p.Path(rel))
	if err != nil {
		return nil, errors.Wrapf(errors.CodeInternal, "read file", err, "failed to read file %s", rel)
	}
	return content, nil
}
