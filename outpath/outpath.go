// Package outpath computes destination paths for generated files.
//
// When a group writes many inputs into one shared output tree, inputs from
// different subdirectories must not collide. The recursive resolver rebuilds
// the portion of an input's directory structure below a recognized source
// root inside the output tree; the flat resolver only maps the input's base
// name into the output directory.
package outpath

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pigeonbuild/cli/logger"
)

// DefaultRootMarker is the directory segment treated as the source tree
// root when rebuilding input structure.
const DefaultRootMarker = "lib"

// Resolver rewrites output paths for options carrying a directory-creation
// modifier.
type Resolver struct {
	// RootMarker overrides the source root segment. Empty means
	// DefaultRootMarker.
	RootMarker string
}

func (r Resolver) rootMarker() string {
	if r.RootMarker == "" {
		return DefaultRootMarker
	}
	return r.RootMarker
}

// Recursive maps inputFile into outputBase's directory, preserving the part
// of inputFile's directory structure below the root marker. The result
// keeps inputFile's base name but takes outputBase's extension.
//
// If the marker is absent and the input has at least two directory
// components, the last two components are kept; otherwise no nesting is
// added.
func (r Resolver) Recursive(outputBase, inputFile string) string {
	rel := r.relativeParts(filepath.Dir(inputFile))

	base := filepath.Base(inputFile)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + filepath.Ext(outputBase)

	parts := append([]string{filepath.Dir(outputBase)}, rel...)
	parts = append(parts, base)
	return filepath.Join(parts...)
}

// Flat maps inputFile's base name directly into outputBase treated as a
// directory. No structure is preserved.
func (r Resolver) Flat(outputBase, inputFile string) string {
	return filepath.Join(outputBase, filepath.Base(inputFile))
}

// EnsureDir creates path's directory chain if missing. Failure is a
// warning, not an error: the generator invocation proceeds and will surface
// its own failure if the path is genuinely unusable.
func EnsureDir(path string) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("cannot create output directory", "dir", dir, "error", err)
	}
}

func (r Resolver) relativeParts(inputDir string) []string {
	components := strings.Split(filepath.ToSlash(filepath.Clean(inputDir)), "/")

	for i, c := range components {
		if c == r.rootMarker() {
			return components[i+1:]
		}
	}
	if n := len(components); n >= 2 && components[0] != "." {
		return components[n-2:]
	}
	return nil
}
