// Package discovery resolves input specifications to concrete source files.
//
// A specification is one of three things: a glob pattern (contains `*` or
// `?`), a directory, or a literal file path. Directories are listed one
// level deep; glob patterns are matched against every file under the
// pattern's directory at any depth. The asymmetry is deliberate: a
// directory input means "this folder only", a wildcard input means
// "everything under this tree".
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pigeonbuild/cli/logger"
)

// DefaultSourceExt is the extension the generator accepts as input.
const DefaultSourceExt = ".dart"

// Discoverer expands input specifications to file paths.
type Discoverer struct {
	// SourceExt filters directory listings to the generator's source
	// extension. Empty means DefaultSourceExt. The filter applies only to
	// directory inputs, not to wildcard patterns.
	SourceExt string
}

func (d Discoverer) sourceExt() string {
	if d.SourceExt == "" {
		return DefaultSourceExt
	}
	return d.SourceExt
}

// Discover resolves one input specification to an ordered list of file
// paths. Missing paths are not errors: they log a warning and contribute
// zero files.
func (d Discoverer) Discover(spec string) []string {
	if HasWildcard(spec) {
		return d.discoverGlob(spec)
	}

	info, err := os.Stat(spec)
	if err != nil {
		logger.Warn("input path not found, skipping", "spec", spec)
		return nil
	}

	if !info.IsDir() {
		return []string{spec}
	}

	entries, err := os.ReadDir(spec)
	if err != nil {
		logger.Warn("cannot list input directory, skipping", "dir", spec, "error", err)
		return nil
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), d.sourceExt()) {
			continue
		}
		files = append(files, filepath.Join(spec, entry.Name()))
	}
	return files
}

// discoverGlob walks the pattern's directory recursively and collects every
// regular file whose base name matches the pattern's final segment.
// Intermediate wildcard segments (`**` and friends) are subsumed by the
// recursive walk.
func (d Discoverer) discoverGlob(spec string) []string {
	dir, pattern := splitGlob(spec)

	if dir == "." {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Warn("pattern directory not found, skipping", "dir", dir, "spec", spec)
		return nil
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("cannot read path during discovery", "path", path, "error", err)
			return nil
		}
		if entry.Type().IsRegular() && Match(entry.Name(), pattern) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		logger.Warn("discovery walk failed", "dir", dir, "error", err)
		return nil
	}
	return files
}

// splitGlob splits a wildcard spec into the directory to walk and the file
// name pattern. The directory is the longest leading run of segments that
// contain no glob characters; the pattern is the spec's final segment.
func splitGlob(spec string) (dir, pattern string) {
	segments := strings.Split(filepath.ToSlash(spec), "/")
	pattern = segments[len(segments)-1]

	var prefix []string
	for _, seg := range segments[:len(segments)-1] {
		if strings.ContainsAny(seg, "*?") {
			break
		}
		prefix = append(prefix, seg)
	}
	dir = filepath.Join(prefix...)
	if dir == "" {
		return ".", pattern
	}
	if filepath.IsAbs(spec) && !filepath.IsAbs(dir) {
		dir = string(filepath.Separator) + dir
	}
	return dir, pattern
}
