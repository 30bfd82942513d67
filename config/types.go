package config

import "strings"

// DefaultFileName is the conventional config file looked up when no path is
// given on the command line.
const DefaultFileName = "pigeon_build.yaml"

// Document is a parsed config mapping with declaration order preserved.
// Field order matters: groups run in the order they are written, and option
// flags are emitted in the order they are written.
type Document struct {
	Fields []Field
}

// Field is one key/value entry of a Document. Values are bool, string,
// []any (list), *Document (nested mapping), or whatever else the source
// format produced; anything outside bool/string/list-of-string is rejected
// later, when options are translated to generator arguments.
type Field struct {
	Key   string
	Value any
}

// Get returns the value for key, if present.
func (d *Document) Get(key string) (any, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Modifier is the directory-creation marker an option key may carry.
type Modifier int

const (
	// ModifierNone: the value is passed through untouched.
	ModifierNone Modifier = iota
	// ModifierCreateDir: the value is an output directory; the input's base
	// name is appended and the directory is created if missing.
	ModifierCreateDir
	// ModifierCreateDirRecursive: like ModifierCreateDir, but the output
	// path additionally mirrors the input's directory structure below the
	// source root.
	ModifierCreateDirRecursive
)

const (
	createDirPrefix          = "create-dir:"
	createDirRecursivePrefix = "create-dir-recursive:"
)

// ParseOptionKey strips the directory-creation modifier prefix, if any,
// from an option key: "create-dir-recursive:dart_out" yields ("dart_out",
// ModifierCreateDirRecursive).
func ParseOptionKey(key string) (string, Modifier) {
	switch {
	case strings.HasPrefix(key, createDirRecursivePrefix):
		return strings.TrimPrefix(key, createDirRecursivePrefix), ModifierCreateDirRecursive
	case strings.HasPrefix(key, createDirPrefix):
		return strings.TrimPrefix(key, createDirPrefix), ModifierCreateDir
	default:
		return key, ModifierNone
	}
}

// Option is one generator option of a group, in declaration order.
type Option struct {
	Name     string
	Modifier Modifier
	Value    any
}

// DiscoveredFile is a resolved input path together with the specification
// it came from.
type DiscoveredFile struct {
	Path string
	Spec string
}

// Group is a named bundle of discovered input files sharing one option set.
type Group struct {
	Name    string
	Files   []DiscoveredFile
	Options []Option
}
