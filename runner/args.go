package runner

import (
	"fmt"
	"path/filepath"

	"github.com/pigeonbuild/cli/config"
	"github.com/pigeonbuild/cli/outpath"
)

// buildArgs translates a group's options into the generator's argument
// syntax for one input file. Booleans become bare flags (true) or nothing
// (false); strings become flag/value pairs, after output-path rewriting
// when the key carried a directory-creation modifier; lists emit one
// flag/value pair per element. Any other value type is an error, counted
// as that file's failure.
func (r *Runner) buildArgs(g config.Group, f config.DiscoveredFile) ([]string, error) {
	input := f.Path
	if resolved, err := filepath.EvalSymlinks(input); err == nil {
		input = resolved
	}

	args := []string{"--input", input}

	for _, opt := range g.Options {
		flag := "--" + opt.Name

		switch v := opt.Value.(type) {
		case bool:
			if v {
				args = append(args, flag)
			}
		case string:
			if v == "" {
				continue
			}
			val := v
			switch opt.Modifier {
			case config.ModifierCreateDir:
				val = r.resolver.Flat(v, f.Path)
				outpath.EnsureDir(val)
			case config.ModifierCreateDirRecursive:
				val = r.resolver.Recursive(v, f.Path)
				outpath.EnsureDir(val)
			}
			args = append(args, flag, val)
		case []any:
			for _, e := range v {
				s, ok := e.(string)
				if !ok {
					return nil, fmt.Errorf("option %q: list values must be strings, got %T", opt.Name, e)
				}
				args = append(args, flag, s)
			}
		default:
			return nil, fmt.Errorf("option %q: unsupported value type %T", opt.Name, opt.Value)
		}
	}
	return args, nil
}
