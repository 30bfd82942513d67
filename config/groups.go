package config

import (
	"fmt"

	"github.com/pigeonbuild/cli/discovery"
	"github.com/pigeonbuild/cli/logger"
)

// Keys that are part of the group structure itself and never become
// generator options.
var reservedKeys = map[string]bool{
	"input":       true,
	"inputs":      true,
	"input_files": true,
	"folder":      true,
	"pattern":     true,
	"groups":      true,
}

// ResolveGroups expands a config document into groups with their input
// files discovered. Groups come back in declaration order; a group whose
// inputs resolve to zero files is dropped silently. When the document has
// no `groups` mapping, or no group contributed any file, the document's own
// top level becomes one implicit group named "default".
func ResolveGroups(doc *Document, disc discovery.Discoverer) ([]Group, error) {
	var groups []Group

	if v, ok := doc.Get("groups"); ok {
		mapping, ok := v.(*Document)
		if !ok {
			return nil, fmt.Errorf("groups must be a mapping of group name to group config")
		}

		seen := make(map[string]bool)
		for _, f := range mapping.Fields {
			if seen[f.Key] {
				return nil, fmt.Errorf("duplicate group name %q", f.Key)
			}
			seen[f.Key] = true

			gc, ok := f.Value.(*Document)
			if !ok {
				return nil, fmt.Errorf("group %q must be a mapping", f.Key)
			}
			g, err := expandGroup(f.Key, gc, disc)
			if err != nil {
				return nil, err
			}
			if len(g.Files) == 0 {
				logger.Debug("group has no input files, dropping", "group", f.Key)
				continue
			}
			groups = append(groups, g)
		}
	}

	// Legacy flat documents, and group documents where nothing matched,
	// fall back to a single implicit group built from the top level.
	if len(groups) == 0 {
		g, err := expandGroup("default", doc, disc)
		if err != nil {
			return nil, err
		}
		if len(g.Files) > 0 {
			groups = append(groups, g)
		}
	}

	return groups, nil
}

func expandGroup(name string, gc *Document, disc discovery.Discoverer) (Group, error) {
	g := Group{Name: name}

	for _, f := range gc.Fields {
		switch f.Key {
		case "input", "inputs", "input_files":
			specs, err := inputSpecs(f.Key, f.Value)
			if err != nil {
				return Group{}, fmt.Errorf("group %q: %w", name, err)
			}
			for _, spec := range specs {
				for _, path := range disc.Discover(spec) {
					g.Files = append(g.Files, DiscoveredFile{Path: path, Spec: spec})
				}
			}
		default:
			if reservedKeys[f.Key] {
				continue
			}
			optName, mod := ParseOptionKey(f.Key)
			g.Options = append(g.Options, Option{Name: optName, Modifier: mod, Value: f.Value})
		}
	}
	return g, nil
}

// inputSpecs accepts a single spec string or a list of spec strings.
func inputSpecs(key string, v any) ([]string, error) {
	switch t := v.(type) {
	case string:
		return []string{t}, nil
	case []any:
		specs := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%s entries must be strings, got %T", key, e)
			}
			specs = append(specs, s)
		}
		return specs, nil
	default:
		return nil, fmt.Errorf("%s must be a string or a list of strings, got %T", key, v)
	}
}
