package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a config document. The format is chosen by
// extension: `.json` and `.jsonc` go through the JSONC front-end (comments
// and trailing commas allowed), everything else is parsed as YAML.
// Any read or parse failure here is fatal to the run.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		doc, err := parseJSON(data)
		if err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
		return doc, nil
	default:
		doc, err := parseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
		return doc, nil
	}
}

func parseYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return &Document{}, nil
	}
	return yamlMapping(root.Content[0])
}

func yamlMapping(n *yaml.Node) (*Document, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", n.Line)
	}

	doc := &Document{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		var key string
		if err := n.Content[i].Decode(&key); err != nil {
			return nil, fmt.Errorf("line %d: bad key: %w", n.Content[i].Line, err)
		}
		val, err := yamlValue(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		doc.Fields = append(doc.Fields, Field{Key: key, Value: val})
	}
	return doc, nil
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return yamlMapping(n)
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: bad value: %w", n.Line, err)
		}
		return v, nil
	}
}

// parseJSON standardizes JSONC to plain JSON, then walks it token by token
// so object member order survives.
func parseJSON(data []byte) (*Document, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(std))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected a top-level object, got %v", tok)
	}
	return jsonObject(dec)
}

func jsonObject(dec *json.Decoder) (*Document, error) {
	doc := &Document{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		doc.Fields = append(doc.Fields, Field{Key: key, Value: val})
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return doc, nil
}

func jsonValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			var list []any
			for dec.More() {
				v, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		default:
			return nil, fmt.Errorf("unexpected %v", t)
		}
	default:
		return tok, nil
	}
}
