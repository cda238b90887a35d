package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
)

// ErrDuplicateKey is matched (via errors.Is) by every duplicate key error.
var ErrDuplicateKey = ferrors.ValidationError("duplicate configuration key").Build()

func duplicateKeyError(path, key string, line int) error {
	b := ferrors.ValidationError("duplicate configuration key").
		WithContext("field", path).
		WithContext("key", key)
	if line > 0 {
		b = b.WithContext("line", line)
	}
	return b.Build()
}

// tomlDuplicateMessage matches the parse error BurntSushi/toml raises for a
// repeated key: "Key 'groups.error' has already been defined."
var tomlDuplicateMessage = regexp.MustCompile(`^Key '(.+)' has already been defined\.?$`)

// tomlDuplicateError converts a TOML decode error about a repeated key into a
// duplicate key error. It returns nil for any other error.
func tomlDuplicateError(err error) error {
	var pe toml.ParseError
	if !errors.As(err, &pe) {
		return nil
	}
	m := tomlDuplicateMessage.FindStringSubmatch(pe.Message)
	if m == nil {
		return nil
	}
	parent, key := ".", m[1]
	if i := strings.LastIndex(m[1], "."); i >= 0 {
		parent, key = m[1][:i], m[1][i+1:]
	}
	return duplicateKeyError(parent, key, pe.Position.Line)
}

// checkYAMLDuplicates walks every mapping in the document and rejects repeated keys.
func checkYAMLDuplicates(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		// Decoding errors are reported by the typed decode that follows.
		return nil
	}
	return walkYAML(&doc, "")
}

func walkYAML(n *yaml.Node, path string) error {
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			if err := walkYAML(c, path); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		seen := make(map[string]bool, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if seen[key.Value] {
				return duplicateKeyError(joinPath(path, ""), key.Value, key.Line)
			}
			seen[key.Value] = true
			if err := walkYAML(n.Content[i+1], joinPath(path, key.Value)); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkJSONDuplicates streams tokens, tracking keys per object.
func checkJSONDuplicates(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	err := walkJSON(dec, "")
	if _, ok := ferrors.AsClassified(err); ok {
		return err
	}
	// Syntax errors are reported by the typed decode that follows.
	return nil
}

func walkJSON(dec *json.Decoder, path string) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}
	switch delim {
	case '{':
		seen := map[string]bool{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return err
			}
			key := fmt.Sprint(kt)
			if seen[key] {
				return duplicateKeyError(joinPath(path, ""), key, 0)
			}
			seen[key] = true
			if err := walkJSON(dec, joinPath(path, key)); err != nil {
				return err
			}
		}
		_, err = dec.Token()
		return err
	case '[':
		for dec.More() {
			if err := walkJSON(dec, path); err != nil {
				return err
			}
		}
		_, err = dec.Token()
		return err
	}
	return nil
}

func joinPath(parent, key string) string {
	switch {
	case parent == "":
		if key == "" {
			return "."
		}
		return key
	case key == "":
		return parent
	default:
		return strings.Join([]string{parent, key}, ".")
	}
}
