package xpath

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/MacroPower/xpath/pkg/pathexpand"
)

// ErrUnsupportedNode indicates a YAML node that can't hold a path.
var ErrUnsupportedNode = errors.New("unsupported yaml node")

// MarshalText encodes p in its native form.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText resolves text with the [Default] resolver.
func (p *Path) UnmarshalText(text []byte) error {
	r, err := Default().ResolveBytes(text)
	if err != nil {
		return err
	}

	*p = r

	return nil
}

// MarshalJSON encodes p as a JSON string in its native form.
func (p Path) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(p.String())
	if err != nil {
		return nil, fmt.Errorf("marshal path: %w", err)
	}

	return b, nil
}

// UnmarshalJSON accepts a string or a list of strings (see [Parts]) and
// resolves it with the [Default] resolver. JSON null leaves p unchanged.
func (p *Path) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	var parts Parts
	if err := parts.UnmarshalJSON(data); err != nil {
		return err
	}

	r, err := Default().ResolveParts(parts)
	if err != nil {
		return err
	}

	*p = r

	return nil
}

// MarshalYAML encodes p as a YAML string in its native form.
func (p Path) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars (see [Parts]) and
// resolves it with the [Default] resolver. Errors include the position of
// the node.
func (p *Path) UnmarshalYAML(node *yaml.Node) error {
	var parts Parts
	if err := parts.UnmarshalYAML(node); err != nil {
		return err
	}

	r, err := Default().ResolveParts(parts)
	if err != nil {
		return NodeError(node, err)
	}

	*p = r

	return nil
}

// JSONSchema describes the encoded form of a path. When a [Path] is a
// struct field, the reflector replaces the description with the field's
// jsonschema_description tag, so tag fields that need one.
func (Path) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
		Description: "A filesystem path. May start with ~ or ., and contain ${VAR} or %VAR% segments.",
	}
}

// UnmarshalJSON accepts a JSON string or a list of strings.
func (p *Parts) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("unmarshal path parts: %w", err)
		}

		*p = list

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unmarshal path: %w", err)
	}

	*p = Parts{s}

	return nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars. In a sequence,
// an unquoted "~" is the home directory shorthand, and any other null item
// is an error.
func (p *Parts) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*p = Parts{node.Value}
	case yaml.SequenceNode:
		list := make(Parts, 0, len(node.Content))
		for _, item := range node.Content {
			part, err := sequencePart(item)
			if err != nil {
				return err
			}

			list = append(list, part)
		}

		*p = list
	default:
		return NodeError(node, fmt.Errorf("%w: expected a string or a list of strings", ErrUnsupportedNode))
	}

	return nil
}

func sequencePart(item *yaml.Node) (string, error) {
	if item.Kind != yaml.ScalarNode {
		return "", NodeError(item, fmt.Errorf("%w: path parts must be strings", ErrUnsupportedNode))
	}

	if item.ShortTag() == "!!null" {
		if item.Value == string(pathexpand.HomeMarker) {
			return item.Value, nil
		}

		return "", NodeError(item, fmt.Errorf("%w: null path part", ErrUnsupportedNode))
	}

	return item.Value, nil
}

// NodeError annotates err with the position of node.
func NodeError(node *yaml.Node, err error) error {
	return fmt.Errorf("%w at line %d column %d", err, node.Line, node.Column)
}
