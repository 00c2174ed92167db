package pathkind

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/MacroPower/xpath/pkg/xpath"
)

// Typed is a path that has passed the check of K.
type Typed[K Kind] struct {
	path xpath.Path
}

type (
	AnyPath      = Typed[AnyKind]
	AbsPath      = Typed[AbsKind]
	RelPath      = Typed[RelKind]
	AbsDir       = Typed[DirKind]
	AbsFile      = Typed[FileKind]
	ExistingDir  = Typed[ExistingDirKind]
	ExistingFile = Typed[ExistingFileKind]
)

// New checks p against K.
func New[K Kind](p xpath.Path) (Typed[K], error) {
	var k K

	checked, err := k.Check(p)
	if err != nil {
		return Typed[K]{}, err
	}

	return Typed[K]{path: checked}, nil
}

// Parse resolves raw with the default resolver and checks it against K.
func Parse[K Kind](raw string) (Typed[K], error) {
	return ParseWith[K](xpath.Default(), raw)
}

// ParseWith resolves raw with r and checks it against K.
func ParseWith[K Kind](r *xpath.Resolver, raw string) (Typed[K], error) {
	p, err := r.Resolve(raw)
	if err != nil {
		return Typed[K]{}, err
	}

	return New[K](p)
}

// MustParse is like [Parse] but panics on error.
func MustParse[K Kind](raw string) Typed[K] {
	t, err := Parse[K](raw)
	if err != nil {
		panic(err)
	}

	return t
}

// Path returns the wrapped path.
func (t Typed[K]) Path() xpath.Path {
	return t.path
}

// String returns the path in its native form.
func (t Typed[K]) String() string {
	return t.path.String()
}

// GoString returns the in-memory form of the path, named after its kind.
func (t Typed[K]) GoString() string {
	var k K

	return fmt.Sprintf("pathkind.%s(%q)", k.Name(), t.path.Raw())
}

// MarshalText encodes the contracted form of the path.
func (t Typed[K]) MarshalText() ([]byte, error) {
	return []byte(t.path.Contracted().String()), nil
}

// UnmarshalText resolves and checks text.
func (t *Typed[K]) UnmarshalText(text []byte) error {
	var p xpath.Path
	if err := p.UnmarshalText(text); err != nil {
		return err
	}

	return t.set(p)
}

// MarshalJSON encodes the contracted form of the path as a JSON string.
func (t Typed[K]) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(t.path.Contracted().String())
	if err != nil {
		return nil, fmt.Errorf("marshal path: %w", err)
	}

	return b, nil
}

// UnmarshalJSON accepts the same input as [xpath.Path.UnmarshalJSON] and
// checks the result. JSON null leaves t unchanged.
func (t *Typed[K]) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	var p xpath.Path
	if err := p.UnmarshalJSON(data); err != nil {
		return err
	}

	return t.set(p)
}

// MarshalYAML encodes the contracted form of the path.
func (t Typed[K]) MarshalYAML() (any, error) {
	return t.path.Contracted().String(), nil
}

// UnmarshalYAML accepts the same input as [xpath.Path.UnmarshalYAML] and
// checks the result. Errors include the position of the node.
func (t *Typed[K]) UnmarshalYAML(node *yaml.Node) error {
	var p xpath.Path
	if err := p.UnmarshalYAML(node); err != nil {
		return err
	}

	if err := t.set(p); err != nil {
		return xpath.NodeError(node, err)
	}

	return nil
}

// JSONSchema describes the encoded form of the path, as
// [xpath.Path.JSONSchema] does. As a struct field, its description comes
// from the field's jsonschema_description tag.
func (Typed[K]) JSONSchema() *jsonschema.Schema {
	return xpath.Path{}.JSONSchema()
}

func (t *Typed[K]) set(p xpath.Path) error {
	checked, err := New[K](p)
	if err != nil {
		return err
	}

	*t = checked

	return nil
}
