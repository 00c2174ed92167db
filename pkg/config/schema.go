package config

import (
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Reflector builds JSON schemas for configuration types.
type Reflector struct {
	Reflector *jsonschema.Reflector
}

func NewReflector() *Reflector {
	return &Reflector{
		Reflector: &jsonschema.Reflector{
			DoNotReference: true,
			ExpandedStruct: true,
		},
	}
}

func (r *Reflector) Reflect(t reflect.Type) *jsonschema.Schema {
	return r.Reflector.ReflectFromType(t)
}

// Schema returns the JSON schema of [Config].
func Schema() ([]byte, error) {
	s := NewReflector().Reflect(reflect.TypeFor[Config]())
	s.Title = "xpath configuration"

	b, err := s.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json schema: %w", err)
	}

	return b, nil
}
