package config

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/MacroPower/xpath/pkg/pathkind"
	"github.com/MacroPower/xpath/pkg/xpath"
	"github.com/MacroPower/xpath/pkg/xpatherrors"
)

// FileName is the name of the file [Find] looks for.
const FileName = ".xpath.yaml"

// ErrNotFound indicates that [Find] reached the root without a match.
var ErrNotFound = errors.New("config file not found")

// Load parses a YAML or JSON document on top of [Default]. Unknown fields
// are rejected.
func Load(data []byte) (Config, error) {
	c := Default()

	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// LoadFile reads and parses f.
func LoadFile(f pathkind.ExistingFile) (Config, error) {
	data, err := os.ReadFile(f.String())
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", f.Path().Contracted(), err)
	}

	c, err := Load(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", f.Path().Contracted(), err)
	}

	return c, nil
}

// Find returns the closest [FileName] in dir or one of its parents.
// Relative paths are anchored to the working directory first.
func Find(dir xpath.Path) (pathkind.ExistingFile, error) {
	start, err := pathkind.Absolute(dir)
	if err != nil {
		return pathkind.ExistingFile{}, err
	}

	for d, ok := start, true; ok; d, ok = d.Parent() {
		candidate, err := d.Join(FileName)
		if err != nil {
			return pathkind.ExistingFile{}, err
		}

		f, err := pathkind.New[pathkind.ExistingFileKind](candidate)
		if err == nil {
			return f, nil
		}

		if !errors.Is(err, xpatherrors.ErrNotExist) {
			return pathkind.ExistingFile{}, err
		}
	}

	return pathkind.ExistingFile{}, fmt.Errorf("%w: %s", ErrNotFound, start.Contracted())
}
