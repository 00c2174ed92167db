// Package envctx provides the environment a path is resolved against: the
// home directory, the current working directory and environment variables.
//
// Resolution never reads the process environment directly. It is given a
// [Context], which is either the [Host] or a [Static] value supplied by the
// caller.
package envctx

import (
	"errors"
	"fmt"
	"os"

	"github.com/MacroPower/xpath/pkg/xpatherrors"
)

// ErrUnset indicates a [Static] context has no value for a lookup.
var ErrUnset = errors.New("not set")

// Context is a read-only source of the values that shorthand and variable
// references expand to. Implementations must not cache between calls.
type Context interface {
	// HomeDir returns the absolute home directory.
	HomeDir() (string, error)
	// WorkDir returns the absolute current working directory.
	WorkDir() (string, error)
	// LookupEnv returns the value of the named variable and whether it is set.
	LookupEnv(key string) (string, bool)
}

type host struct{}

// Host returns a [Context] backed by the running process.
func Host() Context {
	return host{}
}

func (host) HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w home directory: %w", xpatherrors.ErrLookup, err)
	}

	return home, nil
}

func (host) WorkDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w working directory: %w", xpatherrors.ErrLookup, err)
	}

	return wd, nil
}

func (host) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Static is a fixed [Context]. Empty Home or Cwd fail their lookup.
type Static struct {
	Env  map[string]string
	Home string
	Cwd  string
}

func (s Static) HomeDir() (string, error) {
	if s.Home == "" {
		return "", fmt.Errorf("%w home directory: %w", xpatherrors.ErrLookup, ErrUnset)
	}

	return s.Home, nil
}

func (s Static) WorkDir() (string, error) {
	if s.Cwd == "" {
		return "", fmt.Errorf("%w working directory: %w", xpatherrors.ErrLookup, ErrUnset)
	}

	return s.Cwd, nil
}

func (s Static) LookupEnv(key string) (string, bool) {
	v, ok := s.Env[key]

	return v, ok
}
