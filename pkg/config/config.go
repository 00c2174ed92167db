// Package config holds the settings that pick a platform profile and
// logging for path resolution. Settings come from XPATH_* environment
// variables or a YAML/JSON file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/iancoleman/strcase"

	"github.com/MacroPower/xpath/pkg/log"
	"github.com/MacroPower/xpath/pkg/platform"
	"github.com/MacroPower/xpath/pkg/xpath"
)

// EnvPrefix prefixes every environment variable read by [FromEnv].
const EnvPrefix = "XPATH"

// ErrInvalid indicates a setting with a value that can't be used.
var ErrInvalid = errors.New("invalid config")

// Config selects the platform profile and logging. Profile is a name
// accepted by [platform.ParseProfile], and Strict applies Windows naming
// rules on every platform.
type Config struct {
	Profile   string `json:"profile,omitempty" jsonschema:"enum=native,enum=unix,enum=strict,enum=windows,description=Platform profile used to validate and render paths."`
	LogLevel  string `json:"logLevel,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,description=Minimum log level."`
	LogFormat string `json:"logFormat,omitempty" jsonschema:"enum=text,enum=logfmt,enum=json,description=Log output format."`
	Strict    bool   `json:"strict,omitempty" jsonschema:"description=Apply Windows naming rules on every platform."`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Profile:   "native",
		LogLevel:  "warn",
		LogFormat: log.FormatText,
	}
}

// EnvKey returns the environment variable for a field of [Config], e.g.
// "LogLevel" becomes "XPATH_LOG_LEVEL".
func EnvKey(field string) string {
	return EnvPrefix + "_" + strcase.ToScreamingSnake(field)
}

// FromEnv returns [Default] overridden by the variables found with lookup.
// All invalid values are reported together.
func FromEnv(lookup func(key string) (string, bool)) (Config, error) {
	c := Default()

	var merr error

	for field, dst := range map[string]*string{
		"Profile":   &c.Profile,
		"LogLevel":  &c.LogLevel,
		"LogFormat": &c.LogFormat,
	} {
		if v, ok := lookup(EnvKey(field)); ok {
			*dst = v
		}
	}

	if v, ok := lookup(EnvKey("Strict")); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w: %s: %w", ErrInvalid, EnvKey("Strict"), err))
		}

		c.Strict = strict
	}

	if err := c.Validate(); err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return Config{}, fmt.Errorf("read environment: %w", merr)
	}

	return c, nil
}

// LoadEnv is [FromEnv] using the process environment.
func LoadEnv() (Config, error) {
	return FromEnv(os.LookupEnv)
}

// Validate reports every setting that can't be used.
func (c Config) Validate() error {
	var merr error

	if _, err := platform.ParseProfile(c.Profile); err != nil {
		merr = multierror.Append(merr, err)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		merr = multierror.Append(merr, err)
	}

	if _, err := log.ParseFormat(c.LogFormat); err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, merr)
	}

	return nil
}

// PlatformProfile returns the configured profile, made strict if
// [Config.Strict] is set.
func (c Config) PlatformProfile() (platform.Profile, error) {
	p, err := platform.ParseProfile(c.Profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return platform.WithStrict(p, c.Strict), nil
}

// Logger creates a logger writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	l, err := log.New(w, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return l, nil
}

// Resolver creates a resolver using the configured profile. Options are
// applied after the profile, so they may set the context and logger.
func (c Config) Resolver(opts ...xpath.Option) (*xpath.Resolver, error) {
	p, err := c.PlatformProfile()
	if err != nil {
		return nil, err
	}

	return xpath.NewResolver(append([]xpath.Option{xpath.WithProfile(p)}, opts...)...), nil
}

// Apply installs a logger writing to w as the [slog] default, and a
// resolver for the host using it as the [xpath] default.
func (c Config) Apply(w io.Writer) (*xpath.Resolver, error) {
	logger, err := c.Logger(w)
	if err != nil {
		return nil, err
	}

	r, err := c.Resolver(xpath.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)
	xpath.SetDefault(r)

	logger.Debug("applied config",
		"profile", r.Profile().Name(),
		"level", c.LogLevel,
		"format", c.LogFormat,
	)

	return r, nil
}
