package config

import (
	"github.com/iancoleman/strcase"
	"github.com/spf13/pflag"
)

// FlagName returns the flag for a field of [Config], e.g. "LogLevel"
// becomes "log_level".
func FlagName(field string) string {
	return strcase.ToSnake(field)
}

// AddFlags registers a flag for each field of c on fs. The current values
// of c are the defaults, so call it after loading the environment or a file
// to let flags take precedence.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Profile, FlagName("Profile"), c.Profile, "Set the platform profile (native, unix, strict, windows)")
	fs.BoolVar(&c.Strict, FlagName("Strict"), c.Strict, "Apply Windows naming rules on every platform")
	fs.StringVar(&c.LogLevel, FlagName("LogLevel"), c.LogLevel, "Set the log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, FlagName("LogFormat"), c.LogFormat, "Set the log format (text, logfmt, json)")
}
