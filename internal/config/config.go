package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the environment
const EnvPrefix = "URLPARSE"

// Configuration keys, shared by flags and environment variables
const (
	// KeyJSON switches the output to single-line JSON (URLPARSE_JSON)
	KeyJSON = "json"

	// KeyLogLevel sets the diagnostic log level on stderr (URLPARSE_LOG_LEVEL)
	KeyLogLevel = "log-level"

	// KeyNoColor disables colored diagnostics (URLPARSE_NO_COLOR)
	KeyNoColor = "no-color"

	// keyNoColorConvention follows https://no-color.org: any non-empty NO_COLOR disables color
	keyNoColorConvention = "no-color-convention"
)

// Config represents the program configuration
type Config struct {
	// JSON selects JSON output instead of the aligned text form
	JSON bool `json:"json"`

	// LogLevel is the minimum level of diagnostics written to stderr
	LogLevel slog.Level `json:"logLevel"`

	// NoColor disables ANSI colors in diagnostics
	NoColor bool `json:"noColor"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		JSON:     false,
		LogLevel: slog.LevelWarn,
		NoColor:  false,
	}
}

// Load merges defaults, URLPARSE_* environment variables and flags, in
// increasing order of precedence. Flags that were not set on the command line
// do not override the environment.
func Load(flags *pflag.FlagSet) (*Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetDefault(KeyJSON, defaults.JSON)
	v.SetDefault(KeyLogLevel, defaults.LogLevel.String())
	v.SetDefault(KeyNoColor, defaults.NoColor)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(keyNoColorConvention, "NO_COLOR"); err != nil {
		return nil, fmt.Errorf("failed to bind NO_COLOR: %w", err)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	cfg := &Config{
		JSON:    v.GetBool(KeyJSON),
		NoColor: v.GetBool(KeyNoColor) || v.GetString(keyNoColorConvention) != "",
	}

	rawLevel := v.GetString(KeyLogLevel)
	if err := cfg.LogLevel.UnmarshalText([]byte(rawLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", rawLevel)
	}

	return cfg, nil
}
