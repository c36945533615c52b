package types

import "errors"

// Config holds the settings the CLI loads from config.yaml, the environment,
// and flags before starting a console session.
type Config struct {
	LogLevel    string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFile     string `json:"log_file" yaml:"log_file" mapstructure:"log_file"`
	Color       bool   `json:"color" yaml:"color" mapstructure:"color"`
	Pause       bool   `json:"pause" yaml:"pause" mapstructure:"pause"`
	ClearScreen bool   `json:"clear_screen" yaml:"clear_screen" mapstructure:"clear_screen"`
	// Year pins the year embedded in minted serials. Zero means the
	// current year at mint time.
	Year int `json:"year" yaml:"year" mapstructure:"year"`
}

// Log levels accepted by Config.Validate.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config validation errors.
var (
	ErrLogLevelUnknown = errors.New("unknown log level")
	ErrYearInvalid     = errors.New("year must not be negative")
)

var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// DefaultConfig returns the settings used when config.yaml is missing.
func DefaultConfig() Config {
	return Config{
		LogLevel:    LogLevelInfo,
		Color:       true,
		Pause:       true,
		ClearScreen: true,
	}
}

// Validate checks that the Config is well-formed. An empty log level is
// treated as info.
func (c Config) Validate() error {
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	if c.Year < 0 {
		return ErrYearInvalid
	}
	return nil
}
