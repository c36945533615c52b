package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/gadgetstore/internal/paths"
	"github.com/mesh-intelligence/gadgetstore/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix scopes environment overrides, e.g. GADGETSTORE_YEAR.
	envPrefix = "GADGETSTORE"

	cfgKeyLogLevel    = "log_level"
	cfgKeyLogFile     = "log_file"
	cfgKeyColor       = "color"
	cfgKeyPause       = "pause"
	cfgKeyClearScreen = "clear_screen"
	cfgKeyYear        = "year"
)

const configHeader = `# Gadgetstore configuration.
# log_file defaults to $XDG_STATE_HOME/gadgetstore/gadgetstore.log when empty.
# year pins the year in minted serial numbers; 0 uses the current year.
`

// loadConfig reads config.yaml from configDir using Viper. It creates the
// directory and a default config.yaml on first run.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if _, err := writeConfigIfMissing(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	defaults := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaults.LogLevel)
	v.SetDefault(cfgKeyLogFile, defaults.LogFile)
	v.SetDefault(cfgKeyColor, defaults.Color)
	v.SetDefault(cfgKeyPause, defaults.Pause)
	v.SetDefault(cfgKeyClearScreen, defaults.ClearScreen)
	v.SetDefault(cfgKeyYear, defaults.Year)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist and returns its path. An existing file is left alone.
func writeConfigIfMissing(configDir string) (string, error) {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return path, nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(types.DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return path, os.WriteFile(path, append([]byte(configHeader), data...), 0o644)
}

// resolveConfig merges config.yaml, environment, and flags, with flags
// taking precedence, and validates the result.
func resolveConfig(cmd *cobra.Command, v *viper.Viper, f *rootFlags) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}

	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("year") {
		cfg.Year = f.year
	}
	if f.noColor {
		cfg.Color = false
	}
	if f.noPause {
		cfg.Pause = false
	}

	logFile, err := paths.ResolveLogFile(f.logFile, cfg.LogFile)
	if err != nil {
		return types.Config{}, sysErr("resolve log file: %w", err)
	}
	cfg.LogFile = logFile

	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
