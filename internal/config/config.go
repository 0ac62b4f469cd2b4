// Package config loads runtime settings for the airnet binary.
//
// Precedence, lowest first: built-in defaults, the optional YAML file,
// AIRNET_* environment variables, command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys shared by viper, the YAML file and the flag set.
const (
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyNetwork   = "network"
	KeySeed      = "seed"

	envPrefix = "AIRNET"
)

// ErrReadConfig wraps failures reading an explicitly requested file.
var ErrReadConfig = errors.New("config: cannot read config file")

// Config holds the resolved settings.
type Config struct {
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	// NetworkFile is a YAML network description; empty selects the
	// built-in network.
	NetworkFile string `mapstructure:"network"`
	// Seed drives seat allocation; 0 seeds from the clock.
	Seed uint64 `mapstructure:"seed"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{LogLevel: "info", LogFormat: "text"}
}

// RegisterFlags adds the configuration flags to fs with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(KeyLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.String(KeyLogFormat, d.LogFormat, "log format: text or json")
	fs.String(KeyNetwork, d.NetworkFile, "YAML network file (default: built-in network)")
	fs.Uint64(KeySeed, d.Seed, "seat allocation seed (0 = random)")
}

// Load resolves the configuration. file may be empty; flags may be nil.
// Only flags the user actually set override file and environment values.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyNetwork, d.NetworkFile)
	v.SetDefault(KeySeed, d.Seed)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w %s: %w", ErrReadConfig, file, err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}
