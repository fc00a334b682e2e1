package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix     = "OLIRTF"
	configEnvVar  = "OLIRTF_CONFIG"
	configDirName = "olirtf"
)

// config holds the settings that may come from flags, environment or a
// TOML file.
type config struct {
	Format     string `mapstructure:"format" toml:"format"`
	Width      int    `mapstructure:"width" toml:"width"`
	Boring     bool   `mapstructure:"boring" toml:"boring"`
	Verbose    bool   `mapstructure:"verbose" toml:"verbose"`
	DumpTokens bool   `mapstructure:"dump-tokens" toml:"dump-tokens"`
	Force      bool   `mapstructure:"force" toml:"force"`
}

// loadConfig layers defaults, the config file, OLIRTF_* environment
// variables and changed flags, in increasing priority. An explicit path
// must exist; the default location is optional.
func loadConfig(flags *pflag.FlagSet, path string) (config, error) {
	v := viper.New()
	v.SetDefault("format", "rtf")
	v.SetDefault("width", 0)
	v.SetDefault("boring", false)
	v.SetDefault("verbose", false)
	v.SetDefault("dump-tokens", false)
	v.SetDefault("force", false)

	v.SetConfigType("toml")
	switch {
	case path != "":
		v.SetConfigFile(normalizePath(path))
	case os.Getenv(configEnvVar) != "":
		v.SetConfigFile(normalizePath(os.Getenv(configEnvVar)))
	default:
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configDirName))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c config
	if err := v.Unmarshal(&c); err != nil {
		return config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func printConfig(w io.Writer, c config) error {
	return toml.NewEncoder(w).Encode(c)
}
