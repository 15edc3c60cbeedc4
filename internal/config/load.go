package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. AGROSIM_LOG_LEVEL.
const EnvPrefix = "AGROSIM"

// DefaultConfigName is the config file looked up in the working directory
// when no explicit file is given.
const DefaultConfigName = "agrosim"

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("engine.feedback_threshold", 0.7)
	v.SetDefault("engine.success_score", 50)
	v.SetDefault("engine.strict_levels", false)
	v.SetDefault("catalog.dir", "")
	v.SetDefault("catalog.pattern", "**/*.{yaml,yml}")
	v.SetDefault("catalog.skip_defaults", false)
	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.queue_size", 100)
	v.SetDefault("output.format", "console")
}

// Load reads configuration with a fresh viper instance and no explicit file.
func Load() (*Config, error) {
	return LoadWith(viper.New(), "")
}

// LoadWith reads configuration into v from defaults, an optional config file
// and AGROSIM_ environment variables, in increasing order of precedence.
// Flags bound to v by the caller take precedence over all of them.
//
// When configFile is empty, agrosim.yaml in the working directory is used if
// present. An explicit configFile that cannot be read is an error.
func LoadWith(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
