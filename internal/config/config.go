package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/ehr/dentalsynth/internal/platform/workbook"
)

type Config struct {
	Env        string `mapstructure:"ENV"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	OutputFile string `mapstructure:"OUTPUT_FILE"`
	Port       string `mapstructure:"PORT"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OUTPUT_FILE", workbook.DefaultFileName)
	v.SetDefault("PORT", "8000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("OUTPUT_FILE")
	v.BindEnv("PORT")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Level returns the zerolog level for LOG_LEVEL. Validate rejects values
// this cannot parse.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Validate checks that the output path names an .xlsx workbook and that the
// log level is one zerolog understands.
func (c *Config) Validate() error {
	if c.OutputFile == "" {
		return fmt.Errorf("OUTPUT_FILE must not be empty")
	}
	if ext := strings.ToLower(filepath.Ext(c.OutputFile)); ext != ".xlsx" {
		return fmt.Errorf("OUTPUT_FILE must end in .xlsx, got %q", c.OutputFile)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	return nil
}
