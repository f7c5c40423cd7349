package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/limaJavier/gradeplanner/pkg/model"
)

const (
	DefaultPath      = "configs/config.yaml"
	PathVariable     = "GRADE_CONFIG_PATH"
	DefaultSheetName = "Grade"
)

type Config struct {
	Generator struct {
		MaxResults uint64 `mapstructure:"max_results"`
	} `mapstructure:"generator"`

	Palette []string `mapstructure:"palette"`

	Log struct {
		Level  string `mapstructure:"level"`
		Pretty bool   `mapstructure:"pretty"`
	} `mapstructure:"log"`

	Export struct {
		SheetName string `mapstructure:"sheet_name"`
	} `mapstructure:"export"`

	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"metrics"`
}

func Default() *Config {
	var cfg Config
	cfg.Generator.MaxResults = model.DefaultMaxResults
	cfg.Palette = append([]string(nil), model.DefaultPalette...)
	cfg.Log.Level = zerolog.InfoLevel.String()
	cfg.Log.Pretty = true
	cfg.Export.SheetName = DefaultSheetName
	cfg.Metrics.Enabled = true
	return &cfg
}

// Load reads the YAML configuration at path, falling back to $GRADE_CONFIG_PATH and then configs/config.yaml.
// A missing file yields the defaults; keys absent from the file keep their default value
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(PathVariable)
	}
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if raw == nil {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Generator.MaxResults == 0 {
		c.Generator.MaxResults = model.DefaultMaxResults
	}
	if len(c.Palette) == 0 {
		c.Palette = append([]string(nil), model.DefaultPalette...)
	}
	if c.Export.SheetName == "" {
		c.Export.SheetName = DefaultSheetName
	}
	// Excel limit
	if runes := []rune(c.Export.SheetName); len(runes) > 31 {
		c.Export.SheetName = string(runes[:31])
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// LogLevel returns the configured level, info when it cannot be parsed
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
