package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type OptionKey string

const ConfigOptionKey OptionKey = "report_options"

// Config controls how cause chains are walked and logged.
type Config struct {
	MaxDepth  int    `env:"ROPX_REPORT_MAX_DEPTH" envDefault:"32"`
	Separator string `env:"ROPX_REPORT_SEPARATOR" envDefault:": "`
	Field     string `env:"ROPX_REPORT_FIELD"     envDefault:"report"`
}

func DefaultConfig() Config {
	return Config{MaxDepth: 32, Separator: ": ", Field: "report"}
}

// LoadConfig reads Config from the environment. On error the defaults are
// returned together with the error.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("max depth must be positive, got %d", c.MaxDepth))
	}
	if c.Field == "" {
		errs = append(errs, errors.New("log field name is empty"))
	}
	return errors.Join(errs...)
}

func WithConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, ConfigOptionKey, cfg)
}

// ConfigFrom returns the Config carried by ctx, or def when there is none or
// the carried one does not pass Validate.
func ConfigFrom(ctx context.Context, def Config) Config {
	cfg, ok := ctx.Value(ConfigOptionKey).(Config)
	if ok && cfg.Validate() == nil {
		return cfg
	}
	return def
}
