// Package config loads the optional YAML configuration of updatepdp.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/updatepdp-go/pkg/pdp"
	"github.com/ukaji3/updatepdp-go/pkg/pdp/parser"
	"gopkg.in/yaml.v3"
)

// Config holds the sheet layout of both workbooks.
type Config struct {
	Forecast ForecastConfig `yaml:"forecast"`
	Planning PlanningConfig `yaml:"planning"`
}

// ForecastConfig describes the forecast workbook.
type ForecastConfig struct {
	Sheet      string  `yaml:"sheet"`
	RateColumn string  `yaml:"rate_column"`
	CabColumn  string  `yaml:"cab_column"`
	DateColumn string  `yaml:"date_column"`
	RateMin    float64 `yaml:"rate_min"`
	RateMax    float64 `yaml:"rate_max"`
}

// PlanningConfig describes the planning workbook.
type PlanningConfig struct {
	Sheet         string `yaml:"sheet"`
	BaseLabel     string `yaml:"base_label"`
	CustomerLabel string `yaml:"customer_label"`
	HeaderRow     int    `yaml:"header_row"`
}

// DefaultConfig returns the layout of the B-CAB planning sheet and the EMEA forecast.
func DefaultConfig() *Config {
	opts := pdp.DefaultOptions()
	return &Config{
		Forecast: ForecastConfig{
			Sheet:      opts.ForecastSheet,
			RateColumn: opts.Columns.Rate,
			CabColumn:  opts.Columns.Cab,
			DateColumn: opts.Columns.Delivery,
			RateMin:    opts.RateMin,
			RateMax:    opts.RateMax,
		},
		Planning: PlanningConfig{
			Sheet:         opts.PlanningSheet,
			BaseLabel:     opts.BaseLabel,
			CustomerLabel: opts.CustomerLabel,
			HeaderRow:     opts.HeaderRow,
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every name is set and the rate range is ordered.
func (c *Config) Validate() error {
	required := []struct {
		key, value string
	}{
		{"forecast.sheet", c.Forecast.Sheet},
		{"forecast.rate_column", c.Forecast.RateColumn},
		{"forecast.cab_column", c.Forecast.CabColumn},
		{"forecast.date_column", c.Forecast.DateColumn},
		{"planning.sheet", c.Planning.Sheet},
		{"planning.base_label", c.Planning.BaseLabel},
		{"planning.customer_label", c.Planning.CustomerLabel},
	}
	var errs []error
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", r.key))
		}
	}
	if c.Planning.HeaderRow < 1 {
		errs = append(errs, fmt.Errorf("planning.header_row must be at least 1, got %d", c.Planning.HeaderRow))
	}
	if c.Forecast.RateMin > c.Forecast.RateMax {
		errs = append(errs, fmt.Errorf("forecast.rate_min (%g) exceeds forecast.rate_max (%g)", c.Forecast.RateMin, c.Forecast.RateMax))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Options converts the config into update options.
func (c *Config) Options() pdp.Options {
	return pdp.Options{
		ForecastSheet: c.Forecast.Sheet,
		Columns: parser.ForecastColumns{
			Rate:     c.Forecast.RateColumn,
			Cab:      c.Forecast.CabColumn,
			Delivery: c.Forecast.DateColumn,
		},
		RateMin:       c.Forecast.RateMin,
		RateMax:       c.Forecast.RateMax,
		PlanningSheet: c.Planning.Sheet,
		BaseLabel:     c.Planning.BaseLabel,
		CustomerLabel: c.Planning.CustomerLabel,
		HeaderRow:     c.Planning.HeaderRow,
	}
}
