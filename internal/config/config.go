package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/trustrecon/trustrecon/internal/fees"
	"github.com/trustrecon/trustrecon/internal/trust"
)

// FileName is the project config file looked up by the CLI.
const FileName = "trustrecon.yaml"

// Config represents the top-level trustrecon.yaml configuration.
type Config struct {
	Firm     FirmConfig     `yaml:"firm"`
	Trust    TrustConfig    `yaml:"trust"`
	Fees     FeesConfig     `yaml:"fees"`
	Payments PaymentsConfig `yaml:"payments"`
	Timezone string         `yaml:"timezone,omitempty"` // IANA name; empty or "Local" = system zone
}

// FirmConfig identifies the firm.
type FirmConfig struct {
	Name string `yaml:"name"`
}

// TrustConfig maps the trust listing export's headers.
type TrustConfig struct {
	Columns trust.ColumnMapping `yaml:"columns"`
}

// FeesConfig locates the fee table and maps its headers.
type FeesConfig struct {
	Path    string          `yaml:"path"`
	Columns fees.FeeColumns `yaml:"columns"`
}

// PaymentsConfig locates the payment history.
type PaymentsConfig struct {
	Path string `yaml:"path"`
}

// Load reads a trustrecon.yaml file from disk. Fields left out of the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(""), nil
	}
	return Load(path)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config matching an unmodified trust listing export.
func Default(firmName string) *Config {
	return &Config{
		Firm:  FirmConfig{Name: firmName},
		Trust: TrustConfig{Columns: trust.DefaultColumnMapping()},
		Fees: FeesConfig{
			Path:    "fees.csv",
			Columns: fees.DefaultFeeColumns(),
		},
		Payments: PaymentsConfig{Path: "payments.csv"},
		Timezone: "Local",
	}
}

// Location resolves the timezone that defines "today" for aging.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
