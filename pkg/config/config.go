// Package config wires environment and file configuration for the viewer.
// main loads .env first (godotenv), then FromEnv fills Config from the
// process environment.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the process-level configuration.
type Config struct {
	Address string `envconfig:"VM_ADDRESS" default:"0.0.0.0:8080"`
	DataDir string `envconfig:"VM_DATA" default:"./data"`
	Debug   bool   `envconfig:"VM_DEBUG" default:"false"`
}

func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// ViewConfig is the optional per-deployment presentation config
// (view.yaml in the data directory). Both maps are partial overrides:
// anything not listed keeps its dataset ID or default color.
type ViewConfig struct {
	Title       string            `yaml:"title"`
	SampleNames map[string]string `yaml:"sample_names"`
	ClassColors map[string]string `yaml:"class_colors"`
}

func LoadViewConfig(path string) (ViewConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ViewConfig{}, fmt.Errorf("read view config %s: %w", path, err)
	}
	var view ViewConfig
	if err := yaml.Unmarshal(raw, &view); err != nil {
		return ViewConfig{}, fmt.Errorf("parse view config %s: %w", path, err)
	}
	return view, nil
}
