package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete generation configuration for YAML serialization.
type Config struct {
	Image   ImageConfigYAML   `yaml:"image"`
	Batch   BatchConfigYAML   `yaml:"batch"`
	Preview PreviewConfigYAML `yaml:"preview,omitempty"`
}

// ImageConfigYAML holds the drawing parameters with YAML tags.
type ImageConfigYAML struct {
	Size      int    `yaml:"size"`
	Thickness int    `yaml:"thickness"`
	Mode      string `yaml:"mode"`
	Direction string `yaml:"direction"`
	Symmetry  string `yaml:"symmetry"`
	Points    string `yaml:"points,omitempty"` // "x,y x,y ..."
}

// BatchConfigYAML holds the batch and output settings with YAML tags.
type BatchConfigYAML struct {
	Count   int    `yaml:"count"`
	Seed    int64  `yaml:"seed"`
	Output  string `yaml:"output"`
	Workers int    `yaml:"workers,omitempty"`
}

// PreviewConfigYAML holds the PNG preview settings with YAML tags.
type PreviewConfigYAML struct {
	Scale   int  `yaml:"scale,omitempty"`
	Caption bool `yaml:"caption,omitempty"`
}

// LoadFromYAML reads a configuration file
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &cfg, nil
}

// SaveToYAML writes a configuration file
func SaveToYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
