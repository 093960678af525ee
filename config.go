package protogen

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the .protogen.yaml configuration file. Every field is
// optional; command-line flags take precedence over config values.
type Config struct {
	// Endpoint is the Unity Catalog workspace URL
	// (e.g., https://your-workspace.cloud.databricks.com).
	Endpoint string `yaml:"endpoint,omitempty"`

	// Token is the bearer token used for catalog requests. Prefer the
	// UC_TOKEN environment variable over committing a token to the file.
	Token string `yaml:"token,omitempty"`

	// Generate config for proto generation.
	Generate GenerateConfig `yaml:"generate,omitempty"`
}

// GenerateConfig holds settings for the generate command.
type GenerateConfig struct {
	// Table is the fully-qualified table name (catalog.schema.table).
	Table string `yaml:"table,omitempty"`

	// Output is the path of the generated proto file.
	Output string `yaml:"output,omitempty"`

	// Message is the protobuf message name. Defaults to the last
	// dot-separated segment of the table name.
	Message string `yaml:"message,omitempty"`
}

// DefaultConfigNames are the filenames we search for.
var DefaultConfigNames = []string{".protogen.yaml", ".protogen.yml", "protogen.yaml", "protogen.yml"}

// LoadConfig finds and loads the nearest .protogen.yaml walking up from dir.
func LoadConfig(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}

	return LoadConfigFile(path)
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
