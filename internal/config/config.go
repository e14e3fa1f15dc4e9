package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"shapegen/internal/render"
)

// Config represents the complete configuration for shapegen
type Config struct {
	RootName string       `yaml:"root_name"`
	Types    TypesConfig  `yaml:"types"`
	Naming   NamingConfig `yaml:"naming"`
	Output   OutputConfig `yaml:"output"`
}

// TypesConfig holds the spelling used for each primitive type kind.
type TypesConfig struct {
	String  string `yaml:"string"`
	Integer string `yaml:"integer"`
	Float   string `yaml:"float"`
	Bool    string `yaml:"bool"`
	Any     string `yaml:"any"`
	Unknown string `yaml:"unknown"`
}

// NamingConfig controls output-time field naming
type NamingConfig struct {
	PascalCaseFields bool              `yaml:"pascal_case_fields"`
	FieldMappings    map[string]string `yaml:"field_mappings"`
}

// OutputConfig controls output framing
type OutputConfig struct {
	TrailingNewline bool `yaml:"trailing_newline"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	def := render.DefaultOptions()
	return &Config{
		Types: TypesConfig{
			String:  def.String,
			Integer: def.Integer,
			Float:   def.Float,
			Bool:    def.Bool,
			Any:     def.Any,
			Unknown: def.Unknown,
		},
		Naming: NamingConfig{
			PascalCaseFields: false,
			FieldMappings:    make(map[string]string),
		},
		Output: OutputConfig{
			TrailingNewline: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".shapegen.yml", ".shapegen.yaml", "shapegen.yml", "shapegen.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// RenderOptions converts the configuration into renderer options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		String:           c.Types.String,
		Integer:          c.Types.Integer,
		Float:            c.Types.Float,
		Bool:             c.Types.Bool,
		Any:              c.Types.Any,
		Unknown:          c.Types.Unknown,
		PascalCaseFields: c.Naming.PascalCaseFields,
		FieldMappings:    c.Naming.FieldMappings,
	}
}
