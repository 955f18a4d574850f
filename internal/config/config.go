package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/projmeta/internal/metadata"
	"github.com/vvka-141/projmeta/pkg/projmeta"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// OutputConfig describes where the generated file goes.
// Empty fields fall back to the language defaults.
type OutputConfig struct {
	Language string `yaml:"language,omitempty"`
	Package  string `yaml:"package,omitempty"`
	Dir      string `yaml:"dir,omitempty"`
	File     string `yaml:"file,omitempty"`
}

// ProjectConfig is the content of projmeta.yaml.
type ProjectConfig struct {
	Group       string       `yaml:"group"`
	Name        string       `yaml:"name"`
	Version     string       `yaml:"version"`
	Description string       `yaml:"description,omitempty"`
	Output      OutputConfig `yaml:"output,omitempty"`
}

const ConfigFileName = projmeta.ConfigFileName

// Load reads projmeta.yaml from the project directory.
func Load(projectDir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(projectDir, ConfigFileName))
}

// LoadFile reads a project config from an explicit path.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", projmeta.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

// Metadata returns the metadata fields declared in the file.
func (c *ProjectConfig) Metadata() metadata.ProjectMetadata {
	if c == nil {
		return metadata.ProjectMetadata{}
	}
	return metadata.ProjectMetadata{
		Group:       c.Group,
		Name:        c.Name,
		Version:     c.Version,
		Description: c.Description,
	}
}
