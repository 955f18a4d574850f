package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Stamp records the inputs and output of the last successful generation.
// It lives next to the generated file and is safe to delete at any time.
type Stamp struct {
	FormatVersion  int    `yaml:"format_version"`
	InputHash      string `yaml:"input_hash"`
	OutputChecksum string `yaml:"output_checksum"`
}

// StampPath returns the stamp location for a generated file.
// The leading dot keeps it out of Go package builds.
func StampPath(outputPath string) string {
	dir, file := filepath.Split(outputPath)
	return filepath.Join(dir, "."+file+".projmeta.yaml")
}

// readStamp returns (nil, nil) when no stamp exists.
func readStamp(path string) (*Stamp, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var s Stamp
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("malformed stamp %s: %w", path, err)
	}
	return &s, nil
}

func writeStamp(path string, s Stamp) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
