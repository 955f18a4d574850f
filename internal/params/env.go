package params

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/vvka-141/projmeta/internal/metadata"
	"github.com/vvka-141/projmeta/pkg/projmeta"
)

// Metadata field keys used in a Layer.
const (
	FieldGroup       = "group"
	FieldName        = "name"
	FieldVersion     = "version"
	FieldDescription = "description"
)

// Layer maps metadata field keys to explicitly supplied values.
type Layer map[string]string

// envVars maps field keys to their environment variable names.
var envVars = map[string]string{
	FieldGroup:       projmeta.EnvPrefix + "GROUP",
	FieldName:        projmeta.EnvPrefix + "NAME",
	FieldVersion:     projmeta.EnvPrefix + "VERSION",
	FieldDescription: projmeta.EnvPrefix + "DESCRIPTION",
}

// EnvVar returns the environment variable name for a field key.
func EnvVar(field string) string {
	return envVars[field]
}

// FromEnviron builds a layer from variables visible through lookup (usually os.LookupEnv).
func FromEnviron(lookup func(string) (string, bool)) Layer {
	layer := Layer{}
	for field, name := range envVars {
		if v, ok := lookup(name); ok {
			layer[field] = v
		}
	}
	return layer
}

// FromEnvMap builds a layer from a parsed env file.
func FromEnvMap(env map[string]string) Layer {
	return FromEnviron(func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	})
}

// FromEnvFiles reads env files in order; later files override earlier ones.
func FromEnvFiles(paths []string) (Layer, error) {
	layer := Layer{}
	for _, path := range paths {
		env, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
		for field, v := range FromEnvMap(env) {
			layer[field] = v
		}
	}
	return layer, nil
}

// Apply returns base with each layer's fields applied in order.
func Apply(base metadata.ProjectMetadata, layers ...Layer) metadata.ProjectMetadata {
	m := base
	for _, layer := range layers {
		for field, v := range layer {
			switch field {
			case FieldGroup:
				m.Group = v
			case FieldName:
				m.Name = v
			case FieldVersion:
				m.Version = v
			case FieldDescription:
				m.Description = v
			}
		}
	}
	return m
}
