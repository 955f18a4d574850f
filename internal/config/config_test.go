package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/projmeta/internal/metadata"
	"github.com/vvka-141/projmeta/pkg/projmeta"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `group: com.example
name: demo
version: 1.2.3
description: Demo

output:
  language: kotlin
  package: com.example.meta
  dir: src/generated
  file: Meta.kt
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "com.example", cfg.Group)
	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, "1.2.3", cfg.Version)
	assert.Equal(t, "Demo", cfg.Description)
	assert.Equal(t, "kotlin", cfg.Output.Language)
	assert.Equal(t, "com.example.meta", cfg.Output.Package)
	assert.Equal(t, "src/generated", cfg.Output.Dir)
	assert.Equal(t, "Meta.kt", cfg.Output.File)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	content := `version: 0.1.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "", cfg.Group)
	assert.Equal(t, "0.1.0", cfg.Version)
	assert.Equal(t, OutputConfig{}, cfg.Output)
}

func TestLoad_VersionKeptAsString(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("version: \"1.10.0\"\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "1.10.0", cfg.Version)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, projmeta.ErrInvalidConfig))
	assert.Nil(t, cfg)
}

func TestLoad_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("verison: 1.0.0\n"), 0644))

	cfg, err := Load(dir)
	assert.True(t, errors.Is(err, projmeta.ErrInvalidConfig))
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(""), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, ProjectConfig{}, *cfg)
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("group: org.acme\nname: tool\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "org.acme", cfg.Group)
	assert.Equal(t, "tool", cfg.Name)
}

func TestProjectConfig_Metadata(t *testing.T) {
	cfg := &ProjectConfig{Group: "g", Name: "n", Version: "1.0.0", Description: "d"}
	assert.Equal(t, metadata.ProjectMetadata{Group: "g", Name: "n", Version: "1.0.0", Description: "d"}, cfg.Metadata())

	var nilCfg *ProjectConfig
	assert.Equal(t, metadata.ProjectMetadata{}, nilCfg.Metadata())
}
