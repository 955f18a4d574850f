package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/vvka-141/projmeta/internal/config"
	"github.com/vvka-141/projmeta/internal/generator"
	"github.com/vvka-141/projmeta/internal/metadata"
	"github.com/vvka-141/projmeta/pkg/projmeta"
)

//go:embed templates
var templatesFS embed.FS

var configTemplate = template.Must(
	template.New("projmeta.yaml.tmpl").
		Funcs(template.FuncMap{"quote": strconv.Quote}).
		ParseFS(templatesFS, "templates/projmeta.yaml.tmpl"),
)

// Scaffolder writes new projmeta project files.
type Scaffolder struct {
	logger projmeta.Logger
}

// NewScaffolder creates a new Scaffolder instance
func NewScaffolder(logger projmeta.Logger) *Scaffolder {
	return &Scaffolder{
		logger: logger,
	}
}

// RenderConfig validates cfg and renders it as a projmeta.yaml document.
func RenderConfig(cfg config.ProjectConfig) ([]byte, error) {
	if err := metadata.Validate(cfg.Metadata()); err != nil {
		return nil, err
	}

	lang, err := generator.ParseLanguage(cfg.Output.Language)
	if err != nil {
		return nil, err
	}
	cfg.Output.Language = string(lang)

	var buf bytes.Buffer
	if err := configTemplate.Execute(&buf, cfg); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", config.ConfigFileName, err)
	}
	return buf.Bytes(), nil
}

// CreateConfig writes projmeta.yaml into targetDir and returns its path.
// An existing file is only replaced when overwrite is true.
func (s *Scaffolder) CreateConfig(targetDir string, cfg config.ProjectConfig, overwrite bool) (string, error) {
	content, err := RenderConfig(cfg)
	if err != nil {
		return "", err
	}

	path := filepath.Join(targetDir, config.ConfigFileName)
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists\n\nUse --force to overwrite it, or edit the file directly", path)
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to check %s: %w", path, err)
		}
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create project directory: %w", err)
	}

	s.logger.Verbose("Creating file: %s", path)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
