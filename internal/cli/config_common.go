package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/projmeta/internal/config"
	"github.com/vvka-141/projmeta/internal/generator"
	"github.com/vvka-141/projmeta/internal/metadata"
	"github.com/vvka-141/projmeta/internal/params"
)

// metadataFlags holds the metadata and output flags shared by generate and init.
type metadataFlags struct {
	group       string
	name        string
	version     string
	description string
	language    string
	pkg         string
	outputDir   string
	outputFile  string
}

func (f *metadataFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.group, "project-group", "", "Project group (env: PROJMETA_GROUP)")
	fs.StringVar(&f.name, "project-name", "", "Project name (env: PROJMETA_NAME)")
	fs.StringVar(&f.version, "project-version", "", "Project version, a semantic version such as 1.0.0 (env: PROJMETA_VERSION)")
	fs.StringVar(&f.description, "project-description", "", "Project description (env: PROJMETA_DESCRIPTION)")
	fs.StringVar(&f.language, "language", "", "Output language: go or kotlin (default go)")
	fs.StringVar(&f.pkg, "package", "", "Package of the generated file (default depends on language)")
	fs.StringVar(&f.outputDir, "output-dir", "", "Output directory, relative to the project directory")
	fs.StringVar(&f.outputFile, "output-file", "", "Output file name")
}

// layer returns the metadata flags the user actually set.
// An explicitly empty --project-description clears a configured one.
func (f *metadataFlags) layer(cmd *cobra.Command) params.Layer {
	layer := params.Layer{}
	set := func(flag, field, value string) {
		if cmd.Flags().Changed(flag) {
			layer[field] = value
		}
	}
	set("project-group", params.FieldGroup, f.group)
	set("project-name", params.FieldName, f.name)
	set("project-version", params.FieldVersion, f.version)
	set("project-description", params.FieldDescription, f.description)
	return layer
}

// outputConfig overlays the output flags on the configured output section.
func (f *metadataFlags) outputConfig(base config.OutputConfig) config.OutputConfig {
	out := base
	if f.language != "" {
		out.Language = f.language
	}
	if f.pkg != "" {
		out.Package = f.pkg
	}
	if f.outputDir != "" {
		out.Dir = f.outputDir
	}
	if f.outputFile != "" {
		out.File = f.outputFile
	}
	return out
}

// loadProjectConfig reads the project file. A missing projmeta.yaml in the
// project directory is not an error; a missing explicit --config path is.
func loadProjectConfig(projectDir, configPath string) (*config.ProjectConfig, error) {
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("config file %s not found", configPath)
		}
		return cfg, err
	}

	cfg, err := config.Load(projectDir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return &config.ProjectConfig{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// dotenvLayer reads <projectDir>/.env when present without touching the process environment.
func dotenvLayer(projectDir string) (params.Layer, error) {
	path := filepath.Join(projectDir, ".env")
	if _, err := os.Stat(path); err != nil {
		return params.Layer{}, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return params.FromEnvMap(env), nil
}

// resolvedInputs is everything a generation run needs.
type resolvedInputs struct {
	Metadata metadata.ProjectMetadata
	Options  generator.Options
}

// resolveInputs merges metadata from all sources.
// Priority (highest to lowest): flags > process env > --env-file > .env > projmeta.yaml
func resolveInputs(cmd *cobra.Command, flags *metadataFlags, projectDir, configPath string, envFiles []string) (*resolvedInputs, error) {
	cfg, err := loadProjectConfig(projectDir, configPath)
	if err != nil {
		return nil, err
	}

	dotenv, err := dotenvLayer(projectDir)
	if err != nil {
		return nil, err
	}

	fileLayer, err := params.FromEnvFiles(envFiles)
	if err != nil {
		return nil, err
	}

	meta := params.Apply(cfg.Metadata(),
		dotenv,
		fileLayer,
		params.FromEnviron(os.LookupEnv),
		flags.layer(cmd),
	)

	out := flags.outputConfig(cfg.Output)
	lang, err := generator.ParseLanguage(out.Language)
	if err != nil {
		return nil, err
	}

	return &resolvedInputs{
		Metadata: meta,
		Options: generator.Options{
			Language:   lang,
			Package:    out.Package,
			Dir:        out.Dir,
			File:       out.File,
			ProjectDir: projectDir,
		},
	}, nil
}

// projectDirFromArgs returns the optional project path argument, defaulting to ".".
func projectDirFromArgs(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
