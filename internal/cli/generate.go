package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/projmeta/internal/generator"
	"github.com/vvka-141/projmeta/internal/logging"
	"github.com/vvka-141/projmeta/pkg/projmeta"
)

const generateLong = `Generate the project metadata file.

This command:
1. Reads metadata from projmeta.yaml, .env, --env-file files, PROJMETA_*
   environment variables and flags (later sources win)
2. Checks that the version is a semantic version (MAJOR.MINOR.PATCH with
   optional -prerelease and +build suffixes)
3. Writes a source file with four constants: group, name, version, description

The output directory is created when missing. When the inputs and the output
are unchanged since the last run, nothing is written; use --force to rewrite.

Examples:
  # Generate from projmeta.yaml in the current directory
  projmeta generate

  # Override the version from CI
  projmeta generate --project-version "$RELEASE_VERSION"

  # Kotlin output, as the JVM plugin produced it
  projmeta generate ./app --language kotlin

  # Print the file without writing it
  projmeta generate --dry-run`

type generateOptions struct {
	metadataFlags
	configPath string
	envFiles   []string
	force      bool
	dryRun     bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate [project_path]",
		Aliases: []string{"gen"},
		Short:   "Generate the project metadata source file",
		Long:    generateLong,
		Args:    usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	opts.metadataFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to the project file (default <project_path>/"+projmeta.ConfigFileName+")")
	cmd.Flags().StringArrayVar(&opts.envFiles, "env-file", nil, "Read PROJMETA_* values from an env file (repeatable; later files win)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Write the file even when it is up to date")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the generated file to stdout instead of writing it")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	projectDir := projectDirFromArgs(args)
	verbose := getVerboseFlag(cmd)

	inputs, err := resolveInputs(cmd, &opts.metadataFlags, projectDir, opts.configPath, opts.envFiles)
	if err != nil {
		return err
	}

	genOpts := inputs.Options
	genOpts.Force = opts.force
	genOpts.DryRun = opts.dryRun

	logger := logging.NewConsoleLoggerWithWriter(cmd.ErrOrStderr(), verbose)
	result, err := generator.New(logger).Generate(inputs.Metadata, genOpts)
	if err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Fprint(cmd.OutOrStdout(), string(result.Content))
	}
	return nil
}
