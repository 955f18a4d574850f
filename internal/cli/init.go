package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/projmeta/internal/config"
	"github.com/vvka-141/projmeta/internal/logging"
	"github.com/vvka-141/projmeta/internal/metadata"
	"github.com/vvka-141/projmeta/internal/params"
	"github.com/vvka-141/projmeta/internal/scaffold"
	"github.com/vvka-141/projmeta/internal/tui"
	"github.com/vvka-141/projmeta/internal/tui/wizards"
	"github.com/vvka-141/projmeta/pkg/projmeta"
)

const initLong = `Create a projmeta.yaml project file.

Values come from flags and PROJMETA_* environment variables. The name defaults
to the project directory name and the version to 1.0.0. On a terminal, a form
lets you review and edit the values before the file is written; pass
--no-input (or set CI / PROJMETA_NON_INTERACTIVE=1) to skip it.

An existing projmeta.yaml is never replaced without --force.

Examples:
  projmeta init                                  # Current directory
  projmeta init ./app --project-group com.example
  projmeta init --language kotlin --no-input`

type initOptions struct {
	metadataFlags
	force   bool
	noInput bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init [project_path]",
		Short: "Create a projmeta.yaml project file",
		Long:  initLong,
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args, opts)
		},
	}

	opts.metadataFlags.register(cmd)
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing "+projmeta.ConfigFileName)
	cmd.Flags().BoolVar(&opts.noInput, "no-input", false, "Never prompt; fail on missing or invalid values")

	return cmd
}

func runInit(cmd *cobra.Command, args []string, opts *initOptions) error {
	targetDir := projectDirFromArgs(args)
	verbose := getVerboseFlag(cmd)

	initial := params.Apply(defaultInitMetadata(targetDir),
		params.FromEnviron(os.LookupEnv),
		opts.metadataFlags.layer(cmd),
	)

	if !opts.noInput && tui.IsInteractive() {
		result, err := wizards.RunMetadataForm(initial)
		if err != nil {
			return err
		}
		if result.Cancelled {
			return errors.New("init cancelled")
		}
		initial = result.Metadata
	}

	cfg := config.ProjectConfig{
		Group:       initial.Group,
		Name:        initial.Name,
		Version:     initial.Version,
		Description: initial.Description,
		Output:      opts.metadataFlags.outputConfig(config.OutputConfig{}),
	}

	logger := logging.NewConsoleLoggerWithWriter(cmd.ErrOrStderr(), verbose)
	path, err := scaffold.NewScaffolder(logger).CreateConfig(targetDir, cfg, opts.force)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Created %s\n", tui.SymbolCheck, path)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	if targetDir == "." {
		fmt.Fprintln(out, "  projmeta generate")
	} else {
		fmt.Fprintf(out, "  projmeta generate %s\n", targetDir)
	}
	return nil
}

// defaultInitMetadata derives a starting name from the target directory.
func defaultInitMetadata(targetDir string) metadata.ProjectMetadata {
	name := filepath.Base(targetDir)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		if abs, err := filepath.Abs(targetDir); err == nil {
			name = filepath.Base(abs)
		} else {
			name = ""
		}
	}
	return metadata.ProjectMetadata{
		Name:    name,
		Version: projmeta.ExampleVersion,
	}
}
