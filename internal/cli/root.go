package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/projmeta/internal/logging"
	"github.com/vvka-141/projmeta/pkg/projmeta"
)

const rootLong = `projmeta embeds project metadata into a generated source file.

It reads group, name, version and description from projmeta.yaml, PROJMETA_*
environment variables, env files and flags; checks that the version is a
semantic version; and writes a file of constants your build compiles in.

Run it from your build (Makefile, go generate, CI) before compiling.

Exit Codes:
  0  - Success (including "up to date")
  1  - General error (I/O failure)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Invalid project metadata (e.g. malformed version)`

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "projmeta",
		Short:         "Generate a source file of project metadata constants",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return projmeta.NewUsageError(err)
	})

	cmd.AddCommand(
		newGenerateCmd(),
		newCheckCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		return err
	}
	return nil
}

func reportError(w io.Writer, err error) {
	logging.NewConsoleLoggerWithWriter(w, false).Error("%v", err)
	if projmeta.ExitCodeForError(err) == projmeta.ExitUsageError {
		fmt.Fprintln(w, "Run 'projmeta --help' for usage.")
	}
}

// usageArgs marks positional-argument failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return projmeta.NewUsageError(validate(cmd, args))
	}
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
