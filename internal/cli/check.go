package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vvka-141/projmeta/internal/metadata"
	"github.com/vvka-141/projmeta/internal/tui"
)

const checkLong = `Check that a version string is a valid semantic version.

Prints the parsed components on success. Exits with code 11 and a
suggested fix when the version is malformed, exactly as generate would.

Examples:
  projmeta check 1.0.0-beta.1+build.5
  projmeta check "$RELEASE_VERSION" --json`

func newCheckCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check <version>",
		Short: "Validate a semantic version",
		Long:  checkLong,
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output parsed components as JSON")
	return cmd
}

func runCheck(cmd *cobra.Command, v string, asJSON bool) error {
	info, err := metadata.ParseVersion(v)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	r := lipgloss.NewRenderer(out)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(tui.ColorMuted)).
		Headers("COMPONENT", "VALUE").
		Rows(
			[]string{"major", strconv.FormatUint(info.Major, 10)},
			[]string{"minor", strconv.FormatUint(info.Minor, 10)},
			[]string{"patch", strconv.FormatUint(info.Patch, 10)},
			[]string{"prerelease", info.Prerelease},
			[]string{"build", info.Build},
		)

	fmt.Fprintln(out, r.NewStyle().Foreground(tui.ColorSuccess).Render(tui.SymbolCheck+" "+v+" is a valid semantic version"))
	fmt.Fprintln(out, t.Render())
	return nil
}
