package cmd

import (
	"github.com/spf13/cobra"

	"github.com/upmkit/cli/internal/output"
	"github.com/upmkit/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show upm version information.

Displays:
  - upm version, commit, and build date
  - Go toolchain and the CUE SDK used for schema validation`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(_ *cobra.Command, _ []string) error {
	output.Println(version.Get().String())
	return nil
}
