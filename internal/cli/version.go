package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the rebar binary's build version, overridable at link
// time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "rebar %s\n", Version)
			return nil
		},
	}
}
