package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rebar-lang/rebar/internal/environment"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file|->",
		Short: "Run lexical and semantic analysis and print the parsed tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}
			return runParse(cmd.OutOrStdout(), source)
		},
	}
}

func runParse(w io.Writer, source []byte) error {
	env := environment.New()
	tree, _, err := env.Parse(source)
	if err != nil {
		return reportError(err, source)
	}
	fmt.Fprintln(w, tree.String())
	return nil
}
