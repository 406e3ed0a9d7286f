package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rebar-lang/rebar/internal/diag"
	"github.com/rebar-lang/rebar/internal/environment"
	"github.com/rebar-lang/rebar/internal/rebarerr"
)

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse each line of stdin independently and print its tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runRepl parses each input line independently: every line gets its
// own Environment, so no interned string or parse state carries
// across lines. It prints the resulting tree; it never evaluates one.
func runRepl(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		env := environment.New()
		tree, _, err := env.Parse(line)
		if err != nil {
			if ae, ok := err.(*rebarerr.AnalysisError); ok {
				fmt.Fprint(out, diag.FromAnalysisError(ae, line, flags.noColor).Format())
			} else {
				fmt.Fprintln(out, err)
			}
			continue
		}
		fmt.Fprintln(out, tree.String())
	}
	return scanner.Err()
}
