package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rebar-lang/rebar/internal/diag"
	"github.com/rebar-lang/rebar/internal/environment"
	"github.com/rebar-lang/rebar/internal/lexer"
	"github.com/rebar-lang/rebar/internal/rebarerr"
)

func newTokenizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <file|->",
		Short: "Run the lexical analyzer and print each token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}
			return runTokenize(cmd.OutOrStdout(), source)
		},
	}
}

func runTokenize(w io.Writer, source []byte) error {
	env := environment.New()
	unit := lexer.NewLexicalUnit(source)
	if err := env.PerformLexicalAnalysis(unit); err != nil {
		return reportError(err, source)
	}

	offsets := unit.TokenPositions()
	for i, tok := range unit.Tokens() {
		fmt.Fprintf(w, "%d: %s\n", offsets[i], tok.String())
	}
	return nil
}

// readSource reads a file, or stdin when path is "-".
func readSource(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// reportError renders an AnalysisError through diag and returns a
// plain error so cobra's error path still exits non-zero, without
// printing the Go %v form twice.
func reportError(err error, source []byte) error {
	ae, ok := err.(*rebarerr.AnalysisError)
	if !ok {
		return err
	}
	report := diag.FromAnalysisError(ae, source, flags.noColor)
	fmt.Fprint(os.Stderr, report.Format())
	return fmt.Errorf("%s", ae.Kind)
}
