package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rebar-lang/rebar/internal/rebarlsp"
)

// stdioReadWriteCloser adapts stdin/stdout to io.ReadWriteCloser for
// the JSON-RPC stream, the conventional transport for an LSP server
// invoked as a client subprocess.
type stdioReadWriteCloser struct{}

func (stdioReadWriteCloser) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdioReadWriteCloser) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdioReadWriteCloser) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

func newLSPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the LSP diagnostics server over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := rebarlsp.New(rootLogger)
			return srv.Run(cmd.Context(), stdioReadWriteCloser{})
		},
	}
}
