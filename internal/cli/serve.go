package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rebar-lang/rebar/internal/playground"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the playground HTTP+WebSocket server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Address
			}

			srv := playground.New(addr,
				playground.WithLogger(rootLogger),
				playground.WithMaxSourceBytes(cfg.MaxBytes),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "rebar playground listening on %s\n", addr)
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
