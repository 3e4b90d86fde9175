package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"wordbot/internal/transport"
)

func serveCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bot over HTTP and websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := o.wire.Log.With("http")
			log.Infof("word list at %s", o.wire.Store.Path())
			return transport.NewServer(o.wire.Router, log).ListenAndServe(ctx, o.cfg.ListenAddr)
		},
	}
	cmd.Flags().String("listen", "", "listen address (default :8080)")
	bindFlags(o.v, cmd.Flags(), map[string]string{"listen_addr": "listen"})
	return cmd
}
