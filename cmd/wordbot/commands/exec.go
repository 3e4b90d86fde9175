package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"wordbot/internal/client"
	"wordbot/internal/domain"
)

var errCommandFailed = errors.New("command failed")

// exec <command> [argument...]: run one command locally or on --server.
func execCmd(o *options) *cobra.Command {
	var (
		server string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "exec <command> [argument...]",
		Short: "Run one command (add, remove, list, export, status, menu)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, argument := args[0], strings.Join(args[1:], " ")

			var res domain.Result
			if server != "" {
				var err error
				res, err = client.NewHTTP(server, nil).Execute(name, argument)
				if err != nil {
					return err
				}
			} else {
				res = o.wire.Router.Execute(name, argument)
			}

			if outDir == "" {
				outDir = o.cfg.ExportDir
			}
			if err := printResult(cmd.OutOrStdout(), res, outDir); err != nil {
				return err
			}
			if res.Failed {
				return errCommandFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "run on a wordbot server (e.g. http://127.0.0.1:8080)")
	cmd.Flags().StringVar(&outDir, "out", "", "directory for exported files (default export_dir)")
	return cmd
}
