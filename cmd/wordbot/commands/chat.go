package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"wordbot/internal/router"
	"wordbot/internal/transport"
)

// chat reads one message per line, like a chat window: "/add cat" runs a
// command, a bare add/remove/list/export presses the menu button.
func chatCmd(o *options) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the bot on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = o.cfg.ExportDir
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "word list at %s; /menu for shortcuts, Ctrl-D to quit\n", o.wire.Store.Path())

			// A Reader rather than a Scanner: lines have no length limit.
			in := bufio.NewReader(cmd.InOrStdin())
			for {
				line, readErr := in.ReadString('\n')
				line = strings.TrimRight(line, "\r\n")
				if strings.TrimSpace(line) != "" {
					res := transport.Reply(o.wire.Router, chatMessage(line))
					if err := printResult(out, res, outDir); err != nil {
						return err
					}
				}
				if errors.Is(readErr, io.EOF) {
					return nil
				}
				if readErr != nil {
					return readErr
				}
			}
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "directory for exported files (default export_dir)")
	return cmd
}

func chatMessage(line string) transport.ChatMessage {
	word := strings.TrimSpace(line)
	switch router.Decode(word) {
	case router.Add, router.Remove, router.List, router.Export:
		if !strings.HasPrefix(word, "/") {
			return transport.ChatMessage{Press: word}
		}
	}
	return transport.ChatMessage{Text: line}
}
