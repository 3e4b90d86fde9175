package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"wordbot/internal/domain"
)

// printResult writes a reply the way a chat client would show it: the text,
// a row of buttons for actions, and exported files saved into dir.
func printResult(w io.Writer, res domain.Result, dir string) error {
	fmt.Fprintln(w, res.Text)

	if len(res.Actions) > 0 {
		labels := make([]string, 0, len(res.Actions))
		for _, a := range res.Actions {
			labels = append(labels, "["+a.Label+"]")
		}
		fmt.Fprintln(w, strings.Join(labels, " "))
	}

	if res.File != nil {
		path := filepath.Join(dir, filepath.Base(res.File.Name))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, res.File.Data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(w, "saved %s (%d bytes)\n", path, len(res.File.Data))
	}
	return nil
}
