package router

import (
	"fmt"
	"strings"

	"wordbot/internal/domain"
)

func renderAdd(o domain.AddOutcome, word string) domain.Result {
	if o == domain.AlreadyExists {
		return domain.Result{Text: "already exists: " + word}
	}
	return domain.Result{Text: "added: " + word}
}

func renderRemove(o domain.RemoveOutcome, word string) domain.Result {
	if o == domain.NotFound {
		return domain.Result{Text: "not found: " + word}
	}
	return domain.Result{Text: "removed: " + word}
}

func renderList(words []string) domain.Result {
	if len(words) == 0 {
		return domain.Result{Text: "the list is empty"}
	}
	var b strings.Builder
	b.WriteString("words:")
	for _, w := range words {
		b.WriteString("\n• ")
		b.WriteString(w)
	}
	return domain.Result{Text: b.String()}
}

func renderExport(data []byte) domain.Result {
	return domain.Result{
		Text: "export: " + domain.ExportFileName,
		File: &domain.File{Name: domain.ExportFileName, Data: data},
	}
}

func renderStatus(n int, debug string) domain.Result {
	return domain.Result{Text: fmt.Sprintf("status:\n• words: %d\n• debug: %s", n, debug)}
}

func renderMenu() domain.Result {
	return domain.Result{
		Text: "menu:",
		Actions: []domain.Action{
			{Label: "Add", Data: Add.String()},
			{Label: "Remove", Data: Remove.String()},
			{Label: "List", Data: List.String()},
			{Label: "Export", Data: Export.String()},
		},
	}
}

func renderUnknown(name string) domain.Result {
	var b strings.Builder
	fmt.Fprintf(&b, "unknown command: %s\ncommands:", name)
	for _, c := range commands {
		fmt.Fprintf(&b, "\n%s - %s", c.Usage, c.Description)
	}
	return domain.Result{Text: b.String(), Failed: true}
}
