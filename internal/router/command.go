package router

import (
	"strings"
	"unicode"
)

// Kind is one of the commands the router understands.
type Kind int

const (
	Unknown Kind = iota
	Add
	Remove
	List
	Export
	Status
	Menu
)

// Command describes one entry of the command set.
type Command struct {
	Kind        Kind
	Name        string
	Usage       string
	Description string
	NeedsArg    bool
}

var commands = []Command{
	{Kind: Add, Name: "add", Usage: "/add <word>", Description: "add a word", NeedsArg: true},
	{Kind: Remove, Name: "remove", Usage: "/remove <word>", Description: "remove a word", NeedsArg: true},
	{Kind: List, Name: "list", Usage: "/list", Description: "show all words"},
	{Kind: Export, Name: "export", Usage: "/export", Description: "download the words as a text file"},
	{Kind: Status, Name: "status", Usage: "/status", Description: "show word count and debug flag"},
	{Kind: Menu, Name: "menu", Usage: "/menu", Description: "show shortcut buttons"},
}

// Commands returns the command set in help order.
func Commands() []Command {
	out := make([]Command, len(commands))
	copy(out, commands)
	return out
}

// String returns the command name, or "unknown".
func (k Kind) String() string {
	for _, c := range commands {
		if c.Kind == k {
			return c.Name
		}
	}
	return "unknown"
}

func (k Kind) spec() Command {
	for _, c := range commands {
		if c.Kind == k {
			return c
		}
	}
	return Command{Kind: Unknown}
}

// Decode maps a raw command name to its Kind. A leading slash, a
// "@botname" suffix and letter case are ignored.
func Decode(name string) Kind {
	name = strings.TrimPrefix(strings.TrimSpace(name), "/")
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	name = strings.ToLower(name)
	for _, c := range commands {
		if c.Name == name {
			return c.Kind
		}
	}
	return Unknown
}

// ParseLine splits a chat line such as "/add ice cream" into the command
// name and its argument. The argument is everything after the name and the
// whitespace that follows it, taken verbatim. ok is false for lines that
// are not commands.
func ParseLine(text string) (name, argument string, ok bool) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	text = text[1:]
	end := strings.IndexFunc(text, unicode.IsSpace)
	if end < 0 {
		return stripBotName(text), "", true
	}
	return stripBotName(text[:end]), strings.TrimLeftFunc(text[end:], unicode.IsSpace), true
}

func stripBotName(name string) string {
	if i := strings.IndexByte(name, '@'); i >= 0 {
		return name[:i]
	}
	return name
}
