package router

import (
	"errors"
	"strings"
	"unicode"

	"wordbot/internal/domain"
	"wordbot/internal/logging"
)

// Router turns commands into store calls and rendered replies. It holds no
// state besides its collaborators and is safe for concurrent use.
type Router struct {
	store domain.WordStore
	debug string
	log   *logging.Logger
}

// New returns a Router over store. debugFlag is shown verbatim by status.
func New(store domain.WordStore, debugFlag string, log *logging.Logger) *Router {
	if log == nil {
		log = logging.Discard()
	}
	return &Router{store: store, debug: debugFlag, log: log}
}

// Execute runs one command. It always returns a reply; failures are
// rendered rather than returned.
func (r *Router) Execute(command, argument string) domain.Result {
	kind := Decode(command)
	arg := strings.TrimLeftFunc(argument, unicode.IsSpace)
	r.log.Debugf("execute %s %q", kind, arg)

	if kind.spec().NeedsArg && arg == "" {
		return r.fail(kind, arg, domain.ErrMissingArgument)
	}

	switch kind {
	case Add:
		outcome, err := r.store.Add(arg)
		if err != nil {
			return r.fail(kind, arg, err)
		}
		return renderAdd(outcome, domain.Normalize(arg))
	case Remove:
		outcome, err := r.store.Remove(arg)
		if err != nil {
			return r.fail(kind, arg, err)
		}
		return renderRemove(outcome, domain.Normalize(arg))
	case List:
		words, err := r.store.List()
		if err != nil {
			return r.fail(kind, arg, err)
		}
		return renderList(words)
	case Export:
		data, err := r.store.Export()
		if err != nil {
			return r.fail(kind, arg, err)
		}
		return renderExport(data)
	case Status:
		n, err := r.store.Count()
		if err != nil {
			return r.fail(kind, arg, err)
		}
		return renderStatus(n, r.debug)
	case Menu:
		return renderMenu()
	case Unknown:
		return r.fail(kind, command, domain.ErrUnknownCommand)
	}
	return r.fail(Unknown, command, domain.ErrUnknownCommand)
}

// Press handles a menu shortcut. list and export run the command; add and
// remove need a word, so they answer with the line to type.
func (r *Router) Press(action string) domain.Result {
	kind := Decode(action)
	switch kind {
	case List, Export:
		return r.Execute(kind.String(), "")
	case Add, Remove:
		return domain.Result{Text: "type: " + kind.spec().Usage}
	case Status, Menu, Unknown:
	}
	return r.fail(Unknown, action, domain.ErrUnknownCommand)
}

func (r *Router) fail(kind Kind, arg string, err error) domain.Result {
	switch {
	case errors.Is(err, domain.ErrMissingArgument):
		return domain.Result{Text: "usage: " + kind.spec().Usage, Failed: true}
	case errors.Is(err, domain.ErrInvalidInput):
		return domain.Result{Text: "word must not be empty", Failed: true}
	case errors.Is(err, domain.ErrUnknownCommand):
		r.log.Debugf("unknown command %q", arg)
		return renderUnknown(arg)
	default:
		r.log.Errorf("%s %q: %v", kind, arg, err)
		return domain.Result{Text: "storage unavailable, try again later", Failed: true}
	}
}

// Compile-time assertion that Router implements domain.CommandExecutor.
var _ domain.CommandExecutor = (*Router)(nil)
