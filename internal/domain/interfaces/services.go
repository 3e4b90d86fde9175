package interfaces

import domaintypes "wordbot/internal/domain/types"

// CommandExecutor turns chat commands into rendered replies.
//
// Implementations never fail: errors are rendered into the Result.
type CommandExecutor interface {
	Execute(command, argument string) domaintypes.Result
	Press(action string) domaintypes.Result
}

// RemoteExecutor runs commands against a wordbot server.
type RemoteExecutor interface {
	Execute(command, argument string) (domaintypes.Result, error)
	Press(action string) (domaintypes.Result, error)
	Export() ([]byte, error)
}
