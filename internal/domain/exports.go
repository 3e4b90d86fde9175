package domain

import (
	interfaces "wordbot/internal/domain/interfaces"
	types "wordbot/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	AddOutcome    = types.AddOutcome
	RemoveOutcome = types.RemoveOutcome
	Result        = types.Result
	File          = types.File
	Action        = types.Action
)

// Outcome values re-exported from the types subpackage.
const (
	Added         = types.Added
	AlreadyExists = types.AlreadyExists
	Removed       = types.Removed
	NotFound      = types.NotFound

	ExportFileName = types.ExportFileName
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	WordStore       = interfaces.WordStore
	CommandExecutor = interfaces.CommandExecutor
	RemoteExecutor  = interfaces.RemoteExecutor
)
