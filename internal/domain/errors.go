package domain

import "errors"

var (
	// ErrInvalidInput is returned when a word is empty after normalization.
	ErrInvalidInput = errors.New("invalid input: word is empty")

	// ErrMissingArgument is returned when a command that needs a word gets none.
	ErrMissingArgument = errors.New("missing argument")

	// ErrStorageUnavailable wraps every failure to read, parse or write the
	// backing file.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnknownCommand is returned for command names outside the command set.
	ErrUnknownCommand = errors.New("unknown command")
)
