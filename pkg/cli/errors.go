package cli

import "errors"

// Sentinel errors for the command error taxonomy. Handlers wrap these with
// fmt.Errorf("%w: ...") so callers can classify failures with errors.Is
// while the user still sees the full message.
var (
	// ErrWrongMode marks a command that exists but is illegal in the
	// current mode.
	ErrWrongMode = errors.New("wrong mode")

	// ErrMissingArgument marks a required token that was not supplied.
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidArgument marks a malformed token (IP, time, date, ...).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownCommand means no registered command name prefixes the input.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrPersistence marks a configuration load/save failure.
	ErrPersistence = errors.New("persistence failure")

	// ErrUnavailable marks a command whose optional collaborator (such as
	// the clock) is not present.
	ErrUnavailable = errors.New("feature unavailable")
)
