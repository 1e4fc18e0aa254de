// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package clif

import "errors"

var (
	// ErrDuplicateCommand is returned when two handler registrations collide on one path.
	ErrDuplicateCommand = errors.New("command already registered")
	// ErrInvalidCommand is returned when a command declaration is malformed.
	ErrInvalidCommand = errors.New("invalid command declaration")
	// ErrInvalidArgSpec is returned when an argument spec is malformed.
	ErrInvalidArgSpec = errors.New("invalid argument spec")
	// ErrUnknownCommand is returned when dispatch cannot resolve a token to a command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUnknownArgument is returned when a token does not match any declared flag or argument.
	ErrUnknownArgument = errors.New("unknown argument")
	// ErrUnexpectedArgument is returned when a positional token has no declared positional left to fill.
	ErrUnexpectedArgument = errors.New("unexpected argument")
	// ErrMissingValue is returned when a named argument is not followed by its value.
	ErrMissingValue = errors.New("missing value for argument")
	// ErrMissingArgument is returned when a required argument or positional is absent.
	ErrMissingArgument = errors.New("missing required argument")
	// ErrHandler wraps an error returned by an invoked handler. The framework
	// never retries or swallows handler failures.
	ErrHandler = errors.New("command failed")
)

// IsUsageError reports whether err is a user-input mistake, recoverable by
// re-invoking with corrected arguments, rather than a configuration or
// handler failure.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnknownArgument) ||
		errors.Is(err, ErrUnexpectedArgument) ||
		errors.Is(err, ErrMissingValue) ||
		errors.Is(err, ErrMissingArgument)
}
