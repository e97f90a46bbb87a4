package cli

import (
	"fmt"
	"strings"
)

// InputError indicates a line typed at a prompt could not be used.
// It is recoverable: the caller reports it and prompts again.
type InputError struct {
	Input  string // the rejected input
	Reason string // what was expected instead
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid selection %q: %s", e.Input, e.Reason)
}

// NotFoundError indicates nothing matched a name or keyword.
// It is reported as a message, not as a failure.
type NotFoundError struct {
	Type string // what was looked for, e.g. "store"
	ID   string // the name or keyword that matched nothing
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s matching %q", e.Type, e.ID)
}

// ChoiceError indicates a value did not resolve to exactly one allowed choice.
type ChoiceError struct {
	Input   string   // the value given
	Matches []string // candidates sharing the prefix; empty when none did
	Allowed []string // every allowed choice
}

func (e *ChoiceError) Error() string {
	if len(e.Matches) > 1 {
		return fmt.Sprintf("ambiguous choice %q matches: %s", e.Input, strings.Join(e.Matches, ", "))
	}
	return fmt.Sprintf("unknown choice %q (expected one of: %s)", e.Input, strings.Join(e.Allowed, ", "))
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
