package pastebin

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is wrapped by a DecodeError when a required element is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrEmptyContent is returned when creating a paste with no body.
	ErrEmptyContent = errors.New("paste content is empty")

	// ErrPassphraseRequired is returned when encryption or decryption is
	// requested without a passphrase.
	ErrPassphraseRequired = errors.New("passphrase required")
)

// ValueError reports a value that violates one of the value types' rules.
// Kind names the value type ("privacy", "timestamp", ...).
type ValueError struct {
	Kind   string
	Value  string
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Value, e.Reason)
}

// DecodeError reports a response body that could not be decoded.
// Entry is the 1-based position in a paste list, or 0 for single records.
type DecodeError struct {
	Entry int
	Field string
	Value string
	Err   error
}

func (e *DecodeError) Error() string {
	msg := "decoding response"
	if e.Entry > 0 {
		msg += fmt.Sprintf(": entry %d", e.Entry)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": field %s", e.Field)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" (value %q)", e.Value)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError is an error message returned by the provider in a response body.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "pastebin returned an error: " + e.Message
}
