package dawg

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the fatal conditions the pipeline can raise.
type Kind int

const (
	// InvalidInput means the word list was not sorted, contained an empty
	// word, or used a character outside A-Z.
	InvalidInput Kind = iota
	// CorruptOutput means the verifier's enumerated word set disagreed with
	// the input set. Indicates an implementation bug.
	CorruptOutput
	// TooManyNodes means neither packing mode can represent the node count.
	TooManyNodes
	// IoError wraps a failure from the read/write surface.
	IoError
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case CorruptOutput:
		return "CorruptOutput"
	case TooManyNodes:
		return "TooManyNodes"
	case IoError:
		return "IoError"
	default:
		return "Unknown"
	}
}

// Error is the single typed error the core raises. Callers branch on Kind;
// Unwrap exposes the underlying cause (if any) for errors.Is/As.
type Error struct {
	Kind Kind
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.err }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func wrapError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, err: errors.Wrap(cause, msg)}
}

// WrapIOError wraps a failure from a read/write surface (e.g. a word-list
// file or an output file) as an IoError, for callers outside the package;
// cmd/dawgc uses this so a file-system failure surfaces as the same typed
// error the core itself would raise.
func WrapIOError(msg string, cause error) *Error {
	return wrapError(IoError, msg, cause)
}
