package snippet

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds this package can produce.
// Callers match them with errors.Is, e.g.:
//
//	if errors.Is(err, snippet.ErrPrefixRequired) { ... }
var (
	ErrNameRequired     = errors.New("name is required")
	ErrPrefixRequired   = errors.New("prefix is required")
	ErrBodyEmpty        = errors.New("body is empty")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrSerialization    = errors.New("serialization failed")
	ErrFilesystem       = errors.New("filesystem operation failed")
)

// Error carries a sentinel category plus a human-readable message.
// Filesystem and serialization failures also keep the underlying
// OS or encoder error in Cause so errors.Is can match either one.
type Error struct {
	Err     error  // sentinel category (one of the vars above)
	Cause   error  // underlying error, nil for validation failures
	Message string // human-readable error message
	Index   int    // offending line index, only for ErrIndexOutOfBounds
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func nameRequired() *Error {
	return &Error{
		Err:     ErrNameRequired,
		Message: "snippet name is required",
	}
}

func prefixRequired() *Error {
	return &Error{
		Err:     ErrPrefixRequired,
		Message: "snippet prefix is required",
	}
}

func bodyEmpty() *Error {
	return &Error{
		Err:     ErrBodyEmpty,
		Message: "snippet body cannot be empty",
	}
}

func indexOutOfBounds(n int) *Error {
	return &Error{
		Err:     ErrIndexOutOfBounds,
		Message: fmt.Sprintf("line index %d out of bounds", n),
		Index:   n,
	}
}

func serializationFailed(cause error) *Error {
	return &Error{
		Err:     ErrSerialization,
		Cause:   cause,
		Message: fmt.Sprintf("encoding snippets: %v", cause),
	}
}

func filesystemFailed(op, path string, cause error) *Error {
	return &Error{
		Err:     ErrFilesystem,
		Cause:   cause,
		Message: fmt.Sprintf("%s %s: %v", op, path, cause),
	}
}
