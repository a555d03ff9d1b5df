package result

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDiagram is the sentinel every fatal parse fault matches.
var ErrMalformedDiagram = errors.New("malformed diagram")

// DiagramError is a fatal structural fault. It aborts the whole parse and
// no partial model is returned.
type DiagramError struct {
	Node    string // id or name of the offending node, if known
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DiagramError) Error() string {
	var b strings.Builder
	b.WriteString("malformed diagram")
	if e.Node != "" {
		b.WriteString(" at ")
		b.WriteString(e.Node)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *DiagramError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target is ErrMalformedDiagram.
func (e *DiagramError) Is(target error) bool {
	return target == ErrMalformedDiagram
}

// Malformed returns a DiagramError for node with a formatted message.
func Malformed(node, format string, args ...any) *DiagramError {
	return &DiagramError{Node: node, Message: fmt.Sprintf(format, args...)}
}

// MalformedCause returns a DiagramError wrapping cause.
func MalformedCause(node, message string, cause error) *DiagramError {
	return &DiagramError{Node: node, Message: message, Cause: cause}
}

// IsMalformed reports whether err is a fatal diagram fault.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedDiagram)
}
