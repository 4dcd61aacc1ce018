package trm

import (
	"errors"
	"fmt"
)

// SyntaxErrorKind enumerates the construction-time failure classes.
type SyntaxErrorKind int

const (
	// SyntaxNotValid reports a malformed document; the message carries the
	// decoder's own diagnostic.
	SyntaxNotValid SyntaxErrorKind = iota
	// FormatNotProvided reports an unsupported format tag.
	FormatNotProvided
	// ConsumeProduceMismatch reports consume/produce/direction vectors of
	// unequal length, or transitions that disagree on tape arity.
	ConsumeProduceMismatch
	// DirectionNotFound reports a direction letter outside L/R/S.
	DirectionNotFound
	// StartStateError reports zero or more than one start state.
	StartStateError
)

// String returns the kind's name.
func (k SyntaxErrorKind) String() string {
	switch k {
	case SyntaxNotValid:
		return "SyntaxNotValid"
	case FormatNotProvided:
		return "FormatNotProvided"
	case ConsumeProduceMismatch:
		return "TransitionConsumeProduceNotMatch"
	case DirectionNotFound:
		return "TransitionDirectionNotFound"
	case StartStateError:
		return "StartStateError"
	default:
		return "Unknown"
	}
}

// SyntaxError is returned when a model cannot be constructed. Construction is
// atomic: a SyntaxError means no Machine was produced.
type SyntaxError struct {
	Kind    SyntaxErrorKind
	Message string
	cause   error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying decoder error, if any.
func (e *SyntaxError) Unwrap() error {
	return e.cause
}

// IsSyntaxError reports whether err is a SyntaxError of the given kind.
func IsSyntaxError(err error, kind SyntaxErrorKind) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.Kind == kind
}

func syntaxErrorf(kind SyntaxErrorKind, format string, args ...any) *SyntaxError {
	return &SyntaxError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrNextStateNotFound is the only run-time failure: a taken transition names
// a state that does not exist. A configuration with no matching transition is
// not an error, it is the normal halt signal.
var ErrNextStateNotFound = errors.New("next state not found")
