package builderr

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind represents the class of a builder misuse error
type Kind int

const (
	// KindDuplicateRoot is raised assigning a second root element to a document
	KindDuplicateRoot Kind = iota
	// KindBadArgument is raised for malformed node-creation arguments
	KindBadArgument
	// KindSingleton is raised registering a second instance of a
	// construct its parent permits only one of
	KindSingleton
	// KindUnknownKind is raised looking up a construct kind nobody registered
	KindUnknownKind
	// KindDuplicateKind is raised registering a construct kind twice
	KindDuplicateKind
)

func (k Kind) String() string {
	switch k {
	case KindDuplicateRoot:
		return "duplicate-root"
	case KindBadArgument:
		return "bad-argument"
	case KindSingleton:
		return "singleton-violation"
	case KindUnknownKind:
		return "unknown-kind"
	case KindDuplicateKind:
		return "duplicate-kind"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "duplicate-root":
		*k = KindDuplicateRoot
	case "bad-argument":
		*k = KindBadArgument
	case "singleton-violation":
		*k = KindSingleton
	case "unknown-kind":
		*k = KindUnknownKind
	case "duplicate-kind":
		*k = KindDuplicateKind
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Error represents a configuration builder misuse error.
//
// These errors indicate a defect in the calling definition script, not
// a transient condition: none are recoverable by retry, and the library
// raises them as panics so the failure surfaces at the offending
// construction call.
type Error struct {
	Kind   Kind   `json:"kind"`
	Op     string `json:"op,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (e Error) Error() string {
	s := e.Kind.String()
	if e.Op != "" {
		s += " in " + e.Op
	}
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

// Is reports Kind equality, supporting errors.Is against a prototype value.
func (e Error) Is(target error) bool {
	if t, ok := target.(Error); ok {
		return t.Kind == e.Kind
	}
	if t, ok := target.(*Error); ok {
		return t.Kind == e.Kind
	}
	return false
}

func DuplicateRoot(opts ...Option) *Error {
	e := &Error{Kind: KindDuplicateRoot}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func BadArgument(opts ...Option) *Error {
	e := &Error{Kind: KindBadArgument}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func Singleton(opts ...Option) *Error {
	e := &Error{Kind: KindSingleton}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func UnknownKind(name string, opts ...Option) *Error {
	e := &Error{Kind: KindUnknownKind, Detail: name}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func DuplicateKind(name string, opts ...Option) *Error {
	e := &Error{Kind: KindDuplicateKind, Detail: name}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
