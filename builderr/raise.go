package builderr

import "github.com/pkg/errors"

// Raise panics with err, annotated with the call stack of the
// offending construction call. Misuse errors are never recovered by
// this library; they propagate to the definition script.
func Raise(err *Error) { panic(errors.WithStack(err)) }
