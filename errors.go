// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwmem

import "github.com/pkg/errors"

// An InvariantError reports a wiring defect: a bus of the wrong width, or a
// decoder producing an index with no matching part. Parts panic with it
// rather than returning it.
//
type InvariantError struct {
	Part string // name of the part that detected the defect
	err  error
}

func (e *InvariantError) Error() string {
	return e.Part + ": broken invariant: " + e.err.Error()
}

// Cause returns the underlying error, which carries a stack trace.
//
func (e *InvariantError) Cause() error { return e.err }

// Unwrap supports errors.Is and errors.As from the standard library.
//
func (e *InvariantError) Unwrap() error { return e.err }

// Invariant panics with an *InvariantError for the given part.
//
func Invariant(part string, format string, args ...interface{}) {
	panic(&InvariantError{Part: part, err: errors.Errorf(format, args...)})
}

// CheckWidth panics with an *InvariantError if the bus b is not exactly
// width bits wide.
//
func CheckWidth(part string, pin string, b Bus, width int) {
	if len(b) != width {
		Invariant(part, "%s bus is %d bits wide, expected %d", pin, len(b), width)
	}
}

// Recover turns a panic carrying an *InvariantError into an error stored in
// *err. Other panics are propagated. Use it in a deferred call:
//
//	defer hwmem.Recover(&err)
//
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if ie, ok := r.(*InvariantError); ok {
		*err = ie
		return
	}
	panic(r)
}
