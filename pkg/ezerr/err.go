/*
 * Copyright (c) 2019 OysterPack, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ezerr

import (
	"errors"
	"strings"

	"github.com/oklog/ulid"
	"github.com/oysterpack/ezerr/pkg/ulidgen"
)

var newULID = ulidgen.MonotonicULIDGenerator()

// Standard error classification names. The classification lives in the error
// content, not the type system - Error is the single error type.
const (
	// MessageErr classifies errors constructed from a plain message
	MessageErr = "Message"
	// WrappedInternalErr classifies foreign errors that were normalized into an Error
	WrappedInternalErr = "WrappedInternal"
	// NoValueErr classifies failures where an expected value was absent
	NoValueErr = "NoValue"
	// IndexOutOfBoundsErr classifies indexed access outside the valid range
	IndexOutOfBoundsErr = "IndexOutOfBounds"
	// RangeOutOfBoundsErr classifies a range that did not fit within a sequence
	RangeOutOfBoundsErr = "RangeOutOfBounds"
	// InvalidRangeErr classifies a range whose end precedes its start
	InvalidRangeErr = "InvalidRange"
)

// Error is the error type every fallible operation in the propagation
// protocol communicates through.
//
// The cause is set exactly once, at creation, and never replaced. The call
// trace only grows - each propagation step appends one Location and nothing
// ever removes or reorders entries.
type Error struct {
	name  string
	cause error
	info  []string
	trace []Location

	// InstanceID is the unique error instance ID.
	// use case: the InstanceID can be reported back to the client, which can
	// then be used to track down the specific error occurrence.
	InstanceID ulid.ULID
}

func newError(name string, cause error) *Error {
	return &Error{
		name:       name,
		cause:      cause,
		InstanceID: newULID(),
	}
}

// New constructs a new Error with the specified message.
func New(msg string) *Error {
	return newError(MessageErr, errors.New(msg))
}

// Custom constructs a new Error with an application defined classification
// name. The code can be used to store arbitrary extra information.
func Custom(code uint32, name, message string) *Error {
	return newError(name, &CustomError{Code: code, Name: name, Message: message})
}

// From normalizes err into an *Error.
//
// If err already is an *Error it is returned as is - the accumulated call
// trace is preserved, never reset. Otherwise the returned Error wraps err as
// its cause with an empty call trace. Any error value can enter the
// propagation protocol this way - the only capability required of the cause
// is that it renders itself as a message.
//
// err must not be nil.
func From(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return newError(causeName(err), err)
}

func causeName(cause error) string {
	switch c := cause.(type) {
	case *IndexError:
		return IndexOutOfBoundsErr
	case *RangeError:
		return RangeOutOfBoundsErr
	case *InvalidRangeError:
		return InvalidRangeErr
	case *CustomError:
		return c.Name
	}
	if errors.Is(cause, ErrNoValue) {
		return NoValueErr
	}
	return WrappedInternalErr
}

// Error implements the error interface. Contextual messages attached via Info
// are rendered outermost first, followed by the cause.
func (e *Error) Error() string {
	if len(e.info) == 0 {
		return e.cause.Error()
	}
	var b strings.Builder
	for i := len(e.info) - 1; i >= 0; i-- {
		b.WriteString(e.info[i])
		b.WriteString(": ")
	}
	b.WriteString(e.cause.Error())
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Name returns the error classification name.
func (e *Error) Name() string {
	return e.name
}

// Trace returns the call trace, ordered from the location where the failure
// was first observed to the last propagation step.
func (e *Error) Trace() []Location {
	return e.trace
}

// At appends loc to the call trace. It is intended for helper functions that
// capture their own caller's location via Caller. It is a no-op when trace
// collection is disabled.
func (e *Error) At(loc Location) *Error {
	if TraceEnabled {
		e.trace = append(e.trace, loc)
	}
	return e
}
