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
	"fmt"
	"io"
	"os"

	goerrors "github.com/go-errors/errors"
	"github.com/rs/zerolog"
)

// terminal reporting sink
// - when logger is set, errors are reported through it
// - otherwise a human readable report is written to out
//
// The sink is meant to be configured once during program initialization.
var (
	out       io.Writer = os.Stderr
	errLogger *zerolog.Logger
)

// SetOutput directs the default text reporting sink to w.
func SetOutput(w io.Writer) {
	out = w
}

// UseLogger routes error reports through the specified logger instead of the
// default text output. Passing nil restores the default text output.
func UseLogger(l *zerolog.Logger) {
	errLogger = l
}

// report is the terminal sink. It never fails - sink failures are swallowed
// because this path exists specifically to be a safe terminal sink.
func report(e *Error) {
	defer func() {
		_ = recover()
	}()
	if errLogger != nil {
		e.Log(errLogger).Msg("")
		return
	}
	_, _ = fmt.Fprintln(out, e.Report())
}

// Handle resolves a result. On success the payload is returned with ok =
// true. On failure the error is reported to the configured sink and the zero
// value is returned with ok = false.
//
// Handle is terminal by contract: it never propagates the error further and
// never panics, regardless of the sink's state.
func Handle[T any](v T, err error) (value T, ok bool) {
	if err == nil {
		return v, true
	}
	report(From(err))
	return value, false
}

// HandleErr resolves an error-only result. It returns true on success. On
// failure the error is reported to the configured sink - see Handle.
func HandleErr(err error) bool {
	if err == nil {
		return true
	}
	report(From(err))
	return false
}

// Do executes fn and resolves its result - see Handle. This is useful for
// closures where no error can be returned by default.
//
// A panic inside fn does not abort the process: it is recovered, reported
// with the panic stack attached, and resolved as a failure.
func Do[T any](fn func() (T, error)) (value T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			report(From(goerrors.Wrap(r, 2)))
			var zero T
			value, ok = zero, false
		}
	}()
	return Handle(fn())
}

// Must resolves a result like Handle but panics on failure, after the error
// has been reported.
func Must[T any](v T, err error) T {
	value, ok := Handle(v, err)
	if !ok {
		panic(From(err))
	}
	return value
}
