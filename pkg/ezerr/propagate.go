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

import "fmt"

// Loc attaches the caller's source code location to err.
//
// A nil err is returned unchanged and no location is captured - the success
// path performs no allocation and no stack inspection. Otherwise err is
// normalized via From and the caller's Location is appended to its call
// trace. Locations therefore accumulate in call order: trace entry 0 is the
// location closest to where the failure was first observed.
func Loc(err error) error {
	if err == nil {
		return nil
	}
	e := From(err)
	if loc, ok := capture(2); ok {
		e.trace = append(e.trace, loc)
	}
	return e
}

// Info behaves like Loc and additionally attaches a contextual message that
// is merged into the error description. The trace append contract is the same
// as Loc's.
func Info(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	e := From(err)
	e.info = append(e.info, fmt.Sprintf(format, args...))
	if loc, ok := capture(2); ok {
		e.trace = append(e.trace, loc)
	}
	return e
}

// Errorf constructs a new Message classified error carrying the caller's
// location. It is meant for failing out of a function directly:
//
//	return ezerr.Errorf("no config found in %q", dir)
func Errorf(format string, args ...interface{}) error {
	e := New(fmt.Sprintf(format, args...))
	if loc, ok := capture(2); ok {
		e.trace = append(e.trace, loc)
	}
	return e
}

// FromOK converts a comma-ok pair into a result. When ok is false the
// returned error is a NoValue failure carrying the caller's location.
func FromOK[T any](v T, ok bool) (T, error) {
	if ok {
		return v, nil
	}
	e := newError(NoValueErr, ErrNoValue)
	if loc, captured := capture(2); captured {
		e.trace = append(e.trace, loc)
	}
	return v, e
}
