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

// Location identifies a source code location: the file, the line, and the
// fully qualified name of the enclosing function. It is inert data - once
// constructed it is never mutated.
type Location struct {
	File string
	Line int
	Func string
}

func (l Location) String() string {
	if l.Func == "" {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return fmt.Sprintf("%s:%d (%s)", l.File, l.Line, l.Func)
}

// Caller returns the Location of a call site on the current goroutine's stack.
// skip = 0 identifies the caller of Caller, 1 its caller, and so on.
// It is meant for helper functions that want to attach their caller's
// location via Error.At:
//
//	return ezerr.From(err).At(ezerr.Caller(1))
//
// When trace collection is disabled the zero Location is returned.
func Caller(skip int) Location {
	loc, _ := capture(skip + 2)
	return loc
}
