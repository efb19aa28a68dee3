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

//go:build !notrace

package ezerr

import "runtime"

// TraceEnabled reports whether call trace collection was compiled in.
// Building with the `notrace` tag disables collection, which keeps source
// file paths out of the binary.
const TraceEnabled = true

// capture resolves the Location skip frames up the stack.
// skip follows the runtime.Caller convention: 1 identifies the caller of
// capture.
func capture(skip int) (Location, bool) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{}, false
	}
	loc := Location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Func = fn.Name()
	}
	return loc, true
}
