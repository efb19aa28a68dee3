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

/*
Package ezerr implements lightweight error propagation with source code call traces.

Instead of wrapping errors with ad-hoc context at every call site, each fallible
call is chained through Loc (or Info, to add a contextual message):

	func saveLogOutput(log string) error {
		f, err := os.Create(path)
		if err != nil {
			return ezerr.Loc(err)
		}
		if _, err := f.WriteString(log); err != nil {
			return ezerr.Info(err, "writing %q", path)
		}
		return nil
	}

Loc records the call site location only on the failure path - a nil error flows
through untouched with no allocation. As the failure propagates upward, each
Loc call appends another location, so the accumulated trace reads in call order:
the location closest to where the failure was first observed comes first.

At the top of the call chain the result is resolved exactly once:

	if ok := ezerr.HandleErr(saveLogOutput(log)); !ok {
		// the error has been reported to the configured sink
	}

Handle reports the error - cause first, then the call trace - to a human
readable text stream by default, or to a zerolog logger when one has been
configured via UseLogger. Handle is terminal: it never propagates or panics.

This approach is especially useful when error propagation is deferred, e.g.,
code storing results in a slice and only later checking whether they failed,
since the trace travels inside the error value and needs no runtime backtrace
machinery.

Building with the `notrace` build tag disables trace collection entirely, which
keeps source file paths out of the distributed binary. Errors then carry only
their cause and reports are rendered cause-only.
*/
package ezerr
