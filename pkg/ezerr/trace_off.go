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

//go:build notrace

package ezerr

// TraceEnabled reports whether call trace collection was compiled in.
// This build was compiled with the `notrace` tag: no locations are captured
// and errors carry only their cause.
const TraceEnabled = false

func capture(_ int) (Location, bool) {
	return Location{}, false
}
