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
Package eslice provides indexed slice access that integrates with the ezerr
propagation protocol.

An out of bounds access never panics. It returns an error whose cause carries
the requested index and the slice length as structured data, plus the caller's
source location - ready to be chained through ezerr.Loc like any other
failure:

	v, err := eslice.Get(xs, i)
	if err != nil {
		return ezerr.Loc(err)
	}
*/
package eslice

import "github.com/oysterpack/ezerr/pkg/ezerr"

// Get returns the element at index i. When i is out of bounds - including a
// negative i - the returned error carries an *ezerr.IndexError cause with the
// requested index and the slice length.
func Get[S ~[]E, E any](s S, i int) (E, error) {
	if i >= 0 && i < len(s) {
		return s[i], nil
	}
	var zero E
	return zero, ezerr.From(&ezerr.IndexError{Index: i, Len: len(s)}).At(ezerr.Caller(1))
}

// GetPtr returns a pointer to the element at index i. Mutations through the
// returned pointer are visible in the slice. Out of bounds behavior matches
// Get.
func GetPtr[S ~[]E, E any](s S, i int) (*E, error) {
	if i >= 0 && i < len(s) {
		return &s[i], nil
	}
	return nil, ezerr.From(&ezerr.IndexError{Index: i, Len: len(s)}).At(ezerr.Caller(1))
}

// Sub returns the subslice s[i:j]. The subslice shares its backing array with
// s, so it serves both read and write access.
//   - j < i fails with an *ezerr.InvalidRangeError cause
//   - i < 0, i >= len(s), or j > len(s) fails with an *ezerr.RangeError cause
func Sub[S ~[]E, E any](s S, i, j int) (S, error) {
	switch {
	case j < i:
		return nil, ezerr.From(&ezerr.InvalidRangeError{Start: i, End: j}).At(ezerr.Caller(1))
	case i < 0 || i >= len(s) || j > len(s):
		return nil, ezerr.From(&ezerr.RangeError{Start: i, End: j, Len: len(s)}).At(ezerr.Caller(1))
	}
	return s[i:j], nil
}
