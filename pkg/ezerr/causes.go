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
	"fmt"
)

// ErrNoValue is the cause used when an expected value was absent - see FromOK.
var ErrNoValue = errors.New("no value was present")

// IndexError is the structured cause for indexed access outside the valid
// range of a sequence. Downstream renderers get the requested index and the
// sequence length rather than an opaque message.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d was outside of the range 0..%d", e.Index, e.Len)
}

// RangeError is the structured cause for a range that did not fit within a
// sequence.
type RangeError struct {
	Start int
	End   int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range %d..%d was larger than the sequence range 0..%d", e.Start, e.End, e.Len)
}

// InvalidRangeError is the structured cause for a range whose end precedes
// its start.
type InvalidRangeError struct {
	Start int
	End   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("the provided range %d..%d was invalid (end < start)", e.Start, e.End)
}

// CustomError is the structured cause for application defined errors - see
// Custom. The code can be used to store arbitrary extra information.
type CustomError struct {
	Code    uint32
	Name    string
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}
