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

package logging

// Field is used to define log event fields used for structured logging.
type Field string

// Field enum
const (
	// Timestamp specifies when the log event occurred in Unix time.
	Timestamp = Field("t")
	// Level specifies the log level
	Level = Field("l")
	// Message stores the log event message
	Message = Field("m")
	// Error stores the error message
	Error = Field("e")
	// Stack stores a marshalled stacktrace when one was attached to the error
	Stack = Field("s")
	// Pkg specifies which package logged the event
	Pkg = Field("p")

	// Err stores the error details as a nested dict
	Err = Field("f")
	// ErrName stores the error classification name
	ErrName = Field("n")
	// ErrInstanceID stores the unique error instance ULID
	ErrInstanceID = Field("x")
	// ErrTrace stores the error call trace, oldest location first
	ErrTrace = Field("c")
	// ErrInfo stores contextual messages that were attached while the
	// error was propagated
	ErrInfo = Field("g")
)
