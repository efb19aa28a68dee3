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
	"strings"

	"github.com/rs/zerolog"

	"github.com/oysterpack/ezerr/pkg/logging"
)

// Report renders the error as a human readable block: the classification name
// and description first, then the call trace, oldest location first. With an
// empty trace only the first line is rendered.
func (e *Error) Report() string {
	var b strings.Builder
	b.WriteString("Error ")
	b.WriteString(e.name)
	b.WriteString(": ")
	b.WriteString(e.Error())
	if len(e.trace) > 0 {
		b.WriteString("\n\nCall trace:\n")
		for _, loc := range e.trace {
			b.WriteString(loc.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Log logs the error using the specified logger.
//
// NOTE: You must call Msg on the returned event in order to send the event.
func (e *Error) Log(logger *zerolog.Logger) *zerolog.Event {
	details := zerolog.Dict().
		Str(string(logging.ErrName), e.name).
		Str(string(logging.ErrInstanceID), e.InstanceID.String())
	if len(e.info) > 0 {
		details = details.Strs(string(logging.ErrInfo), e.info)
	}
	if len(e.trace) > 0 {
		frames := make([]string, len(e.trace))
		for i, loc := range e.trace {
			frames[i] = loc.String()
		}
		details = details.Strs(string(logging.ErrTrace), frames)
	}

	return logger.Error().
		Dict(string(logging.Err), details).
		Err(e)
}
