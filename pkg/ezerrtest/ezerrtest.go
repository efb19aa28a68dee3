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

// Package ezerrtest is used to support testing
package ezerrtest

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/oysterpack/ezerr/pkg/logcfg"
	"github.com/oysterpack/ezerr/pkg/logging"
)

// Key represents env var config property names - without the envconfig name prefix
type Key string

// envconfig keys
const (
	LogGlobalLevel     = Key("LOG_GLOBAL_LEVEL")
	LogDisableSampling = Key("LOG_DISABLE_SAMPLING")
)

// Setenv prefixes the key with the module env prefix and then sets the value of
// the environment variable named by the prefixed key.
func Setenv(key Key, value string) {
	if err := os.Setenv(prefix(key), value); err != nil {
		panic(err)
	}
}

// Unsetenv prefixes the key with the module env prefix and then tries to unset
// the env var.
func Unsetenv(key Key) {
	if err := os.Unsetenv(prefix(key)); err != nil {
		panic(err)
	}
}

// ClearEnvSettings clears the module specific env vars.
func ClearEnvSettings() {
	Unsetenv(LogGlobalLevel)
	Unsetenv(LogDisableSampling)
}

// LookupEnv prefixes the key with the module env prefix and then retrieves the
// value of the environment variable named by the prefixed key.
func LookupEnv(key Key) (string, bool) {
	return os.LookupEnv(prefix(key))
}

func prefix(key Key) string {
	return fmt.Sprintf("%s_%s", logcfg.EnvPrefix, strings.ToUpper(string(key)))
}

// TestLogger writes to a strings.Builder, which can then be inspected while testing.
type TestLogger struct {
	*zerolog.Logger
	Buf *strings.Builder
}

// NewTestLogger constructs a new TestLogger instance.
func NewTestLogger(p logging.Package) *TestLogger {
	// Given a clean env
	ClearEnvSettings()
	// And zerolog is configured
	if err := logcfg.ConfigureZerolog(); err != nil {
		log.Fatalf("logcfg.ConfigureZerolog() failed: %v", err)
	}
	// When a new zerolog.Logger is created with its output captured in a strings.Builder
	buf := new(strings.Builder)
	logger := logcfg.NewLogger(buf)
	logger = logging.PackageLogger(logger, p)
	return &TestLogger{logger, buf}
}

// LogEvent is used to unmarshal zerolog JSON log events
type LogEvent struct {
	Level        string     `json:"l"`
	Timestamp    int64      `json:"t"`
	Message      string     `json:"m"`
	Package      string     `json:"p"`
	ErrorMessage string     `json:"e"`
	Error        *ErrDetail `json:"f"`
}

// Time converts the log event UNIX time into a time.Time
func (e *LogEvent) Time() time.Time {
	return time.Unix(e.Timestamp, 0)
}

// ErrDetail represents the error details that were logged.
type ErrDetail struct {
	Name       string   `json:"n"`
	InstanceID string   `json:"x"`
	Trace      []string `json:"c"`
	Info       []string `json:"g"`
}
