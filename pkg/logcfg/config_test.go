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

package logcfg_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/oysterpack/ezerr/pkg/ezerrtest"
	"github.com/oysterpack/ezerr/pkg/logcfg"
	"github.com/oysterpack/ezerr/pkg/logging"
)

func TestLogConfig(t *testing.T) {
	ezerrtest.ClearEnvSettings()

	t.Run("with default settings", func(t *testing.T) {
		// Given the config is loaded from the env
		var config logcfg.Config
		if err := envconfig.Process(logcfg.EnvPrefix, &config); err != nil {
			t.Fatal(err)
		}
		// Then it is loaded with default values
		t.Logf("Config: %s", &config)
		const defaultLogLevel = logcfg.Level(zerolog.InfoLevel)
		if config.GlobalLevel != defaultLogLevel {
			t.Errorf("Config.GlobalLevel default value did not match: %v", config.GlobalLevel)
		}
		if config.DisableSampling {
			t.Error("Config.DisableSampling default value should be false")
		}
	})

	t.Run("with LOG_GLOBAL_LEVEL warn", func(t *testing.T) {
		// Given the log level env var is set
		ezerrtest.Setenv(ezerrtest.LogGlobalLevel, "warn")
		defer ezerrtest.Unsetenv(ezerrtest.LogGlobalLevel)
		var config logcfg.Config
		if err := envconfig.Process(logcfg.EnvPrefix, &config); err != nil {
			t.Fatal(err)
		}
		// Then the global log level matches the env var setting
		t.Logf("Config: %s", &config)
		const expectedLogLevel = logcfg.Level(zerolog.WarnLevel)
		if config.GlobalLevel != expectedLogLevel {
			t.Errorf("Config.GlobalLevel did not match: %v", config.GlobalLevel)
		}
	})

	t.Run("with an invalid LOG_GLOBAL_LEVEL", func(t *testing.T) {
		ezerrtest.Setenv(ezerrtest.LogGlobalLevel, "loud")
		defer ezerrtest.Unsetenv(ezerrtest.LogGlobalLevel)
		var config logcfg.Config
		if err := envconfig.Process(logcfg.EnvPrefix, &config); err == nil {
			t.Error("an invalid log level must fail config loading")
		}
	})
}

func TestConfigureZerolog(t *testing.T) {
	ezerrtest.ClearEnvSettings()

	// When zerolog is configured
	if err := logcfg.ConfigureZerolog(); err != nil {
		t.Fatal(err)
	}
	// Then log events use the standard field names
	buf := new(strings.Builder)
	logger := logcfg.NewLogger(buf)
	logger.Info().Msg("hello")

	var event map[string]interface{}
	if err := json.Unmarshal([]byte(buf.String()), &event); err != nil {
		t.Fatalf("Invalid JSON log event: %v", err)
	}
	for _, field := range []logging.Field{logging.Timestamp, logging.Level, logging.Message} {
		if _, exists := event[string(field)]; !exists {
			t.Errorf("log event is missing the %q field: %s", field, buf.String())
		}
	}
	if event[string(logging.Message)] != "hello" {
		t.Errorf("message did not match: %s", buf.String())
	}
}
