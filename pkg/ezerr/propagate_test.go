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

package ezerr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/oysterpack/ezerr/pkg/ezerr"
)

func TestLoc_Success(t *testing.T) {
	t.Parallel()
	// When Loc is applied to a nil error any number of times
	var err error
	for i := 0; i < 10; i++ {
		err = ezerr.Loc(err)
	}
	// Then nil flows through untouched
	if err != nil {
		t.Errorf("the success path must be untouched: %v", err)
	}
}

func failInner() error {
	return ezerr.Loc(errors.New("disk full"))
}

func failMiddle() error {
	return ezerr.Loc(failInner())
}

func failOuter() error {
	return ezerr.Loc(failMiddle())
}

func TestLoc_TraceAccumulatesInCallOrder(t *testing.T) {
	t.Parallel()
	// When a failure propagates through a three-level call chain
	err := failOuter()
	e := ezerr.From(err)
	// Then each propagation step appended exactly one location
	trace := e.Trace()
	if len(trace) != 3 {
		t.Fatalf("expected 3 trace entries: %v", trace)
	}
	// And the entries are ordered from the innermost call site outward
	for i, fn := range []string{"failInner", "failMiddle", "failOuter"} {
		if !strings.Contains(trace[i].Func, fn) {
			t.Errorf("trace[%d] expected %s: %s", i, fn, trace[i].Func)
		}
		if !strings.HasSuffix(trace[i].File, "propagate_test.go") {
			t.Errorf("trace[%d] file did not match: %s", i, trace[i].File)
		}
		if trace[i].Line == 0 {
			t.Errorf("trace[%d] line was not captured", i)
		}
	}
}

func TestInfo(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		if err := ezerr.Info(nil, "ignored"); err != nil {
			t.Errorf("the success path must be untouched: %v", err)
		}
	})

	t.Run("merges context into the description", func(t *testing.T) {
		// Given a propagated failure
		cause := errors.New("disk full")
		err := ezerr.Loc(cause)
		// When context is attached at the next propagation step
		err = ezerr.Info(err, "saving snapshot %d", 7)
		e := ezerr.From(err)
		// Then the description merges the context with the cause
		if e.Error() != "saving snapshot 7: disk full" {
			t.Errorf("Error() did not match: %s", e.Error())
		}
		// And the cause itself was not replaced
		if e.Unwrap() != cause {
			t.Error("Info must never replace the cause")
		}
		// And Info honored the trace append contract
		if len(e.Trace()) != 2 {
			t.Errorf("expected 2 trace entries: %v", e.Trace())
		}
	})

	t.Run("outermost context renders first", func(t *testing.T) {
		err := ezerr.Info(ezerr.Info(errors.New("boom"), "inner"), "outer")
		if err.Error() != "outer: inner: boom" {
			t.Errorf("Error() did not match: %s", err.Error())
		}
	})
}

func TestErrorf(t *testing.T) {
	t.Parallel()
	// When a function fails out directly
	err := ezerr.Errorf("no config found in %q", "/etc/app")
	e := ezerr.From(err)
	// Then the error is a located Message error
	if e.Name() != ezerr.MessageErr {
		t.Errorf("Name did not match: %s", e.Name())
	}
	if e.Error() != `no config found in "/etc/app"` {
		t.Errorf("Error() did not match: %s", e.Error())
	}
	if len(e.Trace()) != 1 {
		t.Fatalf("expected 1 trace entry: %v", e.Trace())
	}
	if !strings.Contains(e.Trace()[0].Func, "TestErrorf") {
		t.Errorf("the location must identify the Errorf call site: %s", e.Trace()[0].Func)
	}
}

func TestFromOK(t *testing.T) {
	t.Parallel()

	lookup := func(key string) (int, bool) {
		if key == "answer" {
			return 42, true
		}
		return 0, false
	}

	t.Run("value present", func(t *testing.T) {
		v, err := ezerr.FromOK(lookup("answer"))
		if err != nil {
			t.Fatalf("expected success: %v", err)
		}
		if v != 42 {
			t.Errorf("value did not match: %d", v)
		}
	})

	t.Run("value absent", func(t *testing.T) {
		_, err := ezerr.FromOK(lookup("question"))
		if err == nil {
			t.Fatal("expected a failure")
		}
		if !errors.Is(err, ezerr.ErrNoValue) {
			t.Errorf("cause did not match: %v", err)
		}
		e := ezerr.From(err)
		if e.Name() != ezerr.NoValueErr {
			t.Errorf("Name did not match: %s", e.Name())
		}
		if len(e.Trace()) != 1 {
			t.Errorf("expected 1 trace entry: %v", e.Trace())
		}
	})
}

// locHelper attaches its caller's location - the pattern custom helpers are
// expected to follow.
func locHelper(err error) error {
	return ezerr.From(err).At(ezerr.Caller(1))
}

func TestAt(t *testing.T) {
	t.Parallel()
	// When a location-attaching helper is invoked
	err := locHelper(errors.New("boom"))
	e := ezerr.From(err)
	// Then the trace identifies the helper's caller, not the helper
	if len(e.Trace()) != 1 {
		t.Fatalf("expected 1 trace entry: %v", e.Trace())
	}
	loc := e.Trace()[0]
	if strings.Contains(loc.Func, "locHelper") {
		t.Errorf("the helper's own frame must be skipped: %s", loc.Func)
	}
	if !strings.Contains(loc.Func, "TestAt") {
		t.Errorf("the location must identify the helper's caller: %s", loc.Func)
	}
}
