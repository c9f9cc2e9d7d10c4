// Copyright 2026 tea-effect authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tea

import (
	"sync"

	"github.com/savkelita/tea-effect/internal/panics"
	"github.com/savkelita/tea-effect/internal/xerrors"
)

// Teardown releases whatever resources an executing Cmd or Sub registered:
// a timer, a file handle, a goroutine's done channel. It runs at most once.
type Teardown func()

// Execution is the cancellation handle returned when a Cmd or Sub is handed
// to the runtime. It is the same shape for commands, subscriptions, and the
// program itself.
type Execution interface {
	// Cancel runs every registered Teardown exactly once. Safe to call more
	// than once; later calls are no-ops.
	Cancel()
	// Add registers an additional Teardown to run on Cancel. If Cancel has
	// already run, the teardown fires immediately.
	Add(teardown Teardown)
	// IsClosed reports whether Cancel has already run (or started running).
	IsClosed() bool
	// Wait blocks until Cancel has run. Rarely needed outside of tests.
	Wait()
}

var _ Execution = (*execution)(nil)

// newExecution creates an Execution, optionally seeded with one teardown.
func newExecution(teardown Teardown) *execution {
	e := &execution{}
	if teardown != nil {
		e.finalizers = append(e.finalizers, teardown)
	}
	return e
}

type execution struct {
	mu         sync.Mutex
	done       bool
	finalizers []Teardown
}

func (e *execution) Add(teardown Teardown) {
	if teardown == nil {
		return
	}

	e.mu.Lock()
	if e.done {
		e.mu.Unlock()
		runTeardown(teardown)
		return
	}
	e.finalizers = append(e.finalizers, teardown)
	e.mu.Unlock()
}

func (e *execution) Cancel() {
	e.mu.Lock()
	if e.done {
		e.mu.Unlock()
		return
	}
	e.done = true
	finalizers := e.finalizers
	e.finalizers = nil
	e.mu.Unlock()

	var errs []error
	for _, f := range finalizers {
		if err := runTeardown(f); err != nil {
			errs = append(errs, err)
		}
	}

	if joined := xerrors.Join(errs...); joined != nil {
		// A teardown panicking is a bug in the Cmd/Sub implementation, not
		// in application Msg handling; surface it loudly rather than
		// swallowing it the way a routed command error would be.
		panic(joined)
	}
}

func (e *execution) IsClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.done
}

func (e *execution) Wait() {
	ch := make(chan struct{})
	e.Add(func() { close(ch) })
	<-ch
}

func runTeardown(teardown Teardown) error {
	return panics.Try(teardown)
}
