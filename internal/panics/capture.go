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

// Package panics wraps a callback so a panic inside it becomes an error
// instead of a crashed fiber. The runtime wraps the update function and
// the command teardowns it runs at shutdown this way; other callbacks
// (subscriptions, view, command and subscription code, subscription
// teardowns) are not wrapped. The capture
// mechanism mirrors the reactive-streams library this runtime is grounded
// on: every observer callback is wrapped with a recover that converts the
// panic value into an error.
package panics

import (
	"fmt"

	"github.com/samber/lo"
)

// CapturedError wraps a value recovered from a panic inside user code.
type CapturedError struct {
	Recovered any
}

func (e *CapturedError) Error() string {
	if err, ok := e.Recovered.(error); ok {
		return fmt.Sprintf("panic: %s", err.Error())
	}
	return fmt.Sprintf("panic: %v", e.Recovered)
}

// Try runs fn and converts any panic into a *CapturedError, matching the
// teacher's tryNext/tryError/tryComplete: user code never crashes the
// fiber it runs on.
func Try(fn func()) (err error) {
	lo.TryCatchWithErrorValue(
		func() error {
			fn()
			return nil
		},
		func(recovered any) {
			err = &CapturedError{Recovered: recovered}
		},
	)

	return err
}

// TryValue is the generic form of Try for callbacks that also return a
// value alongside their own error.
func TryValue[T any](fn func() (T, error)) (value T, err error) {
	lo.TryCatchWithErrorValue(
		func() error {
			value, err = fn()
			return nil
		},
		func(recovered any) {
			err = &CapturedError{Recovered: recovered}
		},
	)

	return value, err
}
