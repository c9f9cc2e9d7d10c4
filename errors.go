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

import "fmt"

// CommandError wraps an error reported by a running Cmd (via FromEffect or
// a plugin's streamFunc calling fail) that the application did not recover
// into a Msg with Attempt/AttemptWith.
type CommandError struct {
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("tea: command failed: %v", e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// SubscriptionError wraps an error reported by a running Sub.
type SubscriptionError struct {
	Err error
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("tea: subscription failed: %v", e.Err)
}

func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

// PanicError wraps a value recovered from a panicking update function. The
// runtime converts such a panic to an error and routes it to the program's
// error handler (see WithErrorHandler). Panics raised inside a Cmd, a Sub,
// a subscriptions function or a view are not recovered.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("tea: recovered panic: %v", e.Value)
}
