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

// InitFromFlags builds a program's initial model and initial Cmd from an
// external bootstrap parameter (a parsed flag set, an environment struct,
// a config file already read into memory — whatever the caller's flags
// type is).
type InitFromFlags[M, Msg, F any] func(flags F) (M, Cmd[Msg])

// ProgramWithFlags curries NewProgram: it closes over initFromFlags,
// update, and subscriptions once, and returns a constructor that can be
// invoked with a flags value as many times as needed, e.g. once per test
// case or once per process invocation with flags parsed from os.Args.
func ProgramWithFlags[M, Msg, F any](
	initFromFlags InitFromFlags[M, Msg, F],
	update UpdateFunc[M, Msg],
	subscriptions SubscriptionsFunc[M, Msg],
) func(flags F, opts ...Option[M, Msg]) *Program[M, Msg] {
	return func(flags F, opts ...Option[M, Msg]) *Program[M, Msg] {
		initModel, initCmd := initFromFlags(flags)
		return NewProgram(initModel, initCmd, update, subscriptions, opts...)
	}
}
