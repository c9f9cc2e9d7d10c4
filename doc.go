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

// Package tea implements a reactive runtime for the Model-Update-Subscription
// pattern (The Elm Architecture) on top of a small structured-concurrency
// effect system.
//
// An application supplies three pure descriptions:
//
//	init           -> (Model, Cmd[Msg])
//	update(Msg, M) -> (M, Cmd[Msg])
//	subscriptions(M) -> Sub[Msg]
//
// and hands them to Program, which owns the model as reactive state,
// serializes message processing on a single updater fiber, executes
// commands concurrently on their own fibers, switches the active
// subscription whenever the model changes, and tears everything down on
// Shutdown.
//
// Example:
//
//	type model struct{ count int }
//
//	type incrementMsg struct{}
//
//	update := func(msg tea.Msg, m model) (model, tea.Cmd[tea.Msg]) {
//		switch msg.(type) {
//		case incrementMsg:
//			m.count++
//		}
//		return m, tea.None[tea.Msg]()
//	}
//
//	p := tea.NewProgram(model{}, tea.None[tea.Msg](), update, noSubs)
//	defer p.Shutdown()
//	p.Dispatch(incrementMsg{})
package tea
