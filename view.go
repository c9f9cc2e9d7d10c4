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

// ViewFunc maps a model to a render function that, given the program's
// dispatch, produces a Dom value for whatever host renderer is wired up.
// It is a pure projection: a ViewFunc must not retain model or dispatch
// beyond the call, and must not block.
type ViewFunc[M, Msg, Dom any] func(model M) func(dispatch func(Msg)) Dom

// ViewProgram pairs a running Program with a ViewFunc, producing
// dom$ = model$.map(m => view(m)(dispatch)). It adds no scheduler
// semantics of its own: every Dom value is a thin projection of the model
// that produced it, delivered the same way as Program.Subscribe delivers
// models.
type ViewProgram[M, Msg, Dom any] struct {
	program *Program[M, Msg]
	view    ViewFunc[M, Msg, Dom]
}

// NewViewProgram wraps program with view. program must already be
// constructed (via NewProgram or ProgramWithFlags); NewViewProgram adds no
// lifecycle of its own — Shutdown is still called on the underlying
// Program.
func NewViewProgram[M, Msg, Dom any](program *Program[M, Msg], view ViewFunc[M, Msg, Dom]) *ViewProgram[M, Msg, Dom] {
	return &ViewProgram[M, Msg, Dom]{program: program, view: view}
}

// Program returns the wrapped Program, e.g. to Dispatch directly or to
// call Shutdown.
func (vp *ViewProgram[M, Msg, Dom]) Program() *Program[M, Msg] {
	return vp.program
}

// RunWith drains dom$ into render for as long as the program runs.
func (vp *ViewProgram[M, Msg, Dom]) RunWith(render func(Dom)) Teardown {
	return vp.program.Subscribe(func(m M) {
		render(vp.view(m)(vp.program.Dispatch))
	})
}

// Run returns dom$ as a channel, plus the Teardown that stops delivery.
func (vp *ViewProgram[M, Msg, Dom]) Run() (<-chan Dom, Teardown) {
	ch := make(chan Dom, 1)
	td := vp.RunWith(func(d Dom) { conflateSend(ch, d) })
	return ch, td
}
