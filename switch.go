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

import "context"

// subSwitcher runs subscribe(model) for the model most recently observed,
// tearing down the Sub currently running before it starts the one asked
// for this time, unless sameSub reports the two as equal (see subsEqual).
// It is the execution behind the subFiber; every Sub it starts is torn down
// exactly once.
type subSwitcher[M, Msg any] struct {
	ctx        context.Context
	subscribe  func(M) Sub[Msg]
	dispatch   func(Msg)
	onError    func(error)
	sameSub    func(a, b Sub[Msg]) bool
	current    Sub[Msg]
	hasCurrent bool
	teardown   Teardown
}

func newSubSwitcher[M, Msg any](
	ctx context.Context,
	subscribe func(M) Sub[Msg],
	dispatch func(Msg),
	onError func(error),
) *subSwitcher[M, Msg] {
	return &subSwitcher[M, Msg]{
		ctx:       ctx,
		subscribe: subscribe,
		dispatch:  dispatch,
		onError:   onError,
		sameSub:   subsEqual[Msg],
	}
}

// subsEqual compares two Sub values through modelsEqual on their
// underlying streamFunc. Go func values are not comparable, so that
// comparison panics and modelsEqual reports the two as distinct: any two
// non-zero Subs compare unequal, even the same Sub value returned twice,
// and only two zero-value Subs compare equal. In effect the subFiber
// restarts the requested Sub on every distinct model.
func subsEqual[Msg any](a, b Sub[Msg]) bool {
	if a.isZero() != b.isZero() {
		return false
	}
	if a.isZero() {
		return true
	}
	return modelsEqual(a.run, b.run)
}

// observe is called by the subFiber once per model value. It starts the
// requested Sub on the first call and on every later call tears down the
// running Sub and starts the requested one, unless sameSub reports them
// equal. Messages the old Sub emits after its teardown begins are dropped.
func (sw *subSwitcher[M, Msg]) observe(model M) {
	next := sw.subscribe(model)

	if sw.hasCurrent && sw.sameSub(sw.current, next) {
		return
	}

	if sw.hasCurrent && sw.teardown != nil {
		sw.teardown()
	}

	sw.current = next
	sw.hasCurrent = true
	sw.teardown = nil

	if next.isZero() {
		return
	}

	s := newSink(sw.dispatch, sw.onError)
	td := next.run(sw.ctx, s.next, s.fail)
	sw.teardown = func() {
		s.close()
		if td != nil {
			td()
		}
	}
}

// stop tears down whatever Sub is currently running. Called once when the
// program shuts down.
func (sw *subSwitcher[M, Msg]) stop() {
	if sw.hasCurrent && sw.teardown != nil {
		sw.teardown()
	}
	sw.hasCurrent = false
	sw.teardown = nil
}
