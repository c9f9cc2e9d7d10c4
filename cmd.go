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

// Msg is the marker type for application-defined messages. The runtime
// never inspects a Msg's shape; it only routes it to update.
type Msg = any

// Cmd describes a side-effecting computation that produces a lazy,
// finite-or-infinite sequence of Msg values. Construction of a Cmd is pure:
// nothing runs until the runtime executes it, and two executions of the
// same Cmd value are independent.
type Cmd[M any] struct {
	run streamFunc[M]
}

// isZero reports whether c was never assigned a run function (the zero
// value of Cmd, distinct from None but behaviorally identical to it).
func (c Cmd[M]) isZero() bool {
	return c.run == nil
}

// None is the identity for Batch: it emits nothing.
func None[M any]() Cmd[M] {
	return Cmd[M]{run: func(context.Context, func(M), func(error)) Teardown { return nil }}
}

// Of emits msg exactly once, synchronously, when the Cmd is executed.
func Of[M any](msg M) Cmd[M] {
	return Cmd[M]{run: func(_ context.Context, emit func(M), _ func(error)) Teardown {
		emit(msg)
		return nil
	}}
}

// FromEffect runs effect on its own goroutine: on success it emits the
// result once, on failure it propagates the error through the Cmd's error
// channel (see Program's error handling, spec §7). Applications that want
// to recover from the failure as a Msg should use Attempt/AttemptWith (see
// effect.go) instead of FromEffect.
func FromEffect[M any](effect func(ctx context.Context) (M, error)) Cmd[M] {
	return Cmd[M]{run: func(ctx context.Context, emit func(M), fail func(error)) Teardown {
		go func() {
			v, err := effect(ctx)
			if err != nil {
				fail(err)
				return
			}
			emit(v)
		}()
		return nil
	}}
}

// MapCmd transforms every message a Cmd emits by f, preserving cardinality
// and order: MapCmd(f, MapCmd(g, c)) behaves the same as MapCmd(compose(f,
// g), c) for any f, g.
func MapCmd[M, N any](f func(M) N, c Cmd[M]) Cmd[N] {
	return Cmd[N]{run: func(ctx context.Context, emit func(N), fail func(error)) Teardown {
		return c.run(ctx, func(m M) { emit(f(m)) }, fail)
	}}
}

// BatchCmd runs every cmd concurrently; messages are emitted as they become
// available from any child with no ordering guarantee between children.
// BatchCmd(nil...) and BatchCmd() are both equivalent to None, and
// BatchCmd(c) is equivalent to c.
func BatchCmd[M any](cmds ...Cmd[M]) Cmd[M] {
	filtered := make([]streamFunc[M], 0, len(cmds))
	for _, c := range cmds {
		if !c.isZero() {
			filtered = append(filtered, c.run)
		}
	}

	if len(filtered) == 0 {
		return None[M]()
	}

	return Cmd[M]{run: mergeStreams(filtered)}
}
