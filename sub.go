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
	"context"
	"time"
)

// Sub describes an ongoing external source of messages: a ticking clock, a
// filesystem watch, a websocket connection. Structurally it is the same
// shape as Cmd, but the runtime treats it differently: on every model
// change the Sub a program asks for is recomputed, and the runtime cancels
// the running execution before it starts the new one (see switch.go).
type Sub[M any] struct {
	run streamFunc[M]
}

func (s Sub[M]) isZero() bool {
	return s.run == nil
}

// NoneSub is the identity for BatchSub: it never emits.
func NoneSub[M any]() Sub[M] {
	return Sub[M]{run: func(context.Context, func(M), func(error)) Teardown { return nil }}
}

// OfSub emits msg once, immediately, then stays open without emitting
// again until cancelled. Rarely useful on its own; mostly a building block
// for tests.
func OfSub[M any](msg M) Sub[M] {
	return Sub[M]{run: func(_ context.Context, emit func(M), _ func(error)) Teardown {
		emit(msg)
		return nil
	}}
}

// MapSub transforms every message a Sub emits by f.
func MapSub[M, N any](f func(M) N, s Sub[M]) Sub[N] {
	return Sub[N]{run: func(ctx context.Context, emit func(N), fail func(error)) Teardown {
		return s.run(ctx, func(m M) { emit(f(m)) }, fail)
	}}
}

// FilterSub keeps only the messages for which keep returns true.
func FilterSub[M any](keep func(M) bool, s Sub[M]) Sub[M] {
	return Sub[M]{run: func(ctx context.Context, emit func(M), fail func(error)) Teardown {
		return s.run(ctx, func(m M) {
			if keep(m) {
				emit(m)
			}
		}, fail)
	}}
}

// BatchSub runs every sub concurrently for as long as the combined
// subscription stays active; cancelling the batch cancels every child.
// BatchSub() and BatchSub(nil...) are equivalent to NoneSub, and
// BatchSub(s) is equivalent to s.
func BatchSub[M any](subs ...Sub[M]) Sub[M] {
	filtered := make([]streamFunc[M], 0, len(subs))
	for _, s := range subs {
		if !s.isZero() {
			filtered = append(filtered, s.run)
		}
	}

	if len(filtered) == 0 {
		return NoneSub[M]()
	}

	return Sub[M]{run: mergeStreams(filtered)}
}

// Interval emits msg every d until the subscription is cancelled. The first
// tick happens after d, not immediately — matching a time.Ticker.
func Interval[M any](d time.Duration, msg M) Sub[M] {
	return Sub[M]{run: func(ctx context.Context, emit func(M), _ func(error)) Teardown {
		ticker := time.NewTicker(d)
		done := make(chan struct{})

		go func() {
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-done:
					return
				case <-ticker.C:
					emit(msg)
				}
			}
		}()

		return func() { close(done) }
	}}
}

// FromCallback adapts a push-based external API into a Sub. register is
// called once when the subscription starts; it must arrange for emit to be
// called with each message and return a Teardown that stops further calls.
// register itself must not block — if registering requires I/O, do it on a
// goroutine and close over emit.
func FromCallback[M any](register func(ctx context.Context, emit func(M)) Teardown) Sub[M] {
	return Sub[M]{run: func(ctx context.Context, emit func(M), _ func(error)) Teardown {
		return register(ctx, emit)
	}}
}

// FromIterable emits every element of values in order, then stays open
// without emitting again. Mainly useful for tests and for seeding a Sub
// with fixture data.
func FromIterable[M any](values []M) Sub[M] {
	return Sub[M]{run: func(ctx context.Context, emit func(M), _ func(error)) Teardown {
		for _, v := range values {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			emit(v)
		}
		return nil
	}}
}
