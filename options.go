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

	"github.com/savkelita/tea-effect/internal/telemetry"
	"github.com/savkelita/tea-effect/internal/xsync"
)

type programConfig[M, Msg any] struct {
	ctx               context.Context
	logger            telemetry.Logger
	onError           func(error)
	queueDrainTimeout time.Duration
	singleProducer    bool
}

func defaultConfig[M, Msg any]() programConfig[M, Msg] {
	return programConfig[M, Msg]{
		ctx:               context.Background(),
		logger:            telemetry.Noop(),
		onError:           func(error) {},
		queueDrainTimeout: 0,
		singleProducer:    false,
	}
}

func (c programConfig[M, Msg]) newCellMutex() xsync.Mutex {
	if c.singleProducer {
		return xsync.NewMutexWithoutLock()
	}
	return xsync.NewMutexWithLock()
}

// Option configures a Program at construction. Options apply in the order
// passed to NewProgram, so a later option overrides an earlier one.
type Option[M, Msg any] func(*programConfig[M, Msg])

// WithContext binds the program's lifetime to ctx: cancelling ctx triggers
// the same shutdown sequence as calling (*Program).Shutdown.
func WithContext[M, Msg any](ctx context.Context) Option[M, Msg] {
	return func(c *programConfig[M, Msg]) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger overrides the program's structured logger. The default
// discards every event.
func WithLogger[M, Msg any](logger telemetry.Logger) Option[M, Msg] {
	return func(c *programConfig[M, Msg]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithErrorHandler registers a program-scoped hook invoked for every
// CommandError, SubscriptionError, or PanicError the runtime observes. It
// is scoped to this Program alone; running several Programs in the same
// process never causes one's errors to reach another's handler.
func WithErrorHandler[M, Msg any](onError func(error)) Option[M, Msg] {
	return func(c *programConfig[M, Msg]) {
		if onError != nil {
			c.onError = onError
		}
	}
}

// WithQueueDrainTimeout bounds how long Shutdown waits for the update and
// subscription fibers to exit. Command teardowns run after that wait
// whether or not it timed out, and are not bounded by it. Zero (the
// default) means wait indefinitely.
func WithQueueDrainTimeout[M, Msg any](d time.Duration) Option[M, Msg] {
	return func(c *programConfig[M, Msg]) {
		c.queueDrainTimeout = d
	}
}

// WithSingleProducerCell swaps the model cell's lock for a no-op
// implementation. Only safe when nothing but the update fiber ever calls
// Dispatch-triggered writes and the caller never invokes Subscribe,
// Model, or a subscription teardown from another goroutine while the
// program runs — in the general case, leave this unset.
func WithSingleProducerCell[M, Msg any](singleProducer bool) Option[M, Msg] {
	return func(c *programConfig[M, Msg]) {
		c.singleProducer = singleProducer
	}
}
