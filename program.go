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
	"sync"
	"sync/atomic"
	"time"

	"github.com/savkelita/tea-effect/internal/panics"
	"github.com/savkelita/tea-effect/internal/xqueue"
)

// UpdateFunc advances the model in response to a single Msg, returning the
// next model and a Cmd describing whatever side effect that transition
// requires. It must not block and must not retain model beyond the call.
type UpdateFunc[M, Msg any] func(msg Msg, model M) (M, Cmd[Msg])

// SubscriptionsFunc computes, from the current model, the Sub the program
// should have running. It is called once per distinct model value, and the
// runtime tears down the running Sub and starts the returned one each time
// (see switch.go).
type SubscriptionsFunc[M, Msg any] func(model M) Sub[Msg]

type programStatus int32

const (
	programRunning programStatus = iota
	programShuttingDown
	programTerminated
)

// Program is the Platform runtime: a single model cell, an unbounded
// message queue, one update fiber consuming it, and one subscription fiber
// reacting to model changes. Construct one with NewProgram.
type Program[M, Msg any] struct {
	cfg      programConfig[M, Msg]
	update   UpdateFunc[M, Msg]
	cell     *cell[M]
	queue    *xqueue.Queue[Msg]
	ctx      context.Context
	cancel   context.CancelFunc
	status   int32
	wg       sync.WaitGroup
	cmds     *execution
	subSw    *subSwitcher[M, Msg]
	shutOnce sync.Once
}

// NewProgram constructs and starts a Program: the update and subscription
// fibers are started and initCmd is started before NewProgram returns. The
// subscription fiber evaluates the initial subscriptions against initModel
// on its own goroutine, so that may happen after NewProgram returns.
func NewProgram[M, Msg any](
	initModel M,
	initCmd Cmd[Msg],
	update UpdateFunc[M, Msg],
	subscriptions SubscriptionsFunc[M, Msg],
	opts ...Option[M, Msg],
) *Program[M, Msg] {
	cfg := defaultConfig[M, Msg]()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithCancel(cfg.ctx)

	p := &Program[M, Msg]{
		cfg:    cfg,
		update: update,
		cell:   newCell(initModel, cfg.newCellMutex),
		queue:  xqueue.New[Msg](ctx),
		ctx:    ctx,
		cancel: cancel,
		cmds:   newExecution(nil),
		status: int32(programRunning),
	}

	if subscriptions == nil {
		subscriptions = func(M) Sub[Msg] { return NoneSub[Msg]() }
	}
	p.subSw = newSubSwitcher[M, Msg](ctx, subscriptions, p.Dispatch, func(err error) {
		p.routeError(&SubscriptionError{Err: err})
	})

	p.wg.Add(2)
	go p.runUpdateFiber()
	go p.runSubFiber()

	p.startCmd(initCmd)

	p.cfg.logger.Info("program_started", nil)

	return p
}

// Dispatch enqueues msg for the update fiber. Safe to call from any
// goroutine, including from inside a Cmd, a Sub, or another Msg's update
// call. Dispatching after the program has shut down is a silent no-op.
func (p *Program[M, Msg]) Dispatch(msg Msg) {
	p.queue.Push(msg)
}

// Model returns the model's current value. Safe to call concurrently with
// Dispatch and with the update fiber.
func (p *Program[M, Msg]) Model() M {
	return p.cell.current()
}

// Subscribe registers onChange to be called with the current model
// immediately and with every subsequent distinct model thereafter, in write
// order. Delivery runs on its own goroutine behind an unbounded backlog, so
// a slow onChange never blocks the update fiber but may lag behind it. It
// is typically used to drive a view. The returned Teardown stops delivery.
func (p *Program[M, Msg]) Subscribe(onChange func(M)) Teardown {
	return p.cell.subscribeOrdered(p.ctx, onChange)
}

// Status reports whether the program is still running, shutting down, or
// fully terminated.
func (p *Program[M, Msg]) Status() string {
	switch programStatus(atomic.LoadInt32(&p.status)) {
	case programRunning:
		return "running"
	case programShuttingDown:
		return "shutting-down"
	default:
		return "terminated"
	}
}

// Shutdown stops the update and subscription fibers, cancels every running
// Cmd and Sub, and waits for them to finish releasing their resources.
// Idempotent and safe to call from any goroutine, including from inside an
// update call (the actual teardown always happens on a separate
// goroutine). If WithQueueDrainTimeout was configured, Shutdown stops
// waiting for the update and subscription fibers once that timeout elapses;
// it then always runs every command teardown and waits for them to return.
func (p *Program[M, Msg]) Shutdown() {
	p.shutOnce.Do(func() {
		atomic.StoreInt32(&p.status, int32(programShuttingDown))
		p.cancel()

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		if p.cfg.queueDrainTimeout > 0 {
			select {
			case <-done:
			case <-time.After(p.cfg.queueDrainTimeout):
				p.cfg.logger.Warn("shutdown_drain_timeout", nil)
			}
		} else {
			<-done
		}

		p.cmds.Cancel()
		p.cell.close()

		atomic.StoreInt32(&p.status, int32(programTerminated))
		p.cfg.logger.Info("program_terminated", nil)
	})
}

func (p *Program[M, Msg]) runUpdateFiber() {
	defer p.wg.Done()
	for {
		msg, ok := p.queue.Pop()
		if !ok {
			return
		}
		p.handleMsg(msg)
	}
}

func (p *Program[M, Msg]) runSubFiber() {
	defer p.wg.Done()
	teardown := p.cell.subscribeOrdered(p.ctx, p.subSw.observe)
	<-p.ctx.Done()
	if teardown != nil {
		teardown()
	}
	p.subSw.stop()
}

type updateOutcome[M any, Msg any] struct {
	model M
	cmd   Cmd[Msg]
}

func (p *Program[M, Msg]) handleMsg(msg Msg) {
	model := p.cell.current()

	outcome, err := panics.TryValue(func() (updateOutcome[M, Msg], error) {
		next, cmd := p.update(msg, model)
		return updateOutcome[M, Msg]{model: next, cmd: cmd}, nil
	})
	if err != nil {
		if captured, ok := err.(*panics.CapturedError); ok {
			p.routeError(&PanicError{Value: captured.Recovered})
		} else {
			p.routeError(err)
		}
		return
	}

	if !modelsEqual(any(model), any(outcome.model)) {
		p.cell.set(outcome.model)
	}
	p.startCmd(outcome.cmd)
}

func (p *Program[M, Msg]) startCmd(cmd Cmd[Msg]) {
	if cmd.isZero() {
		return
	}

	s := newSink(p.Dispatch, func(err error) {
		p.routeError(&CommandError{Err: err})
	})
	teardown := cmd.run(p.ctx, s.next, s.fail)
	if teardown != nil {
		p.cmds.Add(func() {
			s.close()
			teardown()
		})
	}
}

func (p *Program[M, Msg]) routeError(err error) {
	p.cfg.logger.Error("tea_error", err, nil)
	p.cfg.onError(err)
}
