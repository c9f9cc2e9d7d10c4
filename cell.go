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

	"github.com/savkelita/tea-effect/internal/xqueue"
	"github.com/savkelita/tea-effect/internal/xsync"
)

// modelsEqual reports whether two model values are the same by Go
// interface equality, recovering from the runtime panic that comparing two
// incomparable values (a slice or map wrapped in an any) would otherwise
// raise. Two values that cannot be compared are treated as distinct, which
// is the safe direction: the update loop notifies subscribers one extra
// time rather than silently swallowing a real change.
func modelsEqual(a, b any) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}

// cellSubKind distinguishes the two delivery disciplines a cell offers.
type cellSubKind int

const (
	// cellSubOrdered delivers every value written to the cell, in write
	// order, through an unbounded per-subscriber queue: the writer never
	// blocks and no value is dropped, at the cost of an unbounded backlog
	// behind a slow subscriber. The subFiber and external model$ consumers
	// (Program.Subscribe) subscribe this way.
	cellSubOrdered cellSubKind = iota
	// cellSubConflating delivers only the most recent value: a slow or
	// late subscriber always eventually sees the current value but may
	// miss values superseded before it caught up. The writer never blocks
	// on it either.
	cellSubConflating
)

// cell is the reactive model cell: a single current value plus a set of
// live subscribers, each fed according to its kind. Adapted from the
// publish-subject fan-out used elsewhere in this codebase's lineage,
// generalized here to carry two different delivery disciplines over the
// same current-value-plus-changes shape. Its internal lock is an
// xsync.Mutex so WithSingleProducerCell can swap in a no-op implementation
// on the fast path where the caller guarantees a single writer.
type cell[M any] struct {
	mu           xsync.Mutex
	newSlotMutex func() xsync.Mutex
	value        M
	closed       bool
	nextID       int
	ordered      map[int]*xqueue.Queue[M]
	conflat      map[int]*conflatingSlot[M]
}

// conflatingSlot holds at most one pending value; a second Set before the
// consumer drains the first silently replaces it.
type conflatingSlot[M any] struct {
	mu        xsync.Mutex
	value     M
	pending   bool
	wake      chan struct{}
	closeOnce sync.Once
}

func newConflatingSlot[M any](mu xsync.Mutex) *conflatingSlot[M] {
	return &conflatingSlot[M]{mu: mu, wake: make(chan struct{}, 1)}
}

func (s *conflatingSlot[M]) stop() {
	s.closeOnce.Do(func() { close(s.wake) })
}

func (s *conflatingSlot[M]) set(v M) {
	s.mu.Lock()
	s.value = v
	s.pending = true
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *conflatingSlot[M]) take() (v M, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pending {
		return v, false
	}
	v, s.pending = s.value, false
	return v, true
}

// newCell constructs a cell whose locks come from newMutex, called once for
// the cell's own lock and once per conflating subscriber slot. Pass
// xsync.NewMutexWithLock for the general case and
// xsync.NewMutexWithoutLock only when the caller guarantees a single
// producer and no concurrent Subscribe/teardown calls.
func newCell[M any](initial M, newMutex func() xsync.Mutex) *cell[M] {
	return &cell[M]{
		mu:           newMutex(),
		newSlotMutex: newMutex,
		value:        initial,
		ordered:      make(map[int]*xqueue.Queue[M]),
		conflat:      make(map[int]*conflatingSlot[M]),
	}
}

// current returns the value most recently written to the cell.
func (c *cell[M]) current() M {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// set stores v as the cell's current value and fans it out to every live
// subscriber. Callers are responsible for deciding whether v differs from
// the previous value (see modelsEqual); set itself always notifies.
func (c *cell[M]) set(v M) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.value = v
	orderedSubs := make([]*xqueue.Queue[M], 0, len(c.ordered))
	for _, q := range c.ordered {
		orderedSubs = append(orderedSubs, q)
	}
	conflatingSubs := make([]*conflatingSlot[M], 0, len(c.conflat))
	for _, s := range c.conflat {
		conflatingSubs = append(conflatingSubs, s)
	}
	c.mu.Unlock()

	for _, q := range orderedSubs {
		q.Push(v)
	}
	for _, s := range conflatingSubs {
		s.set(v)
	}
}

// close tears down every subscriber, ordered and conflating alike.
func (c *cell[M]) close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	for _, q := range c.ordered {
		q.Close()
	}
	for _, s := range c.conflat {
		s.stop()
	}
	c.mu.Unlock()
}

// subscribeOrdered registers onChange to be called with every value
// written to the cell from this point forward, in order, including the
// current value as the first delivery. The call blocks the dedicated
// consumer goroutine this spawns, not the caller.
func (c *cell[M]) subscribeOrdered(ctx context.Context, onChange func(M)) Teardown {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	id := c.nextID
	c.nextID++
	q := xqueue.New[M](ctx)
	q.Push(c.value)
	c.ordered[id] = q
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			v, ok := q.Pop()
			if !ok {
				return
			}
			onChange(v)
		}
	}()

	return func() {
		c.mu.Lock()
		delete(c.ordered, id)
		c.mu.Unlock()
		q.Close()
		<-done
	}
}

// subscribeConflating registers onChange to be called with the current
// value immediately, then with every subsequent distinct value — but a
// slow onChange may cause intermediate values to be dropped in favor of
// the latest. Use this for consumers that only need the latest value.
func (c *cell[M]) subscribeConflating(ctx context.Context, onChange func(M)) Teardown {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	id := c.nextID
	c.nextID++
	slot := newConflatingSlot[M](c.newSlotMutex())
	slot.set(c.value)
	c.conflat[id] = slot
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-slot.wake:
				if !ok {
					return
				}
				if v, ok := slot.take(); ok {
					onChange(v)
				}
			}
		}
	}()

	return func() {
		c.mu.Lock()
		delete(c.conflat, id)
		c.mu.Unlock()
		slot.stop()
		<-done
	}
}
