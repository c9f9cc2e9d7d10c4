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

// Package xsync provides a Mutex abstraction that can be swapped for a
// no-op implementation on the single-producer fast path (see
// tea.WithSingleProducerCell), the same trade-off the reactive-streams
// implementation this runtime is grounded on makes explicit per
// subscription via its ConcurrencyMode.
package xsync

import "sync"

// Mutex is the minimal locking surface the model cell depends on.
type Mutex interface {
	Lock()
	Unlock()
}

// NewMutexWithLock returns a real, fully synchronized mutex.
func NewMutexWithLock() Mutex {
	return &sync.Mutex{}
}

// NewMutexWithoutLock returns a no-op mutex. Its Lock/Unlock methods are
// called on the same hot path as the real mutex but do nothing, so callers
// keep a single code shape regardless of concurrency mode. Only safe to use
// when the caller guarantees a single producer.
func NewMutexWithoutLock() Mutex {
	return noopMutex{}
}

type noopMutex struct{}

func (noopMutex) Lock()   {}
func (noopMutex) Unlock() {}
