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

// Package location is a server-side stand-in for a browser's
// window.location: a single current path plus a history stack, navigable
// by Cmd and observable by Sub. There is no ecosystem library for this —
// it is plain process-local state guarded by a mutex.
package location

import (
	"context"
	"sync"

	tea "github.com/savkelita/tea-effect"
)

// Router holds the current path and the stack of paths navigated through,
// broadcasting every change to whoever is subscribed via Watch.
type Router struct {
	mu      sync.Mutex
	path    string
	history []string
	subs    map[int]chan string
	nextID  int
}

// NewRouter creates a Router starting at initial.
func NewRouter(initial string) *Router {
	return &Router{path: initial, history: []string{initial}, subs: make(map[int]chan string)}
}

// Current returns the path most recently navigated to.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

func (r *Router) navigate(path string) {
	r.mu.Lock()
	r.path = path
	r.history = append(r.history, path)
	r.mu.Unlock()
	r.broadcast(path)
}

func (r *Router) back() (string, bool) {
	r.mu.Lock()
	if len(r.history) < 2 {
		r.mu.Unlock()
		return "", false
	}
	r.history = r.history[:len(r.history)-1]
	r.path = r.history[len(r.history)-1]
	path := r.path
	r.mu.Unlock()
	return path, true
}

// broadcast pushes path to every live watcher, dropping it for any watcher
// slow enough not to have drained the previous one.
func (r *Router) broadcast(path string) {
	r.mu.Lock()
	subs := make([]chan string, 0, len(r.subs))
	for _, ch := range r.subs {
		subs = append(subs, ch)
	}
	r.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- path:
		default:
		}
	}
}

// Push builds a Cmd that navigates r to path and dispatches onDone(path).
func Push[Msg any](r *Router, path string, onDone func(string) Msg) tea.Cmd[Msg] {
	return tea.NewCmd(func(_ context.Context, emit func(Msg), _ func(error)) tea.Teardown {
		r.navigate(path)
		emit(onDone(path))
		return nil
	})
}

// Back builds a Cmd that pops the router's history stack, dispatching
// onDone(path) with the path now current, or onEmpty() if there was
// nowhere to go back to.
func Back[Msg any](r *Router, onDone func(string) Msg, onEmpty func() Msg) tea.Cmd[Msg] {
	return tea.NewCmd(func(_ context.Context, emit func(Msg), _ func(error)) tea.Teardown {
		path, ok := r.back()
		if !ok {
			emit(onEmpty())
			return nil
		}

		r.broadcast(path)
		emit(onDone(path))
		return nil
	})
}

// Watch builds a Sub that emits the router's current path immediately and
// every path subsequently navigated to, except that a path is dropped for a
// watcher that has not yet taken the previous one (see broadcast).
func Watch[Msg any](r *Router, toMsg func(string) Msg) tea.Sub[Msg] {
	return tea.NewSub(func(ctx context.Context, emit func(Msg), _ func(error)) tea.Teardown {
		r.mu.Lock()
		id := r.nextID
		r.nextID++
		ch := make(chan string, 1)
		ch <- r.path
		r.subs[id] = ch
		r.mu.Unlock()

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-ch:
					if !ok {
						return
					}
					emit(toMsg(path))
				}
			}
		}()

		return func() {
			r.mu.Lock()
			delete(r.subs, id)
			r.mu.Unlock()
			close(ch)
			<-done
		}
	})
}
