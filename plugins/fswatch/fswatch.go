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

// Package fswatch adapts fsnotify into a Sub: filesystem change
// notifications pushed by the kernel rather than polled, replacing the
// polling watch loop this runtime's lineage once used.
package fswatch

import (
	"context"

	"github.com/fsnotify/fsnotify"

	tea "github.com/savkelita/tea-effect"
)

// Event is a filesystem change, carrying the path and the kind of change
// fsnotify observed.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// Watch builds a Sub that watches every path in paths and emits
// toMsg(event) for each filesystem event observed. If the watcher itself
// fails to start or errors while running, fail is called and the Sub
// stops.
func Watch[Msg any](paths []string, toMsg func(Event) Msg) tea.Sub[Msg] {
	return tea.NewSub(func(ctx context.Context, emit func(Msg), fail func(error)) tea.Teardown {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			fail(err)
			return nil
		}

		for _, p := range paths {
			if err := watcher.Add(p); err != nil {
				fail(err)
				watcher.Close()
				return nil
			}
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				select {
				case <-ctx.Done():
					return
				case ev, ok := <-watcher.Events:
					if !ok {
						return
					}
					emit(toMsg(Event{Path: ev.Name, Op: ev.Op}))
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					fail(err)
					return
				}
			}
		}()

		return func() {
			watcher.Close()
			<-done
		}
	})
}
