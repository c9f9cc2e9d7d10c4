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

package fswatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	tea "github.com/savkelita/tea-effect"
)

type changedMsg struct{ path string }

func TestWatchEmitsOnFileWrite(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	dir := t.TempDir()
	target := filepath.Join(dir, "watched.txt")
	is.NoError(os.WriteFile(target, []byte("initial"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := Watch([]string{dir}, func(ev Event) tea.Msg { return changedMsg{ev.Path} })
	got := make(chan tea.Msg, 8)
	td := tea.RunSub(ctx, sub, func(m tea.Msg) { got <- m }, func(error) {})
	defer td()

	time.Sleep(20 * time.Millisecond) // let the watcher register before writing
	is.NoError(os.WriteFile(target, []byte("updated"), 0o600))

	select {
	case m := <-got:
		is.Equal(target, m.(changedMsg).path)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for filesystem event")
	}
}

func TestWatchFailsOnMissingDirectory(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := Watch([]string{"/does/not/exist/at/all"}, func(ev Event) tea.Msg { return changedMsg{ev.Path} })
	failed := make(chan error, 1)
	td := tea.RunSub(ctx, sub, func(tea.Msg) { t.Fatal("unexpected emit") }, func(err error) { failed <- err })
	if td != nil {
		defer td()
	}

	select {
	case err := <-failed:
		is.Error(err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watch failure")
	}
}
