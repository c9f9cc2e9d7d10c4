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

package timer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	tea "github.com/savkelita/tea-effect"
)

func TestEveryFiresOnSchedule(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := Every(20*time.Millisecond, "tick")
	got := make(chan string, 8)
	td := tea.RunSub(ctx, sub, func(v string) { got <- v }, func(error) {})
	defer td()

	select {
	case v := <-got:
		is.Equal("tick", v)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for scheduled tick")
	}
}

func TestCronInvalidSpecFails(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := Cron("not a cron spec", false, "tick")
	failed := make(chan error, 1)
	td := tea.RunSub(ctx, sub, func(string) { t.Fatal("unexpected emit") }, func(err error) { failed <- err })
	if td != nil {
		defer td()
	}

	select {
	case err := <-failed:
		is.Error(err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for schedule failure")
	}
}
