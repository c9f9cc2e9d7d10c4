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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalSubTicksPeriodically(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := Interval(10*time.Millisecond, "tick")
	got := make(chan string, 8)
	td := s.run(ctx, func(v string) { got <- v }, func(error) {})
	defer td()

	select {
	case v := <-got:
		is.Equal("tick", v)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for tick")
	}
}

func TestIntervalSubStopsOnTeardown(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := Interval(5*time.Millisecond, "tick")
	got := make(chan string, 64)
	td := s.run(ctx, func(v string) { got <- v }, func(error) {})
	td()

	// Let any tick already in flight land, then drain and confirm the
	// ticker goroutine produces nothing further.
	time.Sleep(30 * time.Millisecond)
	drained := len(got)
	for i := 0; i < drained; i++ {
		<-got
	}

	select {
	case <-got:
		t.Fatal("received a tick after teardown")
	case <-time.After(20 * time.Millisecond):
	}
	is.True(true)
}

func TestFilterSubKeepsOnlyMatching(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	base := FromIterable([]int{1, 2, 3, 4, 5, 6})
	even := FilterSub(func(v int) bool { return v%2 == 0 }, base)

	var got []int
	td := even.run(ctx, func(v int) { got = append(got, v) }, func(error) {})
	if td != nil {
		td()
	}

	is.Equal([]int{2, 4, 6}, got)
}

func TestBatchSubRunsEveryChild(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := BatchSub(OfSub("a"), OfSub("b"))
	got := make(chan string, 2)
	td := s.run(ctx, func(v string) { got <- v }, func(error) {})
	defer func() {
		if td != nil {
			td()
		}
	}()

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case v := <-got:
			seen[v] = true
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for batch members")
		}
	}
	is.True(seen["a"])
	is.True(seen["b"])
}

func TestFromCallbackBridgesPushSource(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var push func(int)
	s := FromCallback(func(_ context.Context, emit func(int)) Teardown {
		push = emit
		return func() {}
	})

	got := make(chan int, 1)
	td := s.run(ctx, func(v int) { got <- v }, func(error) {})
	defer td()

	push(99)

	select {
	case v := <-got:
		is.Equal(99, v)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for callback push")
	}
}
