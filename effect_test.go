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
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapTaskTransformsSuccess(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	base := Task[int](func(context.Context) (int, error) { return 41, nil })
	mapped := MapTask(func(v int) string { return strconv.Itoa(v + 1) }, base)

	v, err := mapped(context.Background())
	is.NoError(err)
	is.Equal("42", v)
}

func TestMapTaskErrorLeavesSuccessUntouched(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	base := Task[int](func(context.Context) (int, error) { return 1, nil })
	mapped := MapTaskError(func(err error) error { return errors.New("wrapped: " + err.Error()) }, base)

	v, err := mapped(context.Background())
	is.NoError(err)
	is.Equal(1, v)
}

func TestMapTaskErrorWrapsFailure(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	boom := errors.New("boom")
	base := Task[int](func(context.Context) (int, error) { return 0, boom })
	mapped := MapTaskError(func(err error) error { return errors.New("wrapped: " + err.Error()) }, base)

	_, err := mapped(context.Background())
	is.EqualError(err, "wrapped: boom")
}

func TestFlatMapTaskSequencesTasks(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	first := Task[int](func(context.Context) (int, error) { return 5, nil })
	chained := FlatMapTask(func(v int) Task[string] {
		return func(context.Context) (string, error) { return strconv.Itoa(v * 2), nil }
	}, first)

	v, err := chained(context.Background())
	is.NoError(err)
	is.Equal("10", v)
}

func TestFlatMapTaskShortCircuitsOnFailure(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	boom := errors.New("boom")
	first := Task[int](func(context.Context) (int, error) { return 0, boom })
	called := false
	chained := FlatMapTask(func(v int) Task[string] {
		called = true
		return func(context.Context) (string, error) { return "", nil }
	}, first)

	_, err := chained(context.Background())
	is.ErrorIs(err, boom)
	is.False(called)
}

func TestBothTaskCombinesResults(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	a := Task[int](func(context.Context) (int, error) { return 1, nil })
	b := Task[string](func(context.Context) (string, error) { return "two", nil })

	pair, err := BothTask(a, b)(context.Background())
	is.NoError(err)
	is.Equal(1, pair.First)
	is.Equal("two", pair.Second)
}

func TestAllTaskCollectsInOrder(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	tasks := make([]Task[int], 5)
	for i := range tasks {
		i := i
		tasks[i] = func(context.Context) (int, error) { return i, nil }
	}

	results, err := AllTask(tasks)(context.Background())
	is.NoError(err)
	is.Equal([]int{0, 1, 2, 3, 4}, results)
}

func TestAllTaskJoinsFailures(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	boom1 := errors.New("boom1")
	boom2 := errors.New("boom2")
	tasks := []Task[int]{
		func(context.Context) (int, error) { return 0, boom1 },
		func(context.Context) (int, error) { return 1, nil },
		func(context.Context) (int, error) { return 0, boom2 },
	}

	_, err := AllTask(tasks)(context.Background())
	is.Error(err)
	is.ErrorIs(err, boom1)
	is.ErrorIs(err, boom2)
}
