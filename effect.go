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

	"github.com/savkelita/tea-effect/internal/xerrors"
)

// Task is a single asynchronous computation: an HTTP call, a database
// query, a file read. Unlike Cmd it produces at most one value, which is
// what makes it composable with Map/FlatMap/Both/All below. A Task becomes
// a Cmd via Perform, Attempt, or AttemptWith.
type Task[T any] func(ctx context.Context) (T, error)

// Pair is the result of BothTask.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Perform runs task and, on success, dispatches toMsg(result). A failed
// task is routed to the program's error handler as a CommandError rather
// than becoming a Msg — use Attempt or AttemptWith when the application
// needs to handle the failure itself.
func Perform[Msg, T any](task Task[T], toMsg func(T) Msg) Cmd[Msg] {
	return FromEffect(func(ctx context.Context) (Msg, error) {
		v, err := task(ctx)
		if err != nil {
			var zero Msg
			return zero, err
		}
		return toMsg(v), nil
	})
}

// Attempt runs task and always dispatches a Msg, built from the task's
// result and error by toMsg. Use this when the application wants a single
// Msg type that carries either outcome (e.g. a Result-shaped Msg).
func Attempt[Msg, T any](task Task[T], toMsg func(T, error) Msg) Cmd[Msg] {
	return Cmd[Msg]{run: func(ctx context.Context, emit func(Msg), _ func(error)) Teardown {
		go func() {
			v, err := task(ctx)
			emit(toMsg(v, err))
		}()
		return nil
	}}
}

// AttemptWith runs task and dispatches onSuccess(result) or onFailure(err)
// depending on the outcome.
func AttemptWith[Msg, T any](task Task[T], onSuccess func(T) Msg, onFailure func(error) Msg) Cmd[Msg] {
	return Attempt(task, func(v T, err error) Msg {
		if err != nil {
			return onFailure(err)
		}
		return onSuccess(v)
	})
}

// MapTask transforms a Task's successful result.
func MapTask[T, U any](f func(T) U, t Task[T]) Task[U] {
	return func(ctx context.Context) (U, error) {
		v, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	}
}

// MapTaskError transforms a Task's error, leaving a successful result
// untouched.
func MapTaskError[T any](f func(error) error, t Task[T]) Task[T] {
	return func(ctx context.Context) (T, error) {
		v, err := t(ctx)
		if err != nil {
			return v, f(err)
		}
		return v, nil
	}
}

// FlatMapTask sequences two tasks: t runs first, and its result chooses
// which Task to run next. A failure at either stage short-circuits the
// chain.
func FlatMapTask[T, U any](f func(T) Task[U], t Task[T]) Task[U] {
	return func(ctx context.Context) (U, error) {
		v, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v)(ctx)
	}
}

// BothTask runs a and b concurrently and combines their results. If both
// fail, BothTask reports a's error.
func BothTask[A, B any](a Task[A], b Task[B]) Task[Pair[A, B]] {
	return func(ctx context.Context) (Pair[A, B], error) {
		var av A
		var bv B
		var aerr, berr error

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			av, aerr = a(ctx)
		}()
		go func() {
			defer wg.Done()
			bv, berr = b(ctx)
		}()
		wg.Wait()

		if aerr != nil {
			return Pair[A, B]{}, aerr
		}
		if berr != nil {
			return Pair[A, B]{}, berr
		}
		return Pair[A, B]{First: av, Second: bv}, nil
	}
}

// AllTask runs every task concurrently and collects their results in the
// same order as tasks. If any task fails, AllTask reports every failure
// joined together rather than just the first.
func AllTask[T any](tasks []Task[T]) Task[[]T] {
	return func(ctx context.Context) ([]T, error) {
		results := make([]T, len(tasks))
		errs := make([]error, len(tasks))

		var wg sync.WaitGroup
		wg.Add(len(tasks))
		for i, t := range tasks {
			go func(i int, t Task[T]) {
				defer wg.Done()
				results[i], errs[i] = t(ctx)
			}(i, t)
		}
		wg.Wait()

		if joined := xerrors.Join(errs...); joined != nil {
			return nil, joined
		}
		return results, nil
	}
}
