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

// Package timer adapts gocron schedules into Sub values, for applications
// that want cron expressions or calendar-aware recurrence instead of the
// runtime's plain time.Ticker-backed Interval.
package timer

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"

	tea "github.com/savkelita/tea-effect"
)

// Cron builds a Sub that fires msg on the schedule described by spec (a
// standard five- or six-field cron expression, withSeconds selecting
// which). The underlying scheduler starts when the Sub starts and stops
// when it is torn down.
func Cron[Msg any](spec string, withSeconds bool, msg Msg) tea.Sub[Msg] {
	return tea.NewSub(func(ctx context.Context, emit func(Msg), fail func(error)) tea.Teardown {
		scheduler, err := gocron.NewScheduler()
		if err != nil {
			fail(err)
			return nil
		}

		_, err = scheduler.NewJob(
			gocron.CronJob(spec, withSeconds),
			gocron.NewTask(func() { emit(msg) }),
		)
		if err != nil {
			fail(err)
			return nil
		}

		scheduler.Start()

		return func() {
			_ = scheduler.Shutdown()
		}
	})
}

// Every builds a Sub that fires msg on a fixed period, the gocron
// equivalent of the runtime's built-in Interval, for applications that
// already depend on gocron for Cron and want one scheduler implementation.
func Every[Msg any](period time.Duration, msg Msg) tea.Sub[Msg] {
	return tea.NewSub(func(ctx context.Context, emit func(Msg), fail func(error)) tea.Teardown {
		scheduler, err := gocron.NewScheduler()
		if err != nil {
			fail(err)
			return nil
		}

		_, err = scheduler.NewJob(
			gocron.DurationJob(period),
			gocron.NewTask(func() { emit(msg) }),
		)
		if err != nil {
			fail(err)
			return nil
		}

		scheduler.Start()

		return func() {
			_ = scheduler.Shutdown()
		}
	})
}
