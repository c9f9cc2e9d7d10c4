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

// Package telemetry wraps zerolog for the Platform runtime's ambient
// logging: program start and termination, a shutdown drain timeout, and
// routed errors.
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/savkelita/tea-effect/internal/xtime"
)

// Logger is the narrow logging surface Program depends on.
type Logger interface {
	Debug(event string, fields map[string]any)
	Info(event string, fields map[string]any)
	Warn(event string, fields map[string]any)
	Error(event string, err error, fields map[string]any)
}

// New builds a zerolog-backed Logger writing to w.
func New(w io.Writer) Logger {
	return &zerologLogger{logger: zerolog.New(w).With().Timestamp().Logger()}
}

// Default returns the package-wide default logger, writing to stderr.
func Default() Logger {
	return New(os.Stderr)
}

// Noop returns a Logger that discards everything, used when a Program is
// constructed without an explicit logger.
func Noop() Logger {
	return &zerologLogger{logger: zerolog.New(io.Discard)}
}

type zerologLogger struct {
	logger zerolog.Logger
}

func (l *zerologLogger) Debug(event string, fields map[string]any) {
	withFields(l.logger.Debug(), fields).Int64("t_ns", xtime.NowNanoMonotonic()).Msg(event)
}

func (l *zerologLogger) Info(event string, fields map[string]any) {
	withFields(l.logger.Info(), fields).Int64("t_ns", xtime.NowNanoMonotonic()).Msg(event)
}

func (l *zerologLogger) Warn(event string, fields map[string]any) {
	withFields(l.logger.Warn(), fields).Int64("t_ns", xtime.NowNanoMonotonic()).Msg(event)
}

func (l *zerologLogger) Error(event string, err error, fields map[string]any) {
	withFields(l.logger.Error().Err(err), fields).Int64("t_ns", xtime.NowNanoMonotonic()).Msg(event)
}

func withFields(e *zerolog.Event, fields map[string]any) *zerolog.Event {
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	return e
}
