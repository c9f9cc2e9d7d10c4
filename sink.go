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

import "sync/atomic"

// sink is the destination a running Cmd or Sub emits Msg values and errors
// into. It guarantees that once it has observed an error, or been closed,
// further notifications are dropped rather than forwarded — the same
// single-terminal-transition guarantee a reactive-streams Observer gives,
// generalized here to "no Complete signal" since a Cmd/Sub's stream simply
// stops producing rather than announcing completion.
type sink[M any] struct {
	status  int32 // 0 = open, 1 = closed
	onNext  func(M)
	onError func(error)
}

const (
	sinkOpen   = 0
	sinkClosed = 1
)

func newSink[M any](onNext func(M), onError func(error)) *sink[M] {
	return &sink[M]{onNext: onNext, onError: onError}
}

// next forwards a message, dropping it if the sink is already closed.
func (s *sink[M]) next(msg M) {
	if atomic.LoadInt32(&s.status) != sinkOpen {
		return
	}
	s.onNext(msg)
}

// fail forwards an error at most once, then marks the sink closed. A Cmd or
// Sub that calls fail is expected to stop emitting afterward, but the sink
// protects the runtime even if it doesn't.
func (s *sink[M]) fail(err error) {
	if err == nil {
		return
	}
	if !atomic.CompareAndSwapInt32(&s.status, sinkOpen, sinkClosed) {
		return
	}
	s.onError(err)
}

// close marks the sink closed without routing an error, used when the
// runtime cancels the underlying execution (shutdown, subscription
// switching) rather than the stream failing on its own.
func (s *sink[M]) close() {
	atomic.StoreInt32(&s.status, sinkClosed)
}

func (s *sink[M]) isClosed() bool {
	return atomic.LoadInt32(&s.status) != sinkOpen
}
