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

// RunWith drains model$ — the program's stream of distinct models — into
// onModel for as long as the program runs. It is Subscribe under the name
// this module's runtime operations use elsewhere: a named drain of a
// stream into a callback, the same shape as a Sub's own registration.
func RunWith[M, Msg any](p *Program[M, Msg], onModel func(M)) Teardown {
	return p.Subscribe(onModel)
}

// Run returns model$ as a channel, plus the Teardown that stops delivery.
// The channel buffers one model: unlike a Subscribe callback, a slow
// receiver may miss intermediate models, but the channel always
// eventually carries the latest one.
func Run[M, Msg any](p *Program[M, Msg]) (<-chan M, Teardown) {
	ch := make(chan M, 1)
	td := p.Subscribe(func(m M) { conflateSend(ch, m) })
	return ch, td
}

// conflateSend pushes v onto ch, dropping whatever was already buffered if
// the receiver hasn't drained it yet. Shared by Run and ViewProgram.Run,
// which both project a conflating Subscribe onto a channel.
func conflateSend[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
