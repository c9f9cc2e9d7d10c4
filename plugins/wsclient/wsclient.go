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

// Package wsclient adapts a gorilla/websocket client connection into a Sub
// of incoming messages, with a companion Cmd for sending.
package wsclient

import (
	"context"

	"github.com/gorilla/websocket"

	tea "github.com/savkelita/tea-effect"
)

// Listen builds a Sub that dials url once per start and emits
// toMsg(payload) for every text or binary message received. The
// connection closes, and the Sub stops, on teardown or on any read error.
func Listen[Msg any](url string, toMsg func([]byte) Msg) tea.Sub[Msg] {
	return tea.NewSub(func(ctx context.Context, emit func(Msg), fail func(error)) tea.Teardown {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		if err != nil {
			fail(err)
			return nil
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				_, payload, err := conn.ReadMessage()
				if err != nil {
					select {
					case <-ctx.Done():
					default:
						fail(err)
					}
					return
				}
				emit(toMsg(payload))
			}
		}()

		return func() {
			conn.Close()
			<-done
		}
	})
}

// Send builds a Cmd that dials url, writes payload as a single text
// message, and closes the connection, dispatching onSuccess() or
// onFailure(err).
func Send[Msg any](url string, payload []byte, onSuccess func() Msg, onFailure func(error) Msg) tea.Cmd[Msg] {
	return tea.AttemptWith[Msg](tea.Task[struct{}](func(ctx context.Context) (struct{}, error) {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		if err != nil {
			return struct{}{}, err
		}
		defer conn.Close()
		return struct{}{}, conn.WriteMessage(websocket.TextMessage, payload)
	}), func(struct{}) Msg { return onSuccess() }, onFailure)
}
