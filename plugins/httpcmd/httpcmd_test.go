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

package httpcmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	tea "github.com/savkelita/tea-effect"
)

type resultMsg struct {
	status int
	err    error
}

func TestDoDispatchesSuccessMsg(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := Do[tea.Msg](Request{Method: http.MethodGet, URL: srv.URL},
		func(r Response) tea.Msg { return resultMsg{status: r.StatusCode} },
		func(err error) tea.Msg { return resultMsg{err: err} },
	)

	got := make(chan tea.Msg, 1)
	tea.RunCmd(ctx, cmd, func(m tea.Msg) { got <- m }, func(error) {})

	select {
	case m := <-got:
		r := m.(resultMsg)
		is.NoError(r.err)
		is.Equal(http.StatusTeapot, r.status)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for response")
	}
}

func TestDoDispatchesFailureMsgOnInvalidRequest(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := Do[tea.Msg](Request{Method: "TRACE", URL: "not-a-url"},
		func(r Response) tea.Msg { return resultMsg{status: r.StatusCode} },
		func(err error) tea.Msg { return resultMsg{err: err} },
	)

	got := make(chan tea.Msg, 1)
	tea.RunCmd(ctx, cmd, func(m tea.Msg) { got <- m }, func(error) {})

	select {
	case m := <-got:
		r := m.(resultMsg)
		is.Error(r.err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for validation failure")
	}
}
