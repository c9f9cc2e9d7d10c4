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

// Package httpcmd adapts net/http requests into tea.Cmd values, validating
// the request before it ever leaves the process.
package httpcmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	tea "github.com/savkelita/tea-effect"
)

// Request describes an HTTP call a command should make. It validates
// itself before any network I/O happens, so a malformed request fails
// synchronously as part of Validate rather than as a confusing transport
// error from net/http.
type Request struct {
	Method  string
	URL     string
	Body    []byte
	Headers map[string]string
	Timeout time.Duration
}

// Validate implements validation.Validatable.
func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Method, validation.Required, validation.In(
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
		)),
		validation.Field(&r.URL, validation.Required, is.URL),
	)
}

// Response is the successful outcome of a Request.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Do builds a Cmd that performs req and dispatches onSuccess(response) or
// onFailure(err), covering both validation failures and transport errors.
func Do[Msg any](req Request, onSuccess func(Response) Msg, onFailure func(error) Msg) tea.Cmd[Msg] {
	return tea.AttemptWith[Msg](tea.Task[Response](func(ctx context.Context) (Response, error) {
		return perform(ctx, req)
	}), onSuccess, onFailure)
}

func perform(ctx context.Context, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return Response{}, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	client := &http.Client{}
	if req.Timeout > 0 {
		client.Timeout = req.Timeout
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	return Response{StatusCode: resp.StatusCode, Body: body, Headers: resp.Header}, nil
}
