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

import "context"

// RunCmd starts cmd directly, bypassing a Program. Plugin authors use this
// to unit test a Cmd constructor in isolation.
func RunCmd[M any](ctx context.Context, cmd Cmd[M], emit func(M), fail func(error)) Teardown {
	if cmd.isZero() {
		return nil
	}
	return cmd.run(ctx, emit, fail)
}

// RunSub starts sub directly, bypassing a Program. Plugin authors use this
// to unit test a Sub constructor in isolation.
func RunSub[M any](ctx context.Context, sub Sub[M], emit func(M), fail func(error)) Teardown {
	if sub.isZero() {
		return nil
	}
	return sub.run(ctx, emit, fail)
}

// NewCmd builds a Cmd directly from a streamFunc shape. Plugin packages
// that need more control than FromEffect/Attempt offer (e.g. a command
// that can fail partway through without having a single return value) use
// this to construct their own Cmd values.
func NewCmd[M any](start func(ctx context.Context, emit func(M), fail func(error)) Teardown) Cmd[M] {
	return Cmd[M]{run: start}
}

// NewSub builds a Sub directly from a streamFunc shape. Used by plugin
// packages (fswatch, wsclient, location) that bridge an external push or
// poll source into the runtime and need both emit and fail.
func NewSub[M any](start func(ctx context.Context, emit func(M), fail func(error)) Teardown) Sub[M] {
	return Sub[M]{run: start}
}
