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

// streamFunc is the shape shared by Cmd and Sub: given a context, an emit
// callback and a fail callback, start producing Msg values and return a
// Teardown that stops production. Construction of a streamFunc is pure —
// nothing runs until a runtime invokes it.
type streamFunc[M any] func(ctx context.Context, emit func(M), fail func(error)) Teardown
