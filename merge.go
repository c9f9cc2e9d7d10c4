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
)

// mergeStreams fans multiple streamFuncs into one: every child starts on
// its own goroutine (so a synchronous child like Of cannot delay an
// asynchronous sibling from starting), and the returned Teardown cancels
// every child once all of them have started. This is the shared
// implementation behind BatchCmd and BatchSub, grounded on the same
// "spawn a goroutine, return a Teardown synchronously" shape every external
// source in this runtime follows.
//
// There are no ordering guarantees between messages emitted by different
// children — matching the spec's batch-fairness requirement, not a
// shortcoming of this implementation.
func mergeStreams[M any](starts []streamFunc[M]) streamFunc[M] {
	switch len(starts) {
	case 0:
		return func(context.Context, func(M), func(error)) Teardown { return nil }
	case 1:
		return starts[0]
	}

	return func(ctx context.Context, emit func(M), fail func(error)) Teardown {
		teardowns := make([]Teardown, len(starts))

		var wg sync.WaitGroup
		wg.Add(len(starts))
		for i, start := range starts {
			go func(i int, start streamFunc[M]) {
				defer wg.Done()
				teardowns[i] = start(ctx, emit, fail)
			}(i, start)
		}
		wg.Wait()

		return func() {
			for _, td := range teardowns {
				if td != nil {
					td()
				}
			}
		}
	}
}
