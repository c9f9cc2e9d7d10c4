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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunWithDrainsModelStreamIntoCallback(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	p := NewProgram(0, None[Msg](), counterUpdate, nil)
	defer p.Shutdown()

	var mu sync.Mutex
	var last int
	td := RunWith(p, func(m int) {
		mu.Lock()
		last = m
		mu.Unlock()
	})
	defer td()

	p.Dispatch(counterMsg{"inc"})

	is.Eventually(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return last == 1
	}, 2*time.Second, 5*time.Millisecond)
}

func TestRunReturnsModelChannelAndStopsOnTeardown(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	p := NewProgram(0, None[Msg](), counterUpdate, nil)
	defer p.Shutdown()

	ch, td := Run(p)
	is.Equal(0, <-ch)

	p.Dispatch(counterMsg{"inc"})
	is.Equal(1, <-ch)

	td()
	p.Dispatch(counterMsg{"inc"})

	select {
	case v := <-ch:
		t.Fatalf("unexpected delivery after teardown: %v", v)
	case <-time.After(50 * time.Millisecond):
	}
}
