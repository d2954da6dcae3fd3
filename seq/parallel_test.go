// Copyright 2026 Dolthub, Inc.
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

package seq

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParEach(t *testing.T) {
	t.Run("visits every element exactly once", func(t *testing.T) {
		const n = 1000
		elems := make([]int, n)
		for i := range elems {
			elems[i] = i
		}
		l := Ordered[int]().Wrap(elems)

		visits := make([]int32, n)
		err := ParEach(context.Background(), l, 16, func(v int) {
			atomic.AddInt32(&visits[v], 1)
		})
		require.NoError(t, err)

		for i, c := range visits {
			require.EqualValues(t, 1, c, "element %d visited %d times", i, c)
		}
	})

	t.Run("grain larger than the list", func(t *testing.T) {
		var count int32
		err := ParEach(context.Background(), rangeList(5), 100, func(int) {
			atomic.AddInt32(&count, 1)
		})
		require.NoError(t, err)
		assert.EqualValues(t, 5, count)
	})

	t.Run("empty list", func(t *testing.T) {
		err := ParEach(context.Background(), Ordered[int]().Empty(), 1, func(int) {
			t.Fatal("callback on empty list")
		})
		require.NoError(t, err)
	})

	t.Run("honors cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := ParEach(ctx, rangeList(100), 1, func(int) {})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid grain", func(t *testing.T) {
		requirePanicsIs(t, ErrNegativeCount, func() {
			_ = ParEach(context.Background(), rangeList(3), 0, func(int) {})
		})
	})
}
