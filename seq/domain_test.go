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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomains(t *testing.T) {
	t.Run("ordered", func(t *testing.T) {
		dom := Ordered[string]()
		assert.True(t, dom.Ordered())
		l := dom.Of("a", "b")
		assert.Equal(t, 0, l.IndexOf("a"))
		assert.Negative(t, dom.Of("a").Compare(dom.Of("b")))
	})

	t.Run("comparable is unordered", func(t *testing.T) {
		type key struct{ a, b int }
		dom := Comparable[key]()
		assert.False(t, dom.Ordered())
		l := dom.Of(key{1, 2}, key{3, 4})
		assert.Equal(t, 1, l.IndexOf(key{3, 4}))
	})

	t.Run("float64 equality is bitwise", func(t *testing.T) {
		nan := math.NaN()
		bits := Float64()
		assert.Equal(t, 0, bits.Of(nan).IndexOf(nan))
		assert.Zero(t, bits.Of(nan).Compare(bits.Of(nan)))

		// value semantics treat NaN as unequal to everything
		ieee := Ordered[float64]()
		assert.Equal(t, -1, ieee.Of(nan).IndexOf(nan))
	})

	t.Run("float64 total order", func(t *testing.T) {
		bits := Float64()
		assert.Negative(t, bits.Of(math.Copysign(0, -1)).Compare(bits.Of(0.0)))
		assert.Positive(t, bits.Of(math.NaN()).Compare(bits.Of(math.Inf(1))))
		assert.Negative(t, bits.Of(1.5).Compare(bits.Of(2.5)))
	})

	t.Run("float32", func(t *testing.T) {
		bits := Float32()
		nan := float32(math.NaN())
		assert.Equal(t, 0, bits.Of(nan).IndexOf(nan))
		assert.Negative(t, bits.Of(float32(1)).Compare(bits.Of(float32(2))))
	})

	t.Run("bytes", func(t *testing.T) {
		dom := Bytes()
		l := dom.Of([]byte("aa"), []byte("bb"))
		assert.Equal(t, 1, l.IndexOf([]byte("bb")))
		assert.Negative(t, dom.Of([]byte("a")).Compare(dom.Of([]byte("ab"))))
	})

	t.Run("custom domain", func(t *testing.T) {
		dom := NewDomain[int](
			func(a, b int) bool { return a%10 == b%10 },
			nil)
		l := dom.Of(3, 7, 12)
		assert.Equal(t, 2, l.IndexOf(42))
	})

	t.Run("domain requires equality", func(t *testing.T) {
		assert.Panics(t, func() { NewDomain[int](nil, nil) })
	})
}
