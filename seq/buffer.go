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
	"github.com/pkg/errors"
)

// Buffer is a growable buffer used to assemble Lists from sources of
// unknown size. The zero value is ready to use.
type Buffer[T any] struct {
	elems []T
}

// Len returns the number of buffered elements.
func (b *Buffer[T]) Len() int {
	return len(b.elems)
}

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool {
	return len(b.elems) == 0
}

// Push appends v, growing the backing storage as needed.
func (b *Buffer[T]) Push(v T) {
	b.elems = append(b.elems, v)
}

// Grow reserves capacity for exactly n more elements beyond the current
// length, unless that much free capacity already exists. The exact reserve
// keeps the no-copy handoff in List construction reachable for sized
// sources.
func (b *Buffer[T]) Grow(n int) {
	if n < 0 {
		panic(errors.Wrapf(ErrNegativeCount, "grow %d", n))
	}
	if cap(b.elems)-len(b.elems) >= n {
		return
	}
	cp := make([]T, len(b.elems), len(b.elems)+n)
	copy(cp, b.elems)
	b.elems = cp
}

// Take hands off the backing storage. The buffer is reset and must not be
// assumed to alias the returned slice afterward.
func (b *Buffer[T]) Take() []T {
	elems := b.elems
	b.elems = nil
	return elems
}
