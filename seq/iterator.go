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

// Iterator is a bidirectional cursor over a List. Its position ranges over
// [0, Len]; Next returns the element at the position and advances, Prev
// retreats and returns the element it lands on. An Iterator is a position
// pointer only and is not safe for concurrent use.
type Iterator[T any] struct {
	list *List[T]
	pos  int
}

var _ Source[int] = (*Iterator[int])(nil)

// Iterator returns a cursor positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l}
}

// IteratorAt returns a cursor positioned so that Next returns the element
// at index i.
func (l *List[T]) IteratorAt(i int) *Iterator[T] {
	if i < 0 || i > len(l.elems) {
		panic(errors.Wrapf(ErrOutOfRange, "position %d, length %d", i, len(l.elems)))
	}
	return &Iterator[T]{list: l, pos: i}
}

// HasNext reports whether a forward element remains.
func (it *Iterator[T]) HasNext() bool {
	return it.pos < len(it.list.elems)
}

// HasPrev reports whether a backward element remains.
func (it *Iterator[T]) HasPrev() bool {
	return it.pos > 0
}

// Next returns the next element and advances. Panics with ErrExhausted at
// the end.
func (it *Iterator[T]) Next() T {
	if it.pos >= len(it.list.elems) {
		panic(ErrExhausted)
	}
	v := it.list.elems[it.pos]
	it.pos++
	return v
}

// Prev retreats and returns the element retreated onto. Panics with
// ErrExhausted at the start.
func (it *Iterator[T]) Prev() T {
	if it.pos <= 0 {
		panic(ErrExhausted)
	}
	it.pos--
	return it.list.elems[it.pos]
}

// NextIndex returns the index of the element Next would return.
func (it *Iterator[T]) NextIndex() int {
	return it.pos
}

// PrevIndex returns the index of the element Prev would return.
func (it *Iterator[T]) PrevIndex() int {
	return it.pos - 1
}

// ForEachRemaining calls f on every remaining forward element, leaving the
// cursor at the end.
func (it *Iterator[T]) ForEachRemaining(f func(T)) {
	for ; it.pos < len(it.list.elems); it.pos++ {
		f(it.list.elems[it.pos])
	}
}

// Skip advances by at most n positions and returns the actual advance.
// Panics with ErrNegativeCount when n < 0.
func (it *Iterator[T]) Skip(n int) int {
	if n < 0 {
		panic(errors.Wrapf(ErrNegativeCount, "skip %d", n))
	}
	moved := min(n, len(it.list.elems)-it.pos)
	it.pos += moved
	return moved
}

// Back retreats by at most n positions and returns the actual retreat.
// Panics with ErrNegativeCount when n < 0.
func (it *Iterator[T]) Back(n int) int {
	if n < 0 {
		panic(errors.Wrapf(ErrNegativeCount, "back %d", n))
	}
	moved := min(n, it.pos)
	it.pos -= moved
	return moved
}

// Set panics with ErrImmutable.
func (it *Iterator[T]) Set(v T) {
	panic(ErrImmutable)
}

// Add panics with ErrImmutable.
func (it *Iterator[T]) Add(v T) {
	panic(ErrImmutable)
}

// Remove panics with ErrImmutable.
func (it *Iterator[T]) Remove() {
	panic(ErrImmutable)
}
