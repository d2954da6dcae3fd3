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
	"fmt"

	"github.com/pkg/errors"
)

// List is an immutable, array-backed, random-access sequence. The backing
// array is owned exclusively by the List and is never written after
// construction, so a List is safe for unsynchronized concurrent reads.
type List[T any] struct {
	elems []T
	dom   *Domain[T]
}

var _ MutableSequence[int] = (*List[int])(nil)

// Empty returns the canonical empty List for the domain. Every zero-length
// construction returns this same instance.
func (dom *Domain[T]) Empty() *List[T] {
	return dom.empty
}

// Wrap returns a List backed directly by elems, without copying. The caller
// hands over ownership and must not mutate elems afterward.
func (dom *Domain[T]) Wrap(elems []T) *List[T] {
	if len(elems) == 0 {
		return dom.empty
	}
	return &List[T]{elems: elems, dom: dom}
}

// Of returns a List of the given elements, wrapping the variadic slice
// without copying.
func (dom *Domain[T]) Of(elems ...T) *List[T] {
	return dom.Wrap(elems)
}

// CopyRange returns a List holding a copy of elems[off : off+n].
func (dom *Domain[T]) CopyRange(elems []T, off, n int) *List[T] {
	checkOffsetLength(len(elems), off, n)
	if n == 0 {
		return dom.empty
	}
	cp := make([]T, n)
	copy(cp, elems[off:off+n])
	return &List[T]{elems: cp, dom: dom}
}

// FromSequence returns a List holding a copy of src's elements.
func (dom *Domain[T]) FromSequence(src Sequence[T]) *List[T] {
	if src == nil || src.Len() == 0 {
		return dom.empty
	}
	if l, ok := src.(*List[T]); ok {
		cp := make([]T, len(l.elems))
		copy(cp, l.elems)
		return &List[T]{elems: cp, dom: dom}
	}
	elems := make([]T, src.Len())
	src.Each(func(v T, i int) { elems[i] = v })
	return &List[T]{elems: elems, dom: dom}
}

// Drain consumes src to exhaustion and returns its elements as a List.
func (dom *Domain[T]) Drain(src Source[T]) *List[T] {
	if !src.HasNext() {
		return dom.empty
	}
	var buf Buffer[T]
	for src.HasNext() {
		buf.Push(src.Next())
	}
	return dom.seal(&buf)
}

// seal converts buf's backing storage into a List. The storage is handed
// off without copying when its length equals its capacity; otherwise the
// elements are copied down to exact size.
func (dom *Domain[T]) seal(buf *Buffer[T]) *List[T] {
	if buf.Empty() {
		return dom.empty
	}
	elems := buf.Take()
	if len(elems) != cap(elems) {
		cp := make([]T, len(elems))
		copy(cp, elems)
		elems = cp
	}
	return &List[T]{elems: elems, dom: dom}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.elems)
}

// Empty reports whether the List has no elements.
func (l *List[T]) Empty() bool {
	return len(l.elems) == 0
}

// Get returns the element at index i. Only the upper bound is checked here;
// a negative i fails on the slice access itself.
func (l *List[T]) Get(i int) T {
	if i >= len(l.elems) {
		panic(errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, len(l.elems)))
	}
	return l.elems[i]
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	for i := range l.elems {
		if l.dom.eq(l.elems[i], v) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to v, or -1.
func (l *List[T]) LastIndexOf(v T) int {
	for i := len(l.elems) - 1; i >= 0; i-- {
		if l.dom.eq(l.elems[i], v) {
			return i
		}
	}
	return -1
}

// Contains reports whether some element equals v.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// CopyTo bulk-copies n elements starting at from into dest starting at
// destOff.
func (l *List[T]) CopyTo(from int, dest []T, destOff, n int) {
	checkOffsetLength(len(dest), destOff, n)
	if from < 0 || from+n > len(l.elems) {
		panic(errors.Wrapf(ErrOutOfRange, "range [%d:%d) of %d", from, from+n, len(l.elems)))
	}
	copy(dest[destOff:destOff+n], l.elems[from:from+n])
}

// Each calls f on every element in index order.
func (l *List[T]) Each(f func(v T, i int)) {
	for i := range l.elems {
		f(l.elems[i], i)
	}
}

// Iter calls f on elements in index order until f returns true.
func (l *List[T]) Iter(f func(v T, i int) (stop bool)) {
	for i := range l.elems {
		if f(l.elems[i], i) {
			return
		}
	}
}

// ToSlice returns a newly allocated copy of the elements.
func (l *List[T]) ToSlice() []T {
	cp := make([]T, len(l.elems))
	copy(cp, l.elems)
	return cp
}

// CopyInto copies the elements into dest when it is long enough, writing the
// zero value just past the last element if dest is strictly longer. A dest
// that is too short is replaced by a fresh slice of exact length.
func (l *List[T]) CopyInto(dest []T) []T {
	n := len(l.elems)
	if len(dest) < n {
		dest = make([]T, n)
	} else if len(dest) > n {
		var zero T
		dest[n] = zero
	}
	copy(dest, l.elems)
	return dest
}

// Slice returns a List holding a copy of the elements in [from, to).
func (l *List[T]) Slice(from, to int) *List[T] {
	if from < 0 || to < from || to > len(l.elems) {
		panic(errors.Wrapf(ErrOutOfRange, "slice [%d:%d) of %d", from, to, len(l.elems)))
	}
	return l.dom.CopyRange(l.elems, from, to-from)
}

// Equals reports structural equality with other under the domain's equality
// rule. A *List peer takes a fast path over the backing arrays; any other
// Sequence implementation is walked through its index protocol.
func (l *List[T]) Equals(other Sequence[T]) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*List[T]); ok {
		if o == l {
			return true
		}
		if len(o.elems) != len(l.elems) {
			return false
		}
		for i := range l.elems {
			if !l.dom.eq(l.elems[i], o.elems[i]) {
				return false
			}
		}
		return true
	}
	if other.Len() != len(l.elems) {
		return false
	}
	for i := range l.elems {
		if !l.dom.eq(l.elems[i], other.Get(i)) {
			return false
		}
	}
	return true
}

// Compare orders l against other lexicographically with the domain's
// comparator; a strict prefix sorts first. Panics with ErrUnordered when the
// domain has no comparator.
func (l *List[T]) Compare(other *List[T]) int {
	if l.dom.cmp == nil {
		panic(ErrUnordered)
	}
	if other == l {
		return 0
	}
	n := min(len(l.elems), len(other.elems))
	for i := 0; i < n; i++ {
		if c := l.dom.cmp(l.elems[i], other.elems[i]); c != 0 {
			return c
		}
	}
	return len(l.elems) - len(other.elems)
}

// Clone returns the receiver. Immutability makes a deep copy pointless.
func (l *List[T]) Clone() *List[T] {
	return l
}

func (l *List[T]) String() string {
	return fmt.Sprintf("%v", l.elems)
}

func checkOffsetLength(size, off, n int) {
	if n < 0 {
		panic(errors.Wrapf(ErrNegativeCount, "length %d", n))
	}
	if off < 0 || off+n > size {
		panic(errors.Wrapf(ErrOutOfRange, "range [%d:%d) of %d", off, off+n, size))
	}
}
