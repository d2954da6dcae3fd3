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

// Characteristic is a bit set describing a Splitter's traversal properties.
type Characteristic uint

const (
	// CharOrdered: elements are encountered in a defined order.
	CharOrdered Characteristic = 1 << iota
	// CharSized: EstimateSize is exact.
	CharSized
	// CharSubSized: every split is also exactly sized.
	CharSubSized
	// CharImmutable: the source cannot change during traversal.
	CharImmutable
)

// Splitter is a cursor over the range [pos, max) of a List, built for
// divide-and-conquer traversal: TrySplit hands the front half of the
// remaining range to a new Splitter with no overlap and no gap, so sibling
// Splitters can be consumed by different goroutines without locking.
// A single Splitter is not safe for concurrent use.
type Splitter[T any] struct {
	list *List[T]
	pos  int
	max  int
}

// Splitter returns a cursor over the whole List.
func (l *List[T]) Splitter() *Splitter[T] {
	return &Splitter[T]{list: l, max: len(l.elems)}
}

// Characteristics reports the traversal properties of the Splitter.
func (sp *Splitter[T]) Characteristics() Characteristic {
	return CharOrdered | CharSized | CharSubSized | CharImmutable
}

// EstimateSize returns the exact number of remaining elements.
func (sp *Splitter[T]) EstimateSize() int {
	return sp.max - sp.pos
}

// TryAdvance calls f on the next element and advances, returning false when
// the range is exhausted.
func (sp *Splitter[T]) TryAdvance(f func(T)) bool {
	if sp.pos >= sp.max {
		return false
	}
	f(sp.list.elems[sp.pos])
	sp.pos++
	return true
}

// ForEachRemaining calls f on every remaining element in order, leaving the
// cursor exhausted.
func (sp *Splitter[T]) ForEachRemaining(f func(T)) {
	for ; sp.pos < sp.max; sp.pos++ {
		f(sp.list.elems[sp.pos])
	}
}

// Skip advances by at most n positions and returns the actual advance; an
// exhausted Splitter returns 0. Panics with ErrNegativeCount when n < 0.
func (sp *Splitter[T]) Skip(n int) int {
	if n < 0 {
		panic(errors.Wrapf(ErrNegativeCount, "skip %d", n))
	}
	moved := min(n, sp.max-sp.pos)
	sp.pos += moved
	return moved
}

// TrySplit bisects the remaining range: the returned Splitter owns the front
// half and the receiver keeps the back half, so draining the new Splitter
// and then the receiver reproduces the original order exactly. Returns nil
// when the remaining range is too small to divide usefully (front half of
// one element or less).
func (sp *Splitter[T]) TrySplit() *Splitter[T] {
	half := (sp.max - sp.pos) / 2
	if half <= 1 {
		return nil
	}
	front := &Splitter[T]{list: sp.list, pos: sp.pos, max: sp.pos + half}
	sp.pos += half
	return front
}
