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

// Every mutator of the MutableSequence protocol panics with ErrImmutable.
// The overrides turn what would otherwise be silent data corruption through
// a widened handle into an immediate, loud failure.

// Set panics with ErrImmutable.
func (l *List[T]) Set(i int, v T) {
	panic(ErrImmutable)
}

// Insert panics with ErrImmutable.
func (l *List[T]) Insert(i int, v T) {
	panic(ErrImmutable)
}

// InsertAll panics with ErrImmutable.
func (l *List[T]) InsertAll(i int, vs ...T) {
	panic(ErrImmutable)
}

// Append panics with ErrImmutable.
func (l *List[T]) Append(v T) {
	panic(ErrImmutable)
}

// AppendAll panics with ErrImmutable.
func (l *List[T]) AppendAll(vs ...T) {
	panic(ErrImmutable)
}

// Remove panics with ErrImmutable.
func (l *List[T]) Remove(i int) T {
	panic(ErrImmutable)
}

// RemoveValue panics with ErrImmutable.
func (l *List[T]) RemoveValue(v T) bool {
	panic(ErrImmutable)
}

// RemoveIf panics with ErrImmutable.
func (l *List[T]) RemoveIf(pred func(T) bool) bool {
	panic(ErrImmutable)
}

// RemoveAll panics with ErrImmutable.
func (l *List[T]) RemoveAll(other Sequence[T]) bool {
	panic(ErrImmutable)
}

// RetainAll panics with ErrImmutable.
func (l *List[T]) RetainAll(other Sequence[T]) bool {
	panic(ErrImmutable)
}

// Replace panics with ErrImmutable.
func (l *List[T]) Replace(op func(T) T) {
	panic(ErrImmutable)
}

// Sort panics with ErrImmutable.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	panic(ErrImmutable)
}

// Clear panics with ErrImmutable.
func (l *List[T]) Clear() {
	panic(ErrImmutable)
}

// Resize panics with ErrImmutable.
func (l *List[T]) Resize(n int) {
	panic(ErrImmutable)
}

// RemoveRange panics with ErrImmutable.
func (l *List[T]) RemoveRange(from, to int) {
	panic(ErrImmutable)
}

// SetRange panics with ErrImmutable.
func (l *List[T]) SetRange(i int, vs ...T) {
	panic(ErrImmutable)
}
