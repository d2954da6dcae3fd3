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
	"iter"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Collect drains stream to exhaustion and returns its elements as a List.
func (dom *Domain[T]) Collect(stream iter.Seq[T]) *List[T] {
	return dom.CollectSized(stream, 0)
}

// CollectSized is Collect with the construction buffer preallocated to
// expected elements. When the stream yields exactly expected elements the
// buffer's storage becomes the List's backing array without a copy.
func (dom *Domain[T]) CollectSized(stream iter.Seq[T], expected int) *List[T] {
	var buf Buffer[T]
	buf.Grow(expected)
	for v := range stream {
		buf.Push(v)
	}
	return dom.seal(&buf)
}

// CollectParallel drains ch with workers goroutines, each pushing into its
// own buffer, then concatenates the buffers into one List. Each worker
// preallocates expected elements, so the reserve is duplicated per worker;
// size the hint accordingly. Element order across workers is unspecified.
// Returns ctx.Err if ctx is canceled before ch closes.
func (dom *Domain[T]) CollectParallel(ctx context.Context, ch <-chan T, workers, expected int) (*List[T], error) {
	if workers < 1 {
		panic(errors.Wrapf(ErrNegativeCount, "workers %d", workers))
	}
	bufs := make([]Buffer[T], workers)
	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		buf := &bufs[i]
		eg.Go(func() error {
			buf.Grow(expected)
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case v, ok := <-ch:
					if !ok {
						return nil
					}
					buf.Push(v)
				}
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for i := range bufs {
		total += bufs[i].Len()
	}
	if total == 0 {
		return dom.empty, nil
	}
	elems := make([]T, 0, total)
	for i := range bufs {
		elems = append(elems, bufs[i].Take()...)
	}
	return &List[T]{elems: elems, dom: dom}, nil
}
