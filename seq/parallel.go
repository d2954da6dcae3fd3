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

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ParEach traverses s in parallel: the List's Splitter is bisected until no
// remaining range exceeds grain elements, and each leaf range runs on its
// own goroutine. The leaves partition the List, so every element is visited
// exactly once; visit order across leaves is unspecified. f must be safe for
// concurrent use. Cancellation of ctx is honored between elements.
func ParEach[T any](ctx context.Context, s *List[T], grain int, f func(v T)) error {
	if grain < 1 {
		panic(errors.Wrapf(ErrNegativeCount, "grain %d", grain))
	}
	eg, ctx := errgroup.WithContext(ctx)
	var spawn func(sp *Splitter[T])
	spawn = func(sp *Splitter[T]) {
		for sp.EstimateSize() > grain {
			front := sp.TrySplit()
			if front == nil {
				break
			}
			spawn(front)
		}
		eg.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				if !sp.TryAdvance(f) {
					return nil
				}
			}
		})
	}
	spawn(s.Splitter())
	return eg.Wait()
}
