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

// Package d provides panic-based assertion helpers for internal invariants.
package d

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

var (
	// Chk asserts internal invariants; a failed assertion is an
	// unrecoverable panic.
	Chk = assert.New(&panicker{})
	// Exp provides the same API as Chk, but the resulting panics can be caught by d.Try()
	Exp = assert.New(&recoverablePanicker{})
)

type panicker struct {
}

func (s panicker) Errorf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

type recoverablePanicker struct {
}

func (s recoverablePanicker) Errorf(format string, args ...interface{}) {
	panic(checkError{fmt.Sprintf(format, args...)})
}
