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

package d

import (
	"github.com/pkg/errors"
)

type checkError struct {
	msg string
}

func (e checkError) Error() string {
	return e.msg
}

// Panic is a convenience for panicking with a formatted error.
func Panic(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// PanicIfError panics with err if err is non-nil.
func PanicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

// PanicIfFalse panics with a formatted error unless b holds.
func PanicIfFalse(b bool, format string, args ...interface{}) {
	if !b {
		panic(errors.Errorf(format, args...))
	}
}

// Try runs f, converting panics raised through Exp (or carrying an error
// value) into returned errors. Panics of any other kind propagate.
func Try(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch r := r.(type) {
			case checkError:
				err = errors.Wrap(r, "expectation failed")
			case error:
				err = r
			default:
				panic(r)
			}
		}
	}()
	f()
	return
}
