// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package diag

import (
	"fmt"

	"github.com/pkg/errors"
)

// Fault reports an internal invariant violation. Unlike a [Rejection], a fault
// never describes a property of the analyzed kernel; it describes a bug in the
// analysis or in the tree handed to it. Faults are raised by panic and carry a
// stack trace from the point of detection, printable with the %+v verb.
type Fault struct {
	err error
}

// Faultf creates a [Fault] with a captured stack trace.
func Faultf(format string, args ...any) *Fault {
	return &Fault{err: errors.Errorf(format, args...)}
}

// Error implements the error interface.
func (f *Fault) Error() string {
	return "internal fault: " + f.err.Error()
}

// Unwrap returns the underlying stack-carrying error.
func (f *Fault) Unwrap() error {
	return f.err
}

// Format prints the stack trace with %+v.
func (f *Fault) Format(s fmt.State, verb rune) {
	if fe, ok := f.err.(fmt.Formatter); ok && verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprint(s, "internal fault: ")
		fe.Format(s, verb)

		return
	}

	_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), f.Error())
}

// IsFault reports whether err's chain contains a [Fault].
func IsFault(err error) bool {
	var f *Fault
	return errors.As(err, &f)
}
