// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package mjxlatex

import (
	"errors"
	"fmt"
	"strings"
)

// NoMathError is returned when no recognizable math root is found in the
// input. The accompanying string result is SentinelNoMath.
type NoMathError struct {
	Detail string
}

func (e *NoMathError) Error() string {
	if e.Detail != "" {
		return "no valid math found: " + e.Detail
	}
	return "no valid math found"
}

// FailedAttempt records a converter that accepted a root but failed.
type FailedAttempt struct {
	Converter string
	Err       error
}

// ConversionError is returned when every converter that accepted the root
// failed to convert it, or when the walker panicked on a malformed tree.
type ConversionError struct {
	Attempts []FailedAttempt
}

func (e *ConversionError) Error() string {
	if len(e.Attempts) == 0 {
		return "conversion failed"
	}
	var b strings.Builder
	b.WriteString("conversion failed after ")
	fmt.Fprintf(&b, "%d attempt(s):", len(e.Attempts))
	for _, a := range e.Attempts {
		fmt.Fprintf(&b, "\n  %s: %v", a.Converter, a.Err)
	}
	return b.String()
}

func (e *ConversionError) Unwrap() error {
	if len(e.Attempts) > 0 {
		return e.Attempts[len(e.Attempts)-1].Err
	}
	return nil
}

// IsNoMath reports whether the error is a NoMathError.
func IsNoMath(err error) bool {
	var target *NoMathError
	return errors.As(err, &target)
}
