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

import "strings"

// Placeholders used to protect already-promoted fences during the blanket
// replacement. They are control characters no converter ever emits.
const (
	leftParenHold  = "\x01"
	rightParenHold = "\x02"
)

// fixParentheses promotes every bare "("/")" in a LaTeX fragment to
// \left(/\right), leaving fences that are already promoted untouched.
// Applied once, at the top of the outermost call. Idempotent.
func fixParentheses(latex string) string {
	latex = strings.ReplaceAll(latex, "\\left(", leftParenHold)
	latex = strings.ReplaceAll(latex, "\\right)", rightParenHold)

	latex = strings.ReplaceAll(latex, "(", "\\left(")
	latex = strings.ReplaceAll(latex, ")", "\\right)")

	latex = strings.ReplaceAll(latex, leftParenHold, "\\left(")
	latex = strings.ReplaceAll(latex, rightParenHold, "\\right)")
	return latex
}
