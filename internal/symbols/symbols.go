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

// Package symbols holds the static glyph-to-LaTeX mapping tables consumed by
// the tree walkers. All tables are immutable configuration data; nothing in
// this package has behavior beyond lookups.
package symbols

import (
	"fmt"
	"strconv"
	"strings"
)

// Invisible operator code points. They mark function application and
// implicit multiplication in the source trees and contribute nothing to the
// LaTeX output.
const (
	FunctionApply  = '⁡'
	InvisibleTimes = '⁢'
	InvisibleComma = '⁣'
	InvisiblePlus  = '⁤'
)

// Combining marks rendered structurally by an enclosing mover rather than
// inline.
const (
	VectorArrow   = '⃗'
	OverlineMark  = '̅'
	MacronMark    = '¯'
	OverlineGlyph = '‾'
)

// Operators maps operator glyphs to their LaTeX form. Binary operators carry
// a single leading and trailing space; fence characters pass through bare so
// the post-processor can promote them uniformly; curly braces are escaped.
var Operators = map[string]string{
	"=": " = ",
	"+": " + ",
	"-": " - ",
	"−": " - ", // minus sign
	"×": " \\times ",
	"÷": " \\div ",
	"±": " \\pm ",
	"∓": " \\mp ",
	"*": " * ",
	"∗": " * ",
	"<": " < ",
	">": " > ",
	"≤": " \\leq ",
	"≥": " \\geq ",
	"≠": " \\neq ",
	"≈": " \\approx ",
	"→": " \\to ",
	"∈": " \\in ",
	"∉": " \\notin ",
	",": ", ",

	"(": "(",
	")": ")",
	"[": "[",
	"]": "]",
	"{": "\\{",
	"}": "\\}",

	// Divides renders as \mid; the literal bar "|" is resolved positionally
	// by the walker (absolute-value pairs) and is deliberately absent here.
	"∣": "\\mid ",

	"′": "'",
	"″": "''",
	"‴": "'''",

	"∫": "\\int",
	"∑": "\\sum",
	"∏": "\\prod",
	"⋅": " \\cdot ",
	"…": "\\ldots ",
	"⋯": "\\cdots ",

	string(FunctionApply):  "",
	string(InvisibleTimes): "",
	string(InvisibleComma): "",
	string(InvisiblePlus):  "",
}

// Codepoints maps normalized "U+XXXX" keys to LaTeX tokens. Math-italic
// letters and digit variants fold back to their ASCII forms; Greek letters
// and named symbols map to macros with a trailing space so tokens cannot
// glue together; combining marks map to themselves so the walker can detect
// them structurally and elide them inline.
var Codepoints = map[string]string{
	// Greek letters, lowercase
	"U+03B1": "\\alpha ",
	"U+03B2": "\\beta ",
	"U+03B3": "\\gamma ",
	"U+03B4": "\\delta ",
	"U+03B5": "\\epsilon ",
	"U+03B6": "\\zeta ",
	"U+03B7": "\\eta ",
	"U+03B8": "\\theta ",
	"U+03B9": "\\iota ",
	"U+03BA": "\\kappa ",
	"U+03BB": "\\lambda ",
	"U+03BC": "\\mu ",
	"U+03BD": "\\nu ",
	"U+03BE": "\\xi ",
	"U+03C0": "\\pi ",
	"U+03C1": "\\rho ",
	"U+03C2": "\\varsigma ",
	"U+03C3": "\\sigma ",
	"U+03C4": "\\tau ",
	"U+03C5": "\\upsilon ",
	"U+03C6": "\\varphi ",
	"U+03C7": "\\chi ",
	"U+03C8": "\\psi ",
	"U+03C9": "\\omega ",
	// Greek letters, uppercase
	"U+0393": "\\Gamma ",
	"U+0394": "\\Delta ",
	"U+0398": "\\Theta ",
	"U+039B": "\\Lambda ",
	"U+039E": "\\Xi ",
	"U+03A0": "\\Pi ",
	"U+03A3": "\\Sigma ",
	"U+03A6": "\\Phi ",
	"U+03A8": "\\Psi ",
	"U+03A9": "\\Omega ",
	// Math-italic Greek (MathJax glyph plane)
	"U+1D6FC": "\\alpha ",
	"U+1D6FD": "\\beta ",
	"U+1D6FE": "\\gamma ",
	"U+1D6FF": "\\delta ",
	"U+1D700": "\\epsilon ",
	"U+1D701": "\\zeta ",
	"U+1D702": "\\eta ",
	"U+1D703": "\\theta ",
	"U+1D704": "\\iota ",
	"U+1D705": "\\kappa ",
	"U+1D706": "\\lambda ",
	"U+1D707": "\\mu ",
	"U+1D708": "\\nu ",
	"U+1D709": "\\xi ",
	"U+1D70B": "\\pi ",
	"U+1D70C": "\\rho ",
	"U+1D70E": "\\sigma ",
	"U+1D70F": "\\tau ",
	"U+1D710": "\\upsilon ",
	"U+1D711": "\\varphi ",
	"U+1D712": "\\chi ",
	"U+1D713": "\\psi ",
	"U+1D714": "\\omega ",
	"U+1D715": "\\partial ",
	"U+1D716": "\\varepsilon ",
	"U+1D717": "\\vartheta ",
	"U+1D719": "\\phi ",

	// Relations and arrows
	"U+2260": " \\neq ",
	"U+2264": " \\leq ",
	"U+2265": " \\geq ",
	"U+2248": " \\approx ",
	"U+2192": " \\to ",
	"U+2190": " \\leftarrow ",
	"U+21D2": " \\Rightarrow ",
	"U+21D4": " \\Leftrightarrow ",
	"U+2208": " \\in ",
	"U+2209": " \\notin ",
	"U+2282": " \\subset ",
	"U+2286": " \\subseteq ",
	"U+222A": " \\cup ",
	"U+2229": " \\cap ",

	// Named symbols
	"U+221E": "\\infty ",
	"U+2205": "\\emptyset ",
	"U+2207": "\\nabla ",
	"U+221A": "\\sqrt",
	"U+222B": "\\int",
	"U+2211": "\\sum",
	"U+220F": "\\prod",
	"U+2202": "\\partial ",
	"U+2223": "\\mid ",
	"U+22C5": " \\cdot ",
	"U+00B7": " \\cdot ",
	"U+2026": "\\ldots ",
	"U+22EF": "\\cdots ",
	"U+00B0": "^\\circ ",
	"U+2032": "'",
	"U+2033": "''",

	// Operators by code point (the SVG shape encodes everything this way)
	"U+003D": " = ",
	"U+002B": " + ",
	"U+2212": " - ",
	"U+002D": " - ",
	"U+00D7": " \\times ",
	"U+00F7": " \\div ",
	"U+00B1": " \\pm ",
	"U+2213": " \\mp ",
	"U+003C": " < ",
	"U+003E": " > ",
	"U+002C": ", ",
	"U+0028": "(",
	"U+0029": ")",
	"U+005B": "[",
	"U+005D": "]",
	"U+007B": "\\{",
	"U+007D": "\\}",
	"U+007C": "|",

	// Invisible operators
	"U+2061": "",
	"U+2062": "",
	"U+2063": "",
	"U+2064": "",

	// Combining marks keep their raw rune so enclosing mover nodes can
	// detect them; the walker elides them when they surface inline.
	"U+20D7": string(VectorArrow),
	"U+0305": string(OverlineMark),
	"U+00AF": string(MacronMark),
	"U+203E": string(OverlineGlyph),
}

func init() {
	// Math-italic Latin letters (U+1D434..U+1D467) fold to plain ASCII.
	for i := 0; i < 26; i++ {
		Codepoints[fmt.Sprintf("U+1D4%02X", 0x34+i)] = string(rune('A' + i))
	}
	for i := 0; i < 26; i++ {
		Codepoints[fmt.Sprintf("U+1D4%02X", 0x4e+i)] = string(rune('a' + i))
	}
	// U+1D455 (italic h) is a hole in the math alphanumeric block; the real
	// glyph is Planck's constant at U+210E.
	delete(Codepoints, "U+1D455")
	Codepoints["U+210E"] = "h"
}

// Functions is the set of standard function names that always emit as
// backslash macros.
var Functions = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"cot": true, "sec": true, "csc": true,
	"arcsin": true, "arccos": true, "arctan": true,
	"arccot": true, "arcsec": true, "arccsc": true,
	"sinh": true, "cosh": true, "tanh": true,
	"coth": true, "sech": true, "csch": true,
	"log": true, "ln": true, "lg": true, "exp": true,
	"lim": true, "max": true, "min": true,
	"sup": true, "inf": true,
	"det": true, "gcd": true, "deg": true,
	"arg": true, "dim": true, "ker": true, "mod": true,
}

// Table bundles the lookup tables one conversion consults. A table is
// injected into the walker's context at construction; nothing reads ambient
// package state during a walk.
type Table struct {
	Operators  map[string]string
	Codepoints map[string]string
	Functions  map[string]bool
}

var defaultTable = &Table{
	Operators:  Operators,
	Codepoints: Codepoints,
	Functions:  Functions,
}

// Default returns the canonical table set.
func Default() *Table {
	return defaultTable
}

// IsFunction reports whether name is a standard function name,
// case-insensitively.
func (t *Table) IsFunction(name string) bool {
	return t.Functions[strings.ToLower(name)]
}

// IsFunctionPrefix reports whether s is a proper prefix of at least one
// standard function name. Used by the walker's multi-glyph lookahead.
func (t *Table) IsFunctionPrefix(s string) bool {
	s = strings.ToLower(s)
	for name := range t.Functions {
		if len(s) < len(name) && strings.HasPrefix(name, s) {
			return true
		}
	}
	return false
}

// FunctionMacro returns the backslash macro for a standard function name,
// with the trailing space the output grammar requires.
func FunctionMacro(name string) string {
	return "\\" + strings.ToLower(name) + " "
}

// IsCombining reports whether r falls in the combining-mark ranges
// (U+0300-U+036F, U+20D0-U+20FF). Combining marks never take a trailing
// space and may be consumed by a structural parent.
func IsCombining(r rune) bool {
	return (r >= 0x0300 && r <= 0x036f) || (r >= 0x20d0 && r <= 0x20ff)
}

// NormalizeCodepoint turns a raw hex code ("1d465", "U+1D465", "0x1D465")
// into the canonical "U+XXXX" table key. ok is false when the code cannot
// be parsed.
func NormalizeCodepoint(code string) (key string, r rune, ok bool) {
	code = strings.TrimSpace(code)
	code = strings.TrimPrefix(code, "U+")
	code = strings.TrimPrefix(code, "u+")
	code = strings.TrimPrefix(code, "0x")
	if code == "" {
		return "", 0, false
	}
	n, err := strconv.ParseInt(code, 16, 32)
	if err != nil || n < 0 || n > 0x10ffff {
		return "", 0, false
	}
	return fmt.Sprintf("U+%04X", n), rune(n), true
}

// ResolveRune looks up a single rune's LaTeX token by code point.
func (t *Table) ResolveRune(r rune) (string, bool) {
	tok, ok := t.Codepoints[fmt.Sprintf("U+%04X", r)]
	return tok, ok
}

// Resolve maps a raw hex code point to its LaTeX token. Unknown code points
// decode to their literal character with a trailing space (no space for
// combining marks). Unparsable codes yield a bracketed placeholder; this
// method never fails.
func (t *Table) Resolve(code string) string {
	key, r, ok := NormalizeCodepoint(code)
	if !ok {
		return "[U+" + strings.TrimPrefix(strings.ToUpper(code), "U+") + "]"
	}
	if tok, found := t.Codepoints[key]; found {
		return tok
	}
	if IsCombining(r) {
		return string(r)
	}
	return string(r) + " "
}
