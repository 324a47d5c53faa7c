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
	"strings"

	"golang.org/x/net/html"

	"github.com/OtsoBear/MathJaxToLaTeX-sub000/internal/symbols"
)

// walkContext carries everything one conversion call needs: the shape
// adapter and the symbol tables it consults at each leaf. A fresh context is
// created per top-level call, so the walker holds no shared mutable state.
type walkContext struct {
	adapter nodeAdapter
	syms    *symbols.Table
}

// convertNode is the recursive node-type dispatcher. It produces a LaTeX
// fragment per node and never mutates its input. Nodes it cannot classify
// are treated as transparent containers; malformed structural nodes degrade
// to child folding rather than failing.
func (w *walkContext) convertNode(n *html.Node) string {
	if n == nil {
		return ""
	}
	switch w.adapter.Kind(n) {
	case KindIgnore:
		return ""
	case KindRow:
		return w.convertRow(n)
	case KindIdent:
		return w.resolveIdent(n)
	case KindNumber:
		return w.adapter.TextOf(n)
	case KindOperator:
		return w.convertOperator(n)
	case KindText:
		return w.convertText(n)
	case KindSqrt:
		return w.convertSqrt(n)
	case KindFrac:
		return w.convertFrac(n)
	case KindSup:
		return w.convertSup(n)
	case KindSub:
		return w.convertSub(n)
	case KindUnderOver:
		return w.convertUnderOver(n)
	case KindOver:
		return w.convertOver(n)
	default:
		// KindMath, KindStyle, KindUnknown: fold children left to right.
		return w.fold(w.adapter.Children(n))
	}
}

// fold concatenates the conversions of a sibling slice in rendering order.
// Sibling-aware rules live here: multi-glyph function-name reassembly and
// the absolute-value bar pairing both need to see neighbors.
func (w *walkContext) fold(kids []*html.Node) string {
	barTotal := 0
	for _, k := range kids {
		if w.isBar(k) {
			barTotal++
		}
	}

	var b strings.Builder
	barSeen := 0
	for i := 0; i < len(kids); i++ {
		k := kids[i]
		if w.isBar(k) {
			barSeen++
			switch {
			case barTotal == 2 && barSeen == 1:
				b.WriteString("\\left|")
			case barTotal == 2 && barSeen == 2:
				b.WriteString("\\right|")
			default:
				// Ambiguous bar count; leave the bar literal.
				b.WriteString("|")
			}
			continue
		}
		if w.adapter.Kind(k) == KindIdent {
			out, consumed := w.identWithLookahead(kids, i)
			b.WriteString(out)
			i += consumed
			continue
		}
		b.WriteString(w.convertNode(k))
	}
	return b.String()
}

// isBar reports whether k is a literal vertical-bar operator. The divides
// glyph U+2223 resolves through the symbol table to \mid instead and never
// takes part in pairing.
func (w *walkContext) isBar(k *html.Node) bool {
	if w.adapter.Kind(k) != KindOperator {
		return false
	}
	return strings.TrimSpace(w.adapter.TextOf(k)) == "|"
}

// identWithLookahead resolves the identifier at kids[i]. A single glyph that
// prefixes a standard function name triggers a lookahead over following
// identifier siblings; as soon as the accumulated string names a complete
// function, the macro is emitted once and the consumed siblings skipped.
// Returns the fragment and how many extra siblings were consumed.
func (w *walkContext) identWithLookahead(kids []*html.Node, i int) (string, int) {
	text := w.resolveIdent(kids[i])
	if strings.HasPrefix(text, "\\") {
		return text, 0
	}
	if len([]rune(text)) != 1 || !w.syms.IsFunctionPrefix(text) {
		return text, 0
	}
	acc := text
	for j := i + 1; j < len(kids); j++ {
		if w.adapter.Kind(kids[j]) != KindIdent {
			break
		}
		cand := acc + strings.TrimSpace(w.adapter.TextOf(kids[j]))
		if w.syms.IsFunction(cand) {
			return symbols.FunctionMacro(cand), j - i
		}
		if !w.syms.IsFunctionPrefix(cand) {
			break
		}
		acc = cand
	}
	return text, 0
}

// resolveIdent converts an identifier leaf. Standard function names emit as
// backslash macros; everything else passes through unchanged.
func (w *walkContext) resolveIdent(n *html.Node) string {
	text := w.adapter.TextOf(n)
	if trimmed := strings.TrimSpace(text); w.syms.IsFunction(trimmed) {
		return symbols.FunctionMacro(trimmed)
	}
	return text
}

// convertRow handles mrow nodes: equality splitting, implicit function
// application, and the default left-to-right fold.
func (w *walkContext) convertRow(n *html.Node) string {
	kids := w.adapter.Children(n)

	if w.adapter.Attr(n, "data-semantic-role") == "equality" {
		if out, ok := w.convertEquality(kids); ok {
			return out
		}
	}
	if out, ok := w.convertFunctionApplication(n, kids); ok {
		return out
	}
	return w.fold(kids)
}

// convertEquality splits a row around its unique top-level "=" operator and
// joins the two slices with a bare equals sign.
func (w *walkContext) convertEquality(kids []*html.Node) (string, bool) {
	idx, count := -1, 0
	for i, k := range kids {
		if w.adapter.Kind(k) == KindOperator && strings.TrimSpace(w.adapter.TextOf(k)) == "=" {
			idx = i
			count++
		}
	}
	if count != 1 {
		return "", false
	}
	return w.fold(kids[:idx]) + " = " + w.fold(kids[idx+1:]), true
}

// convertFunctionApplication detects rows of the form <func><apply?><arg...>
// and emits the function macro followed by its argument. Parentheses already
// present in the source tree are reused; otherwise the whole argument is
// wrapped in synthesized ones.
func (w *walkContext) convertFunctionApplication(n *html.Node, kids []*html.Node) (string, bool) {
	if len(kids) < 2 {
		return "", false
	}
	role := w.adapter.Attr(n, "data-semantic-role")
	typ := w.adapter.Attr(n, "data-semantic-type")
	tagged := role == "prefix function" || typ == "function"

	if !tagged && w.adapter.Kind(kids[0]) != KindIdent {
		return "", false
	}
	name := w.convertNode(kids[0])
	bare := strings.TrimSpace(strings.TrimPrefix(name, "\\"))
	if !strings.HasPrefix(name, "\\") || !w.syms.IsFunction(bare) {
		return "", false
	}

	rest := kids[1:]
	// Skip the invisible function-application operator when present.
	if len(rest) > 0 && w.adapter.Kind(rest[0]) == KindOperator && w.convertOperator(rest[0]) == "" {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return name, true
	}
	arg := w.fold(rest)
	trimmed := strings.TrimSpace(arg)
	if !strings.HasPrefix(trimmed, "(") || !strings.HasSuffix(trimmed, ")") {
		arg = "(" + arg + ")"
	}
	return name + arg, true
}

// convertOperator resolves an operator glyph through the operator table.
// Invisible operators and combining marks contribute nothing; unknown glyphs
// pass through as already-resolved text.
func (w *walkContext) convertOperator(n *html.Node) string {
	text := w.adapter.TextOf(n)
	glyph := strings.TrimSpace(text)
	if glyph == "" {
		return ""
	}
	if isCombiningOnly(glyph) {
		// Rendered structurally by the enclosing mover, not inline.
		return ""
	}
	if latex, ok := w.syms.Operators[glyph]; ok {
		return latex
	}
	return text
}

func isCombiningOnly(s string) bool {
	for _, r := range s {
		if !symbols.IsCombining(r) && r != symbols.MacronMark && r != symbols.OverlineGlyph {
			return false
		}
	}
	return s != ""
}

// convertText emits literal text, with pi specially mapped.
func (w *walkContext) convertText(n *html.Node) string {
	t := w.adapter.TextOf(n)
	return strings.ReplaceAll(t, "π", "\\pi ")
}

// contentChildren filters out decorative children (struts, spacers, the
// radical-symbol glyph of a root).
func (w *walkContext) contentChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for _, k := range w.adapter.Children(n) {
		if w.adapter.Kind(k) == KindIgnore {
			continue
		}
		if w.adapter.Kind(k) == KindOperator {
			t := strings.TrimSpace(w.adapter.TextOf(k))
			if t == "√" || t == "\\sqrt" {
				continue
			}
		}
		out = append(out, k)
	}
	return out
}

func (w *walkContext) convertSqrt(n *html.Node) string {
	kids := w.contentChildren(n)
	if len(kids) == 1 {
		return "\\sqrt{" + w.convertNode(kids[0]) + "}"
	}
	// Multiple children form an implied row. Unclassified wrappers fold to
	// their content and decorative radical-glyph wrappers fold to nothing.
	return "\\sqrt{" + w.fold(kids) + "}"
}

func (w *walkContext) convertFrac(n *html.Node) string {
	kids := w.contentChildren(n)
	if len(kids) != 2 {
		return w.fold(w.adapter.Children(n))
	}
	return "\\frac{" + w.convertNode(kids[0]) + "}{" + w.convertNode(kids[1]) + "}"
}

func (w *walkContext) convertSup(n *html.Node) string {
	kids := w.contentChildren(n)
	if len(kids) != 2 {
		return w.fold(w.adapter.Children(n))
	}
	base, exp := kids[0], kids[1]

	var baseOut string
	if inner, ok := w.parenthesizedRow(base); ok {
		// Strip the source parens and re-wrap bare so the post-processor
		// promotes a single \left( rather than a nested pair.
		baseOut = "(" + inner + ")"
	} else {
		baseOut = w.convertNode(base)
		// A compound base needs disambiguating grouping unless it already
		// starts or ends on a fence.
		trimmedBase := strings.TrimSpace(baseOut)
		if strings.Contains(trimmedBase, "(") && strings.Contains(trimmedBase, ")") &&
			!strings.HasPrefix(trimmedBase, "(") && !strings.HasSuffix(trimmedBase, ")") {
			baseOut = "(" + baseOut + ")"
		}
	}

	expOut := w.convertNode(exp)
	if expOut == "2" {
		return baseOut + "^2"
	}
	return baseOut + "^{" + expOut + "}"
}

// parenthesizedRow reports whether base is a row whose first and last
// children are literal paren operators, returning the folded inner content.
func (w *walkContext) parenthesizedRow(base *html.Node) (string, bool) {
	if w.adapter.Kind(base) != KindRow {
		return "", false
	}
	kids := w.adapter.Children(base)
	if len(kids) < 2 {
		return "", false
	}
	first, last := kids[0], kids[len(kids)-1]
	if w.adapter.Kind(first) != KindOperator || w.adapter.Kind(last) != KindOperator {
		return "", false
	}
	if strings.TrimSpace(w.adapter.TextOf(first)) != "(" || strings.TrimSpace(w.adapter.TextOf(last)) != ")" {
		return "", false
	}
	return w.fold(kids[1 : len(kids)-1]), true
}

func (w *walkContext) convertSub(n *html.Node) string {
	kids := w.contentChildren(n)
	if len(kids) != 2 {
		return w.fold(w.adapter.Children(n))
	}
	return w.convertNode(kids[0]) + "_{" + w.convertNode(kids[1]) + "}"
}

func (w *walkContext) convertUnderOver(n *html.Node) string {
	kids := w.contentChildren(n)
	if len(kids) != 3 {
		return w.fold(w.adapter.Children(n))
	}
	op := w.convertNode(kids[0])
	under := w.convertNode(kids[1])
	over := w.convertNode(kids[2])
	if strings.Contains(op, "\\int") {
		return "\\int_{" + under + "}^{" + over + "}"
	}
	return op + "_{" + under + "}^{" + over + "}"
}

func (w *walkContext) convertOver(n *html.Node) string {
	kids := w.contentChildren(n)
	if len(kids) != 2 {
		return w.fold(w.adapter.Children(n))
	}
	base, over := kids[0], kids[1]
	baseOut := w.convertNode(base)

	mark := w.adapter.TextOf(over)
	if strings.ContainsRune(mark, symbols.VectorArrow) {
		return "\\overrightarrow{" + baseOut + "}"
	}
	if strings.ContainsAny(mark, overlineMarks) || w.adapter.Attr(n, "data-semantic-role") == "overscore" {
		return "\\overline{" + baseOut + "}"
	}
	overOut := w.convertNode(over)
	if strings.TrimSpace(overOut) == "" {
		return baseOut
	}
	return baseOut + "^{" + overOut + "}"
}

// overlineMarks are the glyphs an mover overscript may carry when it means
// an overline: combining overline, macron, overline, horizontal bar, low
// line.
const overlineMarks = "̅¯‾―_"
