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
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/OtsoBear/MathJaxToLaTeX-sub000/internal/symbols"
)

// glyph is one positioned sub-glyph of a leaf whose characters were rendered
// as separate drawing references. Glyphs are reassembled in left-to-right
// order by horizontal coordinate.
type glyph struct {
	x     float64
	order int
	text  string
}

// assemble sorts glyphs by x ascending (document order breaks ties) and
// concatenates their resolved text.
func assemble(glyphs []glyph) string {
	sort.SliceStable(glyphs, func(i, j int) bool {
		if glyphs[i].x != glyphs[j].x {
			return glyphs[i].x < glyphs[j].x
		}
		return glyphs[i].order < glyphs[j].order
	})
	var b strings.Builder
	for _, g := range glyphs {
		b.WriteString(g.text)
	}
	return b.String()
}

// collectSVGGlyphs gathers the positioned <use data-c="..."> references and
// <text> runs under n. Horizontal position accumulates through nested
// translate transforms and x attributes.
func collectSVGGlyphs(n *html.Node, xOffset float64, syms *symbols.Table, glyphs *[]glyph) {
	if n.Type != html.ElementNode {
		return
	}
	x := xOffset + translateX(attrVal(n, "transform"))
	if xs := attrVal(n, "x"); xs != "" {
		if v, err := strconv.ParseFloat(xs, 64); err == nil {
			x += v
		}
	}

	switch n.Data {
	case "use":
		if code := attrVal(n, "data-c"); code != "" {
			*glyphs = append(*glyphs, glyph{x: x, order: len(*glyphs), text: syms.Resolve(code)})
		}
		return
	case "text":
		if t := textContent(n); t != "" {
			*glyphs = append(*glyphs, glyph{x: x, order: len(*glyphs), text: resolveLiteral(syms, t)})
		}
		return
	case "defs", "rect", "path":
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectSVGGlyphs(c, x, syms, glyphs)
	}
}

// translateX extracts the x component of a translate(...) transform.
// Malformed transforms contribute zero rather than failing.
func translateX(transform string) float64 {
	i := strings.Index(transform, "translate(")
	if i < 0 {
		return 0
	}
	rest := transform[i+len("translate("):]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return 0
	}
	args := strings.FieldsFunc(rest[:end], func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(args) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	if err != nil {
		return 0
	}
	return v
}

// collectCHTMLGlyphs gathers mjx-c glyph elements under n in document order.
// The styled-box shape encodes each character as a class-named code point
// (class="mjx-c1D465") and flows boxes left to right, so document order is
// rendering order.
func collectCHTMLGlyphs(n *html.Node, syms *symbols.Table, glyphs *[]glyph) {
	if n.Type != html.ElementNode {
		return
	}
	if n.Data == "mjx-c" {
		for _, cls := range strings.Fields(attrVal(n, "class")) {
			if code, ok := strings.CutPrefix(cls, "mjx-c"); ok && code != "" {
				*glyphs = append(*glyphs, glyph{order: len(*glyphs), text: syms.Resolve(code)})
				break
			}
		}
		return
	}
	if n.Data == "mjx-assistive-mml" {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectCHTMLGlyphs(c, syms, glyphs)
	}
}

// resolveLiteral maps direct glyph characters that have symbol-table
// equivalents, leaving everything else untouched.
func resolveLiteral(syms *symbols.Table, t string) string {
	if latex, ok := syms.Operators[t]; ok {
		return latex
	}
	return t
}
