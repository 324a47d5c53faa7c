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

// chtmlDecorative lists styled-box elements that are purely visual: glyph
// payloads, radical surds, struts and spacers. They are never structural
// children.
var chtmlDecorative = map[string]bool{
	"mjx-c":             true,
	"mjx-surd":          true,
	"mjx-dstrut":        true,
	"mjx-strut":         true,
	"mjx-spacer":        true,
	"mjx-line":          true,
	"mjx-assistive-mml": true,
}

// chtmlAdapter maps the styled-box shape onto the shared kind union. Element
// names carry the MathML vocabulary behind an "mjx-" prefix; glyph payloads
// live in mjx-c class names.
type chtmlAdapter struct {
	syms *symbols.Table
}

func (chtmlAdapter) Kind(n *html.Node) Kind {
	if n.Type != html.ElementNode {
		return KindIgnore
	}
	if chtmlDecorative[n.Data] {
		return KindIgnore
	}
	name, ok := strings.CutPrefix(n.Data, "mjx-")
	if !ok {
		return KindUnknown
	}
	if k, found := kindNames[name]; found {
		return k
	}
	// Layout wrappers (mjx-row, mjx-box, mjx-num, ...) are transparent.
	return KindUnknown
}

func (a chtmlAdapter) Children(n *html.Node) []*html.Node {
	switch n.Data {
	case "mjx-mfrac":
		// The styled-box fraction nests numerator and denominator inside a
		// stack of layout wrappers; dig them out so the walker sees exactly
		// two children.
		num := findElement(n, "mjx-num")
		den := findElement(n, "mjx-den")
		if num != nil && den != nil {
			kids := a.wrapperContent(num, nil)
			return a.wrapperContent(den, kids)
		}
	case "mjx-mover", "mjx-munder", "mjx-munderover":
		if kids, ok := a.scriptChildren(n); ok {
			return kids
		}
	}

	var kids []*html.Node
	for _, c := range elementChildren(n) {
		if chtmlDecorative[c.Data] {
			continue
		}
		kids = append(kids, c)
	}
	return kids
}

// wrapperContent appends the content of a layout wrapper to kids: the single
// structural child when there is one, the wrapper itself otherwise.
func (chtmlAdapter) wrapperContent(wrapper *html.Node, kids []*html.Node) []*html.Node {
	inner := elementChildren(wrapper)
	if len(inner) == 1 && !chtmlDecorative[inner[0].Data] {
		return append(kids, inner[0])
	}
	return append(kids, wrapper)
}

// scriptChildren normalizes under/over constructs into semantic order
// [base, under, over] regardless of the visual order the boxes render in.
func (a chtmlAdapter) scriptChildren(n *html.Node) ([]*html.Node, bool) {
	base := findElement(n, "mjx-base")
	if base == nil {
		return nil, false
	}
	kids := a.wrapperContent(base, nil)
	if under := findElement(n, "mjx-under"); under != nil {
		kids = a.wrapperContent(under, kids)
	}
	if over := findElement(n, "mjx-over"); over != nil {
		kids = a.wrapperContent(over, kids)
	}
	if len(kids) < 2 {
		return nil, false
	}
	return kids, true
}

func (a chtmlAdapter) TextOf(n *html.Node) string {
	var glyphs []glyph
	collectCHTMLGlyphs(n, a.syms, &glyphs)
	if len(glyphs) > 0 {
		return assemble(glyphs)
	}
	return textContent(n)
}

func (chtmlAdapter) Attr(n *html.Node, name string) string {
	return attrVal(n, name)
}

// CHTMLConverter converts the styled-box tree MathJax's CommonHTML output
// produces.
type CHTMLConverter struct {
	syms *symbols.Table
}

// NewCHTMLConverter creates a new CHTMLConverter.
func NewCHTMLConverter() *CHTMLConverter {
	return &CHTMLConverter{syms: symbols.Default()}
}

func (c *CHTMLConverter) Accepts(root *html.Node) bool {
	if root == nil || root.Type != html.ElementNode {
		return false
	}
	if findElement(root, "mjx-math") != nil {
		return true
	}
	return strings.HasPrefix(root.Data, "mjx-m")
}

func (c *CHTMLConverter) Convert(root *html.Node) (string, error) {
	start := root
	if m := findElement(root, "mjx-math"); m != nil {
		start = m
	}
	w := &walkContext{adapter: chtmlAdapter{syms: c.syms}, syms: c.syms}
	return w.convertNode(start), nil
}
