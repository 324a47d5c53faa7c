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

// mmlAdapter maps the accessibility-mirror shape (literal MathML tags with
// direct text payloads and optional data-semantic-* hints) onto the shared
// kind union.
type mmlAdapter struct {
	syms *symbols.Table
}

func (mmlAdapter) Kind(n *html.Node) Kind {
	if n.Type != html.ElementNode {
		return KindIgnore
	}
	switch n.Data {
	case "semantics":
		return KindUnknown
	case "annotation", "annotation-xml":
		return KindIgnore
	}
	if k, ok := kindNames[n.Data]; ok {
		return k
	}
	return KindUnknown
}

func (mmlAdapter) Children(n *html.Node) []*html.Node {
	return elementChildren(n)
}

func (a mmlAdapter) TextOf(n *html.Node) string {
	t := textContent(n)
	trimmed := strings.TrimSpace(t)
	if a.syms.IsFunction(trimmed) {
		return symbols.FunctionMacro(trimmed)
	}
	// Single-glyph payloads go through the code-point table so Greek
	// letters, spaced operators, and invisible marks resolve the same way
	// they do in the layout shapes.
	if runes := []rune(trimmed); len(runes) == 1 {
		if tok, ok := a.syms.ResolveRune(runes[0]); ok {
			return tok
		}
	}
	return t
}

func (mmlAdapter) Attr(n *html.Node, name string) string {
	return attrVal(n, name)
}

// MathMLConverter converts the accessibility-oriented structured-math tree.
// It is the preferred shape: semantic role hints make equality, absolute
// value, and overline detection reliable.
type MathMLConverter struct {
	syms *symbols.Table
}

// NewMathMLConverter creates a new MathMLConverter.
func NewMathMLConverter() *MathMLConverter {
	return &MathMLConverter{syms: symbols.Default()}
}

func (c *MathMLConverter) Accepts(root *html.Node) bool {
	if root == nil || root.Type != html.ElementNode {
		return false
	}
	if _, ok := kindNames[root.Data]; ok {
		return true
	}
	return root.Data == "semantics"
}

func (c *MathMLConverter) Convert(root *html.Node) (string, error) {
	if !c.Accepts(root) {
		return "", &NoMathError{}
	}
	w := &walkContext{adapter: mmlAdapter{syms: c.syms}, syms: c.syms}
	return w.convertNode(root), nil
}
