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
	"golang.org/x/net/html"

	"github.com/OtsoBear/MathJaxToLaTeX-sub000/internal/symbols"
)

// svgAdapter maps the glyph-layout shape onto the shared kind union. Every
// semantic node is a <g data-mml-node="..."> group; glyphs are positioned
// <use data-c="..."> drawing references under it.
type svgAdapter struct {
	syms *symbols.Table
}

func (svgAdapter) Kind(n *html.Node) Kind {
	if n.Type != html.ElementNode {
		return KindIgnore
	}
	if tag := attrVal(n, "data-mml-node"); tag != "" {
		if k, ok := kindNames[tag]; ok {
			return k
		}
		return KindUnknown
	}
	switch n.Data {
	case "g", "svg":
		// Positioning wrappers without a semantic tag are transparent.
		return KindUnknown
	}
	return KindIgnore
}

func (svgAdapter) Children(n *html.Node) []*html.Node {
	var kids []*html.Node
	for _, c := range elementChildren(n) {
		switch c.Data {
		case "g", "svg":
			kids = append(kids, c)
		}
	}
	return kids
}

func (a svgAdapter) TextOf(n *html.Node) string {
	var glyphs []glyph
	collectSVGGlyphs(n, 0, a.syms, &glyphs)
	return assemble(glyphs)
}

func (svgAdapter) Attr(n *html.Node, name string) string {
	return attrVal(n, name)
}

// SVGConverter converts the vector-graphics glyph-layout tree MathJax's SVG
// output produces.
type SVGConverter struct {
	syms *symbols.Table
}

// NewSVGConverter creates a new SVGConverter.
func NewSVGConverter() *SVGConverter {
	return &SVGConverter{syms: symbols.Default()}
}

func (c *SVGConverter) Accepts(root *html.Node) bool {
	if root == nil || root.Type != html.ElementNode {
		return false
	}
	if attrVal(root, "data-mml-node") != "" {
		return true
	}
	return findMMLGroup(root) != nil
}

func (c *SVGConverter) Convert(root *html.Node) (string, error) {
	start := root
	if attrVal(start, "data-mml-node") == "" {
		start = findMMLGroup(root)
	}
	if start == nil {
		return "", &NoMathError{}
	}
	w := &walkContext{adapter: svgAdapter{syms: c.syms}, syms: c.syms}
	return w.convertNode(start), nil
}

// findMMLGroup locates the outermost semantic group in an SVG subtree.
func findMMLGroup(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && attrVal(n, "data-mml-node") != "" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findMMLGroup(c); found != nil {
			return found
		}
	}
	return nil
}
