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
)

// Kind is the closed set of node types the walker understands. Each tree
// shape carries its own native vocabulary; the shape's adapter maps it onto
// this union so the node-kind state machine is written once.
type Kind int

const (
	// KindUnknown marks a node with no recognizable kind. The walker treats
	// it as a transparent container and folds its children.
	KindUnknown Kind = iota
	KindMath
	KindRow
	KindIdent
	KindNumber
	KindOperator
	KindText
	KindSqrt
	KindFrac
	KindSup
	KindSub
	KindUnderOver
	KindOver
	KindStyle
	// KindIgnore marks purely decorative nodes (radical surds, struts,
	// spacers) that contribute nothing to the output.
	KindIgnore
)

// kindNames maps MathML-vocabulary tags to kinds. The CHTML and MathML
// adapters share it; the SVG adapter reads the same vocabulary out of
// data-mml-node attributes.
var kindNames = map[string]Kind{
	"math":       KindMath,
	"mrow":       KindRow,
	"mi":         KindIdent,
	"mn":         KindNumber,
	"mo":         KindOperator,
	"mtext":      KindText,
	"msqrt":      KindSqrt,
	"mroot":      KindSqrt,
	"mfrac":      KindFrac,
	"msup":       KindSup,
	"msub":       KindSub,
	"msubsup":    KindUnderOver,
	"munderover": KindUnderOver,
	"munder":     KindSub,
	"mover":      KindOver,
	"mstyle":     KindStyle,
	"mpadded":    KindStyle,
	"mphantom":   KindIgnore,
	"mspace":     KindIgnore,
}

// nodeAdapter is the per-shape capability set the generic walker is
// parameterized over. Implementations never mutate the nodes they are given.
type nodeAdapter interface {
	// Kind classifies a node into the shared union.
	Kind(n *html.Node) Kind
	// Children returns the node's structural children in left-to-right
	// rendering order. Order is semantically load-bearing.
	Children(n *html.Node) []*html.Node
	// TextOf resolves a leaf-ish node's textual payload: direct text,
	// multi-glyph reassembly, or code-point lookup.
	TextOf(n *html.Node) string
	// Attr returns the named attribute, or "" when absent.
	Attr(n *html.Node, name string) string
}

// attrVal returns the value of the named attribute on n, ignoring namespace
// prefixes.
func attrVal(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// elementChildren returns the element-node children of n.
func elementChildren(n *html.Node) []*html.Node {
	var kids []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			kids = append(kids, c)
		}
	}
	return kids
}

// textContent returns the concatenated text of n's subtree, trimmed.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// findElement returns the first element with the given tag name in n's
// subtree (including n itself), in document order.
func findElement(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findAssistiveMML locates the accessibility mirror reachable from root: a
// mjx-assistive-mml wrapper holding a real math element. The mirror carries
// explicit semantic roles and is preferred over the layout shapes.
func findAssistiveMML(root *html.Node) *html.Node {
	wrapper := findElement(root, "mjx-assistive-mml")
	if wrapper == nil {
		return nil
	}
	return findElement(wrapper, "math")
}
