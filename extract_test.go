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
	"testing"

	"golang.org/x/net/html"

	"github.com/OtsoBear/MathJaxToLaTeX-sub000/internal/symbols"
)

func TestTranslateX(t *testing.T) {
	tests := []struct {
		transform string
		want      float64
	}{
		{"translate(250, 0)", 250},
		{"translate(250,0)", 250},
		{"translate(-300)", -300},
		{"translate(33.5, -12)", 33.5},
		{"scale(2) translate(100, 0)", 100},
		{"scale(2)", 0},
		{"translate(", 0},
		{"translate(bogus)", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := translateX(tt.transform); got != tt.want {
			t.Errorf("translateX(%q) = %v, want %v", tt.transform, got, tt.want)
		}
	}
}

func TestAssembleOrdersByPosition(t *testing.T) {
	glyphs := []glyph{
		{x: 500, order: 0, text: "4"},
		{x: 0, order: 1, text: "1"},
		{x: 250, order: 2, text: "2"},
	}
	if got := assemble(glyphs); got != "124" {
		t.Errorf("assemble() = %q, want %q", got, "124")
	}
}

func TestAssembleTiesKeepDocumentOrder(t *testing.T) {
	glyphs := []glyph{
		{x: 0, order: 0, text: "a"},
		{x: 0, order: 1, text: "b"},
	}
	if got := assemble(glyphs); got != "ab" {
		t.Errorf("assemble() = %q, want %q", got, "ab")
	}
}

// mustParseFragment returns the first element named tag in the parsed input.
func mustParseFragment(t *testing.T, input, tag string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	n := findElement(doc, tag)
	if n == nil {
		t.Fatalf("element %q not found in %q", tag, input)
	}
	return n
}

func TestSVGTextOfReordersGlyphs(t *testing.T) {
	// Drawing references appear out of document order; x position wins.
	fixture := `<svg><g data-mml-node="mn">
		<use data-c="34" transform="translate(500,0)"></use>
		<use data-c="31" transform="translate(0,0)"></use>
	</g></svg>`
	n := mustParseFragment(t, fixture, "g")

	a := svgAdapter{syms: symbols.Default()}
	got := stripSpace(a.TextOf(n))
	if got != "14" {
		t.Errorf("TextOf() = %q, want %q", got, "14")
	}
}

func TestSVGTextOfAccumulatesNestedTransforms(t *testing.T) {
	fixture := `<svg><g data-mml-node="mn" transform="translate(1000,0)">
		<g transform="translate(500,0)"><use data-c="32"></use></g>
		<use data-c="31"></use>
	</g></svg>`
	n := mustParseFragment(t, fixture, "g")

	a := svgAdapter{syms: symbols.Default()}
	got := stripSpace(a.TextOf(n))
	if got != "12" {
		t.Errorf("TextOf() = %q, want %q", got, "12")
	}
}

func TestSVGTextOfSkipsDecorations(t *testing.T) {
	fixture := `<svg><g data-mml-node="msqrt">
		<rect width="100" height="10"></rect>
		<path d="M0 0"></path>
		<use data-c="1D465"></use>
	</g></svg>`
	n := mustParseFragment(t, fixture, "g")

	a := svgAdapter{syms: symbols.Default()}
	if got := a.TextOf(n); got != "x" {
		t.Errorf("TextOf() = %q, want %q", got, "x")
	}
}

func TestSVGTextOfResolvesTextRuns(t *testing.T) {
	fixture := `<svg><g data-mml-node="mo"><text x="0">=</text></g></svg>`
	n := mustParseFragment(t, fixture, "g")

	a := svgAdapter{syms: symbols.Default()}
	if got := a.TextOf(n); got != " = " {
		t.Errorf("TextOf() = %q, want %q", got, " = ")
	}
}

func TestCHTMLGlyphCollection(t *testing.T) {
	fixture := `<mjx-mn class="mjx-n">
		<mjx-c class="mjx-c31"></mjx-c>
		<mjx-c class="mjx-c34"></mjx-c>
	</mjx-mn>`
	n := mustParseFragment(t, fixture, "mjx-mn")

	var glyphs []glyph
	collectCHTMLGlyphs(n, symbols.Default(), &glyphs)
	if got := stripSpace(assemble(glyphs)); got != "14" {
		t.Errorf("collectCHTMLGlyphs = %q, want %q", got, "14")
	}
}

func TestCHTMLGlyphCollectionSkipsMirror(t *testing.T) {
	fixture := `<mjx-container>
		<mjx-math><mjx-mi><mjx-c class="mjx-c1D465"></mjx-c></mjx-mi></mjx-math>
		<mjx-assistive-mml><math><mi>y</mi></math></mjx-assistive-mml>
	</mjx-container>`
	n := mustParseFragment(t, fixture, "mjx-container")

	var glyphs []glyph
	collectCHTMLGlyphs(n, symbols.Default(), &glyphs)
	if got := assemble(glyphs); got != "x" {
		t.Errorf("collectCHTMLGlyphs = %q, want %q", got, "x")
	}
}
