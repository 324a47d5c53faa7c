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

// Package mjxlatex converts rendered mathematical notation back into LaTeX.
// It understands the three tree shapes MathJax leaves in a page: the
// CommonHTML styled-box tree, the SVG glyph-layout tree, and the
// assistive-MathML accessibility mirror.
package mjxlatex

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html"
)

// SentinelNoMath is returned by Convert when no recognizable math root is
// found, so integration layers can show a user-visible fallback without
// error plumbing.
const SentinelNoMath = "no valid math found"

const (
	// PriorityPreferred is for the semantically explicit accessibility
	// shape, tried first.
	PriorityPreferred = 0.0
	// PriorityLayout is for the two layout shapes.
	PriorityLayout = 10.0
)

type registeredConverter struct {
	converter TreeConverter
	priority  float64
	name      string
}

// Engine is the tree-to-LaTeX conversion engine. It routes a root node to
// the matching tree converter and applies output post-processing.
type Engine struct {
	converters      []registeredConverter
	preferAssistive bool
	logger          *log.Logger
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{preferAssistive: true}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	e.enableBuiltins()
	return e
}

// RegisterConverter adds a custom converter with the given priority.
// Lower priority values are tried first.
func (e *Engine) RegisterConverter(name string, c TreeConverter, priority float64) {
	e.converters = append(e.converters, registeredConverter{
		converter: c,
		priority:  priority,
		name:      name,
	})
	sort.SliceStable(e.converters, func(i, j int) bool {
		return e.converters[i].priority < e.converters[j].priority
	})
}

// Convert classifies root's tree shape by structural probing and converts it
// to a LaTeX string. When an assistive-MathML mirror is reachable from root
// it is preferred over the layout shapes. Conversion is a pure read-only
// fold over the tree; the only failure surfaced to the caller is at this
// outermost boundary.
func (e *Engine) Convert(root *html.Node) (latex string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("conversion panicked", "cause", r)
			latex = fmt.Sprintf("conversion failed: %v", r)
			err = &ConversionError{Attempts: []FailedAttempt{{Converter: "walker", Err: fmt.Errorf("panic: %v", r)}}}
		}
	}()

	if root == nil {
		return SentinelNoMath, &NoMathError{}
	}

	if e.preferAssistive {
		if mirror := findAssistiveMML(root); mirror != nil {
			root = mirror
		}
	}

	var attempts []FailedAttempt
	for _, rc := range e.converters {
		if !rc.converter.Accepts(root) {
			continue
		}
		e.logger.Debug("converting tree", "shape", rc.name)
		out, cerr := rc.converter.Convert(root)
		if cerr != nil {
			attempts = append(attempts, FailedAttempt{Converter: rc.name, Err: cerr})
			continue
		}
		return fixParentheses(out), nil
	}

	if len(attempts) > 0 {
		return "", &ConversionError{Attempts: attempts}
	}
	return SentinelNoMath, &NoMathError{}
}

// ConvertString parses an HTML/MathML fragment, locates the first math root
// in it, and converts it.
func (e *Engine) ConvertString(s string) (string, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return "", fmt.Errorf("parse input: %w", err)
	}
	root := findMathRoot(doc)
	if root == nil {
		return SentinelNoMath, &NoMathError{}
	}
	return e.Convert(root)
}

// ConvertReader reads a rendered page or fragment, decodes it to UTF-8
// (detecting legacy charsets), and converts the first math root found.
func (e *Engine) ConvertReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return e.ConvertString(decodeToUTF8(data, ""))
}

// ConvertFile converts the first math root found in a saved page.
func (e *Engine) ConvertFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return e.ConvertReader(f)
}

// enableBuiltins registers the built-in shape converters.
func (e *Engine) enableBuiltins() {
	e.RegisterConverter("mathml", NewMathMLConverter(), PriorityPreferred)
	e.RegisterConverter("chtml", NewCHTMLConverter(), PriorityLayout)
	e.RegisterConverter("svg", NewSVGConverter(), PriorityLayout)
}

// findMathRoot locates the first convertible math root in a parsed document:
// a MathJax container, a standalone math element, or a semantic SVG group.
func findMathRoot(doc *html.Node) *html.Node {
	if n := findElement(doc, "mjx-container"); n != nil {
		return n
	}
	if n := findElement(doc, "math"); n != nil {
		return n
	}
	return findMMLGroup(doc)
}
