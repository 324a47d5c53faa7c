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
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"golang.org/x/net/html"
)

// mathSlot marks where a converted expression goes back into the rendered
// page. The token survives markdown conversion unescaped, unlike raw LaTeX.
// The trailing delimiter keeps tokens prefix-free so substitution order
// cannot corrupt higher-numbered slots.
const mathSlot = "mjxlatex-eq-%d-end"

// ConvertPage converts a whole rendered page: every MathJax container (and
// standalone math element) becomes inline $...$ LaTeX and the surrounding
// prose becomes Markdown.
func (e *Engine) ConvertPage(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read page: %w", err)
	}

	htmlStr := removeScriptAndStyle(decodeToUTF8(data, ""))
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	roots := collectMathRoots(doc)
	latexByToken := make(map[string]string, len(roots))
	for i, root := range roots {
		latex, cerr := e.Convert(root)
		if cerr != nil {
			e.logger.Warn("skipping math element", "index", i, "err", cerr)
			continue
		}
		token := fmt.Sprintf(mathSlot, i)
		latexByToken[token] = latex
		replaceWithText(root, token)
	}

	var rendered strings.Builder
	if err := html.Render(&rendered, doc); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}

	md, err := pageToMarkdown(rendered.String())
	if err != nil {
		return "", fmt.Errorf("convert page to markdown: %w", err)
	}

	for token, latex := range latexByToken {
		md = strings.ReplaceAll(md, token, "$"+latex+"$")
	}
	return md, nil
}

// pageToMarkdown converts prose HTML to markdown.
func pageToMarkdown(htmlStr string) (string, error) {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle("atx"),
			),
		),
	)
	return conv.ConvertString(htmlStr)
}

// collectMathRoots gathers every top-level math rendering in document order:
// MathJax containers plus math elements not living inside one.
func collectMathRoots(doc *html.Node) []*html.Node {
	var roots []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "mjx-container":
				roots = append(roots, n)
				return
			case "math":
				roots = append(roots, n)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return roots
}

// replaceWithText swaps a node for a plain text node in its parent.
func replaceWithText(n *html.Node, text string) {
	if n.Parent == nil {
		return
	}
	repl := &html.Node{Type: html.TextNode, Data: text}
	n.Parent.InsertBefore(repl, n)
	n.Parent.RemoveChild(n)
}

var (
	reScript = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	reStyle  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
)

// removeScriptAndStyle removes <script> and <style> tags and their content.
func removeScriptAndStyle(htmlStr string) string {
	htmlStr = reScript.ReplaceAllString(htmlStr, "")
	return reStyle.ReplaceAllString(htmlStr, "")
}
