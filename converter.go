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

import "golang.org/x/net/html"

// TreeConverter is the interface all tree-shape converters implement.
type TreeConverter interface {
	// Accepts reports whether this converter recognizes the given root by
	// structural probing. It MUST NOT mutate the node.
	Accepts(root *html.Node) bool

	// Convert walks the tree and produces a raw LaTeX fragment. The engine
	// applies post-processing; converters must not.
	Convert(root *html.Node) (string, error)
}
