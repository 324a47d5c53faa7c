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

import "github.com/charmbracelet/log"

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for advisory progress logging. The default
// discards everything; logging is never part of the conversion contract.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithPreferAssistive configures whether an assistive-MathML mirror
// reachable from the root is converted in place of the layout tree
// (default: true; the mirror carries explicit semantic roles).
func WithPreferAssistive(prefer bool) Option {
	return func(e *Engine) {
		e.preferAssistive = prefer
	}
}
