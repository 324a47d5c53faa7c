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

import "testing"

func TestFixParentheses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no parens", `\frac{1}{2}`, `\frac{1}{2}`},
		{"bare pair", "(x)", `\left(x\right)`},
		{"nested bare pairs", "((x))", `\left(\left(x\right)\right)`},
		{
			"already sized pair untouched",
			`\left(x\right)`,
			`\left(x\right)`,
		},
		{
			"mixed bare and sized",
			`\left( a ) ( b \right)`,
			`\left( a \right) \left( b \right)`,
		},
		{
			"function argument",
			`\sin (x) + f(y)`,
			`\sin \left(x\right) + f\left(y\right)`,
		},
		{"unbalanced open", "(x", `\left(x`},
		{"unbalanced close", "x)", `x\right)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fixParentheses(tt.input)
			if got != tt.want {
				t.Errorf("fixParentheses(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFixParenthesesIdempotent(t *testing.T) {
	seeds := []string{
		"(x)",
		`\left(x\right)`,
		`\left( a ) ( b \right)`,
		`2\pi\int_{0}^{1}\mid f(x)\mid\sqrt{1+f'(x)^{2}}dx`,
		`\frac{(a+b)}{(c-d)}`,
	}
	for _, s := range seeds {
		once := fixParentheses(s)
		twice := fixParentheses(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\n once:  %q\n twice: %q", s, once, twice)
		}
	}
}
