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

package symbols

import "testing"

func TestNormalizeCodepoint(t *testing.T) {
	tests := []struct {
		code    string
		wantKey string
		wantR   rune
		wantOK  bool
	}{
		{"1D465", "U+1D465", 0x1d465, true},
		{"1d465", "U+1D465", 0x1d465, true},
		{"U+1D465", "U+1D465", 0x1d465, true},
		{"u+03c0", "U+03C0", 0x03c0, true},
		{"0x41", "U+0041", 'A', true},
		{"3D", "U+003D", '=', true},
		{" 28 ", "U+0028", '(', true},
		{"", "", 0, false},
		{"zz", "", 0, false},
		{"110000", "", 0, false},
		{"-1", "", 0, false},
	}
	for _, tt := range tests {
		key, r, ok := NormalizeCodepoint(tt.code)
		if key != tt.wantKey || r != tt.wantR || ok != tt.wantOK {
			t.Errorf("NormalizeCodepoint(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.code, key, r, ok, tt.wantKey, tt.wantR, tt.wantOK)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		// Table hits.
		{"1D465", "x"},                // math-italic x
		{"1D434", "A"},                // math-italic A
		{"210E", "h"},                 // Planck glyph fills the italic-h hole
		{"03C0", "\\pi "},             // Greek
		{"1D70B", "\\pi "},            // math-italic Greek
		{"222B", "\\int"},             // integral
		{"2223", "\\mid "},            // divides
		{"007C", "|"},                 // literal bar stays literal
		{"3D", " = "},                 // operator
		{"2061", ""},                  // invisible function application
		{"2062", ""},                  // invisible times
		{"20D7", string(VectorArrow)}, // combining arrow keeps its rune
		// Unknown code points fall back to the literal character with a
		// trailing space, combining marks without one.
		{"0032", "2 "},
		{"00E5", "å "},
		{"0301", "́"},
		// Unparsable codes yield a bracketed placeholder, whatever the
		// prefix casing.
		{"ZZZ", "[U+ZZZ]"},
		{"U+ZZZ", "[U+ZZZ]"},
		{"u+zzz", "[U+ZZZ]"},
	}
	for _, tt := range tests {
		if got := Default().Resolve(tt.code); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestResolveRune(t *testing.T) {
	if got, ok := Default().ResolveRune('π'); !ok || got != "\\pi " {
		t.Errorf("ResolveRune('π') = (%q, %v), want (%q, true)", got, ok, "\\pi ")
	}
	if got, ok := Default().ResolveRune('='); !ok || got != " = " {
		t.Errorf("ResolveRune('=') = (%q, %v), want (%q, true)", got, ok, " = ")
	}
	if _, ok := Default().ResolveRune('q'); ok {
		t.Error("ResolveRune('q') unexpectedly found a mapping")
	}
}

func TestIsFunction(t *testing.T) {
	for _, name := range []string{"sin", "arctan", "ln", "SIN", "Lim"} {
		if !Default().IsFunction(name) {
			t.Errorf("IsFunction(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "s", "si", "sine", "foo"} {
		if Default().IsFunction(name) {
			t.Errorf("IsFunction(%q) = true, want false", name)
		}
	}
}

func TestIsFunctionPrefix(t *testing.T) {
	for _, s := range []string{"s", "si", "sin", "arc", "co", "l"} {
		if !Default().IsFunctionPrefix(s) {
			t.Errorf("IsFunctionPrefix(%q) = false, want true", s)
		}
	}
	// "sin" above is a proper prefix of "sinh"; "tanh" is complete and
	// extends nothing.
	for _, s := range []string{"x", "siq", "tanh", "q"} {
		if Default().IsFunctionPrefix(s) {
			t.Errorf("IsFunctionPrefix(%q) = true, want false", s)
		}
	}
}

func TestFunctionMacro(t *testing.T) {
	if got := FunctionMacro("Sin"); got != "\\sin " {
		t.Errorf("FunctionMacro(%q) = %q, want %q", "Sin", got, "\\sin ")
	}
}

func TestIsCombining(t *testing.T) {
	for _, r := range []rune{0x0300, 0x0305, 0x036f, 0x20d0, 0x20d7, 0x20ff} {
		if !IsCombining(r) {
			t.Errorf("IsCombining(%#U) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', 0x02ff, 0x0370, 0x00af, 0x203e} {
		if IsCombining(r) {
			t.Errorf("IsCombining(%#U) = true, want false", r)
		}
	}
}
