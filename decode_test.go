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
	"unicode/utf8"
)

// encodeLatin1 renders s as single-byte Latin-1.
func encodeLatin1(t *testing.T, s string) []byte {
	t.Helper()
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xff {
			t.Fatalf("rune %#U does not fit in Latin-1", r)
		}
		out = append(out, byte(r))
	}
	return out
}

func TestDecodeToUTF8FastPath(t *testing.T) {
	in := "héllo ∫ math"
	if got := decodeToUTF8([]byte(in), ""); got != in {
		t.Errorf("decodeToUTF8 = %q, want unchanged %q", got, in)
	}
}

func TestDecodeToUTF8WithHint(t *testing.T) {
	in := encodeLatin1(t, "résumé")
	got := decodeToUTF8(in, "iso-8859-1")
	if got != "résumé" {
		t.Errorf("decodeToUTF8 = %q, want %q", got, "résumé")
	}
}

func TestDecodeToUTF8HintWinsOverValidUTF8(t *testing.T) {
	// "Ä" is valid UTF-8 (0xC3 0x84); an explicit hint still reinterprets
	// the bytes, so the result must not be the UTF-8 reading.
	in := []byte("Ä")
	got := decodeToUTF8(in, "iso-8859-1")
	if got == "Ä" {
		t.Errorf("hint ignored: decodeToUTF8 = %q, want Latin-1 reinterpretation", got)
	}
	if !strings.HasPrefix(got, "Ã") {
		t.Errorf("decodeToUTF8 = %q, want leading %q", got, "Ã")
	}
}

func TestDecodeToUTF8UnknownHintFallsThrough(t *testing.T) {
	in := "plain ascii page"
	if got := decodeToUTF8([]byte(in), "no-such-charset"); got != in {
		t.Errorf("decodeToUTF8 = %q, want unchanged %q", got, in)
	}
}

func TestDecodeToUTF8DetectsLatin1(t *testing.T) {
	text := "Les intégrales définies sont traitées en détail. " +
		"La méthode présentée ici résout les équations " +
		"différentielles élémentaires et générales. " +
		"Répété plusieurs fois pour donner au détecteur " +
		"suffisamment de matériel encodé."
	got := decodeToUTF8(encodeLatin1(t, text), "")
	if !utf8.ValidString(got) {
		t.Fatalf("decodeToUTF8 produced invalid UTF-8: %q", got)
	}
	if !strings.Contains(got, "é") {
		t.Errorf("accented characters lost in detection: %q", got)
	}
}
