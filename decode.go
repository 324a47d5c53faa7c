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
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// decodeToUTF8 decodes a saved page to UTF-8. An explicit charset hint wins;
// otherwise valid UTF-8 passes through and anything else goes through
// charset detection. Decoding never fails: the worst case is the raw bytes
// reinterpreted as UTF-8.
func decodeToUTF8(data []byte, charsetHint string) string {
	if charsetHint != "" {
		if enc := lookupEncoding(charsetHint); enc != nil {
			if decoded, err := enc.NewDecoder().Bytes(data); err == nil {
				return string(decoded)
			}
		}
	}

	if utf8.Valid(data) {
		s := string(data)
		if !strings.ContainsRune(s, '�') {
			return s
		}
	}

	detector := chardet.NewTextDetector()
	results, err := detector.DetectAll(data)
	if err == nil {
		for _, r := range results {
			enc := lookupEncoding(r.Charset)
			if enc == nil {
				continue
			}
			decoded, derr := enc.NewDecoder().Bytes(data)
			if derr != nil {
				continue
			}
			if s := string(decoded); !strings.ContainsRune(s, '�') {
				return s
			}
		}
	}
	return string(data)
}

// lookupEncoding resolves an IANA/HTML charset name to an encoding, or nil.
func lookupEncoding(name string) encoding.Encoding {
	enc, err := htmlindex.Get(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return nil
	}
	return enc
}
