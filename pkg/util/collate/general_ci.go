// Copyright 2025 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collate

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// generalCICollator is the collator for utf8mb4_general_ci: comparison is
// case-insensitive and accent-insensitive, one sort weight per character.
type generalCICollator struct {
}

// Compare implements Collator interface.
func (*generalCICollator) Compare(a, b string) int {
	a = truncateTailingSpace(a)
	b = truncateTailingSpace(b)
	for len(a) > 0 && len(b) > 0 {
		ra, sizeA := utf8.DecodeRuneInString(a)
		rb, sizeB := utf8.DecodeRuneInString(b)
		wa, wb := ciWeight(ra), ciWeight(rb)
		if wa != wb {
			return sign(int(wa) - int(wb))
		}
		a = a[sizeA:]
		b = b[sizeB:]
	}
	return sign(len(a) - len(b))
}

// Key implements Collator interface.
func (*generalCICollator) Key(str string) []byte {
	str = truncateTailingSpace(str)
	buf := make([]byte, 0, len(str)*2)
	for _, r := range str {
		w := ciWeight(r)
		buf = append(buf, byte(w>>8), byte(w))
	}
	return buf
}

// ciWeight maps a rune to its case- and accent-folded sort weight.
// Characters beyond the BMP all share the maximum weight, matching the
// general_ci behavior of treating supplementary characters as equal.
func ciWeight(r rune) uint16 {
	if r > 0xFFFF {
		return 0xFFFD
	}
	if base, ok := foldRune(r); ok {
		r = base
	}
	return uint16(unicode.ToUpper(r))
}

// foldRune strips combining marks from the canonical decomposition of r,
// returning its base character.
func foldRune(r rune) (rune, bool) {
	if r < utf8.RuneSelf {
		return r, false
	}
	d := norm.NFD.String(string(r))
	for _, base := range d {
		if !unicode.Is(unicode.Mn, base) {
			return base, true
		}
	}
	return r, false
}
