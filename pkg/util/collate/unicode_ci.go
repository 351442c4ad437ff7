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
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// unicodeCICollator is the collator for utf8mb4_unicode_ci. Unlike
// general_ci it normalizes the whole string first, so compatibility
// decompositions (ligatures, full-width forms) fold to their base
// characters before weights are computed.
type unicodeCICollator struct {
}

// Compare implements Collator interface.
func (uc *unicodeCICollator) Compare(a, b string) int {
	return sign(strings.Compare(uc.foldString(a), uc.foldString(b)))
}

// Key implements Collator interface.
func (uc *unicodeCICollator) Key(str string) []byte {
	return []byte(uc.foldString(str))
}

func (*unicodeCICollator) foldString(str string) string {
	str = norm.NFKD.String(truncateTailingSpace(str))
	var sb strings.Builder
	sb.Grow(len(str))
	for _, r := range str {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}
