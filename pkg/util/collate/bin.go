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

import "strings"

// binCollator is the collator for the binary collation: raw byte
// comparison, no padding.
type binCollator struct {
}

// Compare implements Collator interface.
func (*binCollator) Compare(a, b string) int {
	return sign(strings.Compare(a, b))
}

// Key implements Collator interface.
func (*binCollator) Key(str string) []byte {
	return []byte(str)
}

// binPaddingCollator is the collator for _bin collations of character
// charsets, which compare bytewise after trailing spaces are stripped.
type binPaddingCollator struct {
}

// Compare implements Collator interface.
func (*binPaddingCollator) Compare(a, b string) int {
	return sign(strings.Compare(truncateTailingSpace(a), truncateTailingSpace(b)))
}

// Key implements Collator interface.
func (*binPaddingCollator) Key(str string) []byte {
	return []byte(truncateTailingSpace(str))
}
