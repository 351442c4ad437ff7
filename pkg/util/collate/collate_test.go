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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pingcap/veccop/pkg/mysql"
)

func TestBinaryCollator(t *testing.T) {
	coll := GetCollator(mysql.BinaryCollationID)
	require.Equal(t, 0, coll.Compare("abc", "abc"))
	require.Equal(t, -1, coll.Compare("abc", "abd"))
	require.Equal(t, 1, coll.Compare("b", "aआ"))
	// No padding: trailing spaces are significant.
	require.Equal(t, 1, coll.Compare("a ", "a"))
	require.Equal(t, []byte("a "), coll.Key("a "))
}

func TestBinPaddingCollator(t *testing.T) {
	coll := GetCollator(mysql.UTF8MB4BinCollationID)
	require.Equal(t, 0, coll.Compare("abc", "abc  "))
	require.Equal(t, -1, coll.Compare("abc", "abd"))
	// Case and accents are significant under _bin.
	require.Equal(t, 1, coll.Compare("a", "A"))
	require.NotEqual(t, 0, coll.Compare("á", "a"))
	require.Equal(t, []byte("ab"), coll.Key("ab   "))
}

func TestGeneralCICollator(t *testing.T) {
	coll := GetCollator(mysql.UTF8MB4GeneralCICollationID)
	require.Equal(t, 0, coll.Compare("abc", "ABC"))
	require.Equal(t, 0, coll.Compare("áaA", "AaA"))
	require.Equal(t, 0, coll.Compare("aa", "áA  "))
	require.Equal(t, -1, coll.Compare("aa", "aaa"))
	require.Equal(t, 1, coll.Compare("ab", "AAA"))
	require.Equal(t, coll.Key("ÁBC"), coll.Key("abc"))
	require.True(t, bytes.Compare(coll.Key("aa"), coll.Key("ab")) < 0)
}

func TestUnicodeCICollator(t *testing.T) {
	coll := GetCollator(mysql.UTF8MB4UnicodeCICollationID)
	require.Equal(t, 0, coll.Compare("abc", "ABC"))
	require.Equal(t, 0, coll.Compare("á", "A"))
	// Compatibility decompositions fold too.
	require.Equal(t, 0, coll.Compare("ﬁ", "FI"))
	require.Equal(t, -1, coll.Compare("a", "b"))
}

func TestCollationNamesMatchCollators(t *testing.T) {
	// Every collation the protocol names has a collator, and every
	// registered collator has a name for logging.
	for id, name := range mysql.Collations {
		require.NotEmpty(t, name)
		require.Contains(t, collatorMap, id)
	}
	for id := range collatorMap {
		require.Contains(t, mysql.Collations, id)
	}
}

func TestGetCollatorFallback(t *testing.T) {
	// Negated IDs signal new-collation mode and resolve the same way.
	require.Equal(t, 0, GetCollator(-mysql.UTF8MB4GeneralCICollationID).Compare("A", "a"))
	// Unknown IDs fall back to utf8mb4_bin.
	coll := GetCollator(9999)
	require.Equal(t, 1, coll.Compare("a", "A"))
	require.Equal(t, 0, coll.Compare("a", "a "))
}
