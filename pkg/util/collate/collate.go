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

	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/pingcap/veccop/pkg/mysql"
)

// Collator provides functionality for comparing strings for a given
// collation order.
type Collator interface {
	// Compare returns an integer comparing the two strings. The result will
	// be 0 if a == b, -1 if a < b, and +1 if a > b.
	Compare(a, b string) int
	// Key returns the collation key for str, which can be compared
	// bytewise.
	Key(str string) []byte
}

var collatorMap = map[int32]Collator{
	mysql.BinaryCollationID:           &binCollator{},
	mysql.UTF8MB4BinCollationID:       &binPaddingCollator{},
	mysql.UTF8BinCollationID:          &binPaddingCollator{},
	mysql.UTF8MB4GeneralCICollationID: &generalCICollator{},
	mysql.UTF8GeneralCICollationID:    &generalCICollator{},
	mysql.UTF8MB4UnicodeCICollationID: &unicodeCICollator{},
}

// GetCollator gets the collator according to the collation ID. The SQL
// layer may negate the ID to signal new-collation mode; both signs resolve
// to the same collator. Unknown IDs fall back to utf8mb4_bin.
func GetCollator(id int32) Collator {
	if id < 0 {
		id = -id
	}
	if coll, ok := collatorMap[id]; ok {
		return coll
	}
	log.Warn("unknown collation ID, using the default collator",
		zap.Int32("id", id),
		zap.String("default", mysql.Collations[mysql.DefaultCollationID]))
	return collatorMap[mysql.DefaultCollationID]
}

// truncateTailingSpace implements the PADDING SPACE attribute: trailing
// spaces are insignificant for comparison in padding collations.
func truncateTailingSpace(str string) string {
	return strings.TrimRight(str, " ")
}

func sign(i int) int {
	if i < 0 {
		return -1
	} else if i > 0 {
		return 1
	}
	return 0
}
