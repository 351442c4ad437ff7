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

package mysql

// Collation IDs used by the pushdown protocol. The SQL layer may negate
// these IDs to signal new-collation mode; consumers should use the
// absolute value.
const (
	UTF8GeneralCICollationID    int32 = 33
	UTF8MB4GeneralCICollationID int32 = 45
	UTF8MB4BinCollationID       int32 = 46
	BinaryCollationID           int32 = 63
	UTF8BinCollationID          int32 = 83
	UTF8MB4UnicodeCICollationID int32 = 224

	// DefaultCollationID is utf8mb4_bin.
	DefaultCollationID = UTF8MB4BinCollationID
)

// Collations maps collation IDs to collation names.
var Collations = map[int32]string{
	UTF8GeneralCICollationID:    "utf8_general_ci",
	UTF8MB4GeneralCICollationID: "utf8mb4_general_ci",
	UTF8MB4BinCollationID:       "utf8mb4_bin",
	BinaryCollationID:           "binary",
	UTF8BinCollationID:          "utf8_bin",
	UTF8MB4UnicodeCICollationID: "utf8mb4_unicode_ci",
}
