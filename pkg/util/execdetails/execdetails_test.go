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

package execdetails

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExecSummaryRecord(t *testing.T) {
	var s ExecSummary
	s.Record(time.Millisecond, 10)
	s.Record(2*time.Millisecond, 5)
	require.Equal(t, 2, s.NumIterations)
	require.Equal(t, 15, s.NumProducedRows)
	require.Equal(t, 3*time.Millisecond, s.TimeProcessed)
}

func TestExecuteStats(t *testing.T) {
	stats := NewExecuteStats()
	topN := stats.Summary("TopN_5")
	topN.Record(time.Millisecond, 7)
	scan := stats.Summary("TableScan_4")
	scan.Record(2*time.Millisecond, 100)

	// The same slot comes back on repeated lookups.
	require.Same(t, topN, stats.Summary("TopN_5"))

	out := stats.String()
	require.Contains(t, out, "TableScan_4:{iters:1, rows:100")
	require.Contains(t, out, "TopN_5:{iters:1, rows:7")
	// Output is sorted by executor ID.
	require.Greater(t, strings.Index(out, "TopN_5"), strings.Index(out, "TableScan_4"))
}
