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
	"fmt"
	"sort"
	"strings"
	"time"
)

// ExecSummary records the runtime information of one executor: how many
// times it was pulled, how many rows it produced and how long it spent.
type ExecSummary struct {
	NumIterations   int
	NumProducedRows int
	TimeProcessed   time.Duration
}

// Record accumulates one pull into the summary.
func (s *ExecSummary) Record(d time.Duration, rows int) {
	s.NumIterations++
	s.NumProducedRows += rows
	s.TimeProcessed += d
}

// ExecuteStats collects per-executor summaries of one request. Executors
// fill their own slot when CollectExecStats is driven down the pipeline.
type ExecuteStats struct {
	summaries map[string]*ExecSummary
	// ScannedRows is the number of rows the scan executor read per range.
	ScannedRows []int
}

// NewExecuteStats creates an empty ExecuteStats.
func NewExecuteStats() *ExecuteStats {
	return &ExecuteStats{summaries: make(map[string]*ExecSummary)}
}

// Summary returns the summary slot of the given executor, creating it on
// first use.
func (es *ExecuteStats) Summary(executorID string) *ExecSummary {
	s, ok := es.summaries[executorID]
	if !ok {
		s = &ExecSummary{}
		es.summaries[executorID] = s
	}
	return s
}

// String implements fmt.Stringer interface.
func (es *ExecuteStats) String() string {
	ids := make([]string, 0, len(es.summaries))
	for id := range es.summaries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		s := es.summaries[id]
		parts = append(parts, fmt.Sprintf("%s:{iters:%d, rows:%d, time:%s}",
			id, s.NumIterations, s.NumProducedRows, s.TimeProcessed))
	}
	return strings.Join(parts, ", ")
}
