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

package executor

import (
	"context"

	"github.com/pingcap/tipb/go-tipb"

	"github.com/pingcap/veccop/pkg/util/execdetails"
)

// MockExecutor replays a scripted sequence of results. It records how
// many times and with what row hints it was pulled, which lets tests
// assert pull behavior such as the zero-limit shortcut.
type MockExecutor struct {
	schema  []*tipb.FieldType
	results []BatchExecuteResult

	offset int
	// PullCounts records the scanRows hint of every NextBatch call.
	PullCounts []int
}

// NewMockExecutor creates a MockExecutor that returns the given results
// in order. The last result is expected to carry Drain or an error.
func NewMockExecutor(schema []*tipb.FieldType, results []BatchExecuteResult) *MockExecutor {
	return &MockExecutor{schema: schema, results: results}
}

// Schema implements BatchExecutor interface.
func (m *MockExecutor) Schema() []*tipb.FieldType {
	return m.schema
}

// NextBatch implements BatchExecutor interface.
func (m *MockExecutor) NextBatch(_ context.Context, scanRows int) BatchExecuteResult {
	m.PullCounts = append(m.PullCounts, scanRows)
	if m.offset >= len(m.results) {
		panic("MockExecutor pulled after its script was exhausted")
	}
	result := m.results[m.offset]
	m.offset++
	return result
}

// CollectExecStats implements BatchExecutor interface.
func (m *MockExecutor) CollectExecStats(dest *execdetails.ExecuteStats) {
	dest.ScannedRows = append(dest.ScannedRows, len(m.PullCounts))
}

// CollectStorageStats implements BatchExecutor interface.
func (m *MockExecutor) CollectStorageStats(any) {}

// TakeScannedRange implements BatchExecutor interface.
func (m *MockExecutor) TakeScannedRange() IntervalRange {
	return IntervalRange{}
}

// CanBeCached implements BatchExecutor interface.
func (m *MockExecutor) CanBeCached() bool {
	return true
}
