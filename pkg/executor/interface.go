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

	"github.com/pingcap/veccop/pkg/util/chunk"
	"github.com/pingcap/veccop/pkg/util/execdetails"
)

// DrainState reports whether a source has more batches to produce.
type DrainState int

const (
	// Remain means the source is not exhausted; the caller must keep
	// pulling.
	Remain DrainState = iota
	// Drain means the source is exhausted and must not be pulled again.
	Drain
)

// Stop reports whether pulling must stop.
func (ds DrainState) Stop() bool {
	return ds == Drain
}

// String implements fmt.Stringer interface.
func (ds DrainState) String() string {
	if ds == Drain {
		return "Drain"
	}
	return "Remain"
}

// BatchExecuteResult is what one NextBatch call produces.
type BatchExecuteResult struct {
	// PhysicalColumns is the physical data of the batch.
	PhysicalColumns *chunk.LazyColumnVec
	// LogicalRows selects and orders which physical rows are visible.
	LogicalRows []int
	// Warnings are the non-fatal diagnostics produced while computing
	// this batch.
	Warnings []error
	// IsDrained tells whether the executor has more batches. It is only
	// meaningful when Err is nil.
	IsDrained DrainState
	// Err is the terminal error of the executor, surfaced through the
	// same channel as normal completion. After a result with a non-nil
	// Err, or with IsDrained == Drain, the executor must not be pulled
	// again.
	Err error
}

// IntervalRange is the key range an executor has scanned so far.
type IntervalRange struct {
	LowerInclusive []byte
	UpperExclusive []byte
}

// BatchExecutor is the pull-based contract every batch operator in the
// pipeline implements. An executor is driven by exactly one caller and is
// not safe for concurrent use.
type BatchExecutor interface {
	// Schema returns the field types of the columns the executor emits.
	Schema() []*tipb.FieldType

	// NextBatch pulls the next batch. scanRows hints how many rows the
	// caller wants, which intermediate operators may override.
	NextBatch(ctx context.Context, scanRows int) BatchExecuteResult

	// CollectExecStats collects runtime statistics of this executor and
	// all of its descendants into dest.
	CollectExecStats(dest *execdetails.ExecuteStats)

	// CollectStorageStats collects storage-layer statistics into dest,
	// whose concrete type is owned by the scan executor at the bottom of
	// the pipeline.
	CollectStorageStats(dest any)

	// TakeScannedRange returns the key range scanned since the last call.
	TakeScannedRange() IntervalRange

	// CanBeCached reports whether the response built from this pipeline
	// may be cached by the storage layer.
	CanBeCached() bool
}
