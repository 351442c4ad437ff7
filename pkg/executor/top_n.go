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
	"math"

	"github.com/pingcap/errors"
	"github.com/pingcap/failpoint"
	"github.com/pingcap/tipb/go-tipb"

	"github.com/pingcap/veccop/pkg/expression"
	"github.com/pingcap/veccop/pkg/metrics"
	"github.com/pingcap/veccop/pkg/types"
	"github.com/pingcap/veccop/pkg/util/chunk"
	"github.com/pingcap/veccop/pkg/util/execdetails"
)

// BatchMaxSize is the batch size used when pulling from the source.
// Top-N must see every input row before it can emit anything, so it
// always asks for full batches regardless of the caller's hint.
const BatchMaxSize = 1024

// BatchTopNExecutor returns the best N rows of its source, fully sorted
// by the pushed down ORDER BY, while reading the source stream with O(N)
// retained rows.
type BatchTopNExecutor struct {
	heap *topNHeap

	orderExprs []expression.Expression
	// orderFieldTypes are the result field types of orderExprs, resolved
	// once against the source schema.
	orderFieldTypes []*tipb.FieldType
	orderIsDesc     []bool
	n               int

	ctx     *expression.EvalContext
	src     BatchExecutor
	isEnded bool
}

// CheckTopNSupported checks whether the descriptor can be executed by the
// batch engine. A descriptor without ORDER BY columns, or with an
// expression outside the supported subset, is rejected so the caller can
// fall back to a non-batch execution path.
func CheckTopNSupported(descriptor *tipb.TopN) error {
	if len(descriptor.OrderBy) == 0 {
		return errors.Annotate(ErrUnsupportedPushdown, "missing Top N column")
	}
	for _, item := range descriptor.OrderBy {
		if err := expression.CheckExprSupported(item.Expr); err != nil {
			return errors.Annotate(err, ErrUnsupportedPushdown.Error())
		}
	}
	return nil
}

// NewBatchTopNExecutor creates a BatchTopNExecutor from a pushdown
// descriptor. The limit is taken from the descriptor; a limit beyond the
// int range is clamped, such a Top-N keeps every row anyway.
func NewBatchTopNExecutor(cfg *expression.EvalConfig, src BatchExecutor, descriptor *tipb.TopN) (*BatchTopNExecutor, error) {
	orderExprs := make([]expression.Expression, 0, len(descriptor.OrderBy))
	orderIsDesc := make([]bool, 0, len(descriptor.OrderBy))
	for _, item := range descriptor.OrderBy {
		expr, err := expression.PBToExpr(item.Expr, src.Schema())
		if err != nil {
			return nil, errors.Trace(err)
		}
		orderExprs = append(orderExprs, expr)
		orderIsDesc = append(orderIsDesc, item.Desc)
	}
	limit := descriptor.Limit
	if limit > math.MaxInt {
		limit = math.MaxInt
	}
	return newBatchTopNExecutor(cfg, src, orderExprs, orderIsDesc, int(limit))
}

// NewBatchTopNExecutorForTest creates a BatchTopNExecutor from already
// built expressions.
func NewBatchTopNExecutorForTest(cfg *expression.EvalConfig, src BatchExecutor, orderExprs []expression.Expression, orderIsDesc []bool, n int) (*BatchTopNExecutor, error) {
	return newBatchTopNExecutor(cfg, src, orderExprs, orderIsDesc, n)
}

func newBatchTopNExecutor(cfg *expression.EvalConfig, src BatchExecutor, orderExprs []expression.Expression, orderIsDesc []bool, n int) (*BatchTopNExecutor, error) {
	if len(orderExprs) != len(orderIsDesc) {
		return nil, errors.Errorf("%d order expressions but %d direction flags", len(orderExprs), len(orderIsDesc))
	}
	orderFieldTypes := make([]*tipb.FieldType, 0, len(orderExprs))
	cmpFuncs := make([]chunk.CompareFunc, 0, len(orderExprs))
	for _, expr := range orderExprs {
		ft := expr.RetFieldType(src.Schema())
		cmpFunc, err := chunk.GetCompareFunc(ft)
		if err != nil {
			return nil, errors.Annotate(err, ErrUnsupportedPushdown.Error())
		}
		orderFieldTypes = append(orderFieldTypes, ft)
		cmpFuncs = append(cmpFuncs, cmpFunc)
	}
	return &BatchTopNExecutor{
		heap:            newTopNHeap(n, cmpFuncs, orderIsDesc),
		orderExprs:      orderExprs,
		orderFieldTypes: orderFieldTypes,
		orderIsDesc:     orderIsDesc,
		n:               n,
		ctx:             expression.NewEvalContext(cfg),
		src:             src,
	}, nil
}

// Schema implements BatchExecutor interface. Top-N reorders and truncates
// rows, never changes their shape.
func (e *BatchTopNExecutor) Schema() []*tipb.FieldType {
	return e.src.Schema()
}

// NextBatch implements BatchExecutor interface.
func (e *BatchTopNExecutor) NextBatch(ctx context.Context, scanRows int) BatchExecuteResult {
	if e.isEnded {
		panic("BatchTopNExecutor pulled after it was drained")
	}

	if e.n == 0 {
		// A zero-limit query needs no input at all; the source is never
		// pulled.
		e.isEnded = true
		return BatchExecuteResult{
			PhysicalColumns: chunk.EmptyLazyColumnVec(),
			LogicalRows:     nil,
			IsDrained:       Drain,
		}
	}

	// When the limit does not fit in one paging round-trip, buffering the
	// whole stream up front would be wasted work: the caller is already
	// limiting consumption per round-trip. Pass the call through
	// verbatim; ordering is intentionally not provided in this mode.
	if pagingSize := e.ctx.Cfg.PagingSize; pagingSize > 0 && uint64(e.n) > pagingSize {
		return e.src.NextBatch(ctx, scanRows)
	}

	output, err := e.handleNextBatch(ctx)
	switch {
	case err != nil:
		e.isEnded = true
		return BatchExecuteResult{
			PhysicalColumns: chunk.EmptyLazyColumnVec(),
			Warnings:        e.ctx.TakeWarnings(),
			IsDrained:       Drain,
			Err:             err,
		}
	case output != nil:
		e.isEnded = true
		logicalRows := make([]int, output.NumRows())
		for i := range logicalRows {
			logicalRows[i] = i
		}
		return BatchExecuteResult{
			PhysicalColumns: output,
			LogicalRows:     logicalRows,
			Warnings:        e.ctx.TakeWarnings(),
			IsDrained:       Drain,
		}
	default:
		return BatchExecuteResult{
			PhysicalColumns: chunk.EmptyLazyColumnVec(),
			Warnings:        e.ctx.TakeWarnings(),
			IsDrained:       Remain,
		}
	}
}

// handleNextBatch pulls one batch from the source and feeds it to the
// heap. It returns a non-nil output exactly once, when the source is
// drained.
func (e *BatchTopNExecutor) handleNextBatch(ctx context.Context) (*chunk.LazyColumnVec, error) {
	srcResult := e.src.NextBatch(ctx, BatchMaxSize)

	if len(srcResult.Warnings) > 0 {
		metrics.ExecutorWarningCounter.WithLabelValues("top_n").Add(float64(len(srcResult.Warnings)))
		e.ctx.MergeWarnings(srcResult.Warnings)
	}

	if srcResult.Err != nil {
		return nil, errors.Trace(srcResult.Err)
	}

	if len(srcResult.LogicalRows) > 0 {
		if err := e.processBatchInput(srcResult.PhysicalColumns, srcResult.LogicalRows); err != nil {
			return nil, errors.Trace(err)
		}
	}

	if srcResult.IsDrained.Stop() {
		return e.buildOutput(e.heap.takeAll())
	}
	return nil, nil
}

// processBatchInput evaluates the ORDER BY expressions over the batch's
// visible rows, pins the batch together with its sort keys, and offers
// every row to the heap.
func (e *BatchTopNExecutor) processBatchInput(physicalColumns *chunk.LazyColumnVec, logicalRows []int) error {
	failpoint.Inject("topNEvalError", func() {
		failpoint.Return(errors.New("injected Top N evaluation error"))
	})

	sortKeyColumns := make([]*chunk.Column, 0, len(e.orderExprs))
	for _, expr := range e.orderExprs {
		keyColumn, err := expr.VecEval(e.ctx, e.src.Schema(), physicalColumns, logicalRows)
		if err != nil {
			return errors.Trace(err)
		}
		sortKeyColumns = append(sortKeyColumns, keyColumn)
	}

	source := &heapItemSourceData{
		physicalColumns: physicalColumns,
		logicalRows:     logicalRows,
		sortKeyColumns:  sortKeyColumns,
	}
	for keyIdx := range logicalRows {
		e.heap.addRow(heapRow{source: source, keyIdx: keyIdx})
	}
	return nil
}

// buildOutput materializes the drained survivors into one fully sorted
// output batch. Once materialized, the pinned source batches are no
// longer referenced and become collectable.
func (e *BatchTopNExecutor) buildOutput(rows []heapRow) (*chunk.LazyColumnVec, error) {
	if len(rows) == 0 {
		return chunk.EmptyLazyColumnVec(), nil
	}

	schema := e.src.Schema()
	seen := make(map[*heapItemSourceData]struct{})
	for _, row := range rows {
		if _, ok := seen[row.source]; ok {
			continue
		}
		seen[row.source] = struct{}{}
		if err := row.source.physicalColumns.EnsureAllDecoded(schema); err != nil {
			return nil, errors.Trace(err)
		}
	}

	outColumns := make([]*chunk.LazyColumn, len(schema))
	for colIdx, ft := range schema {
		et, err := types.EvalTypeFromFieldType(ft)
		if err != nil {
			return nil, errors.Trace(err)
		}
		column := chunk.NewColumn(et, len(rows))
		for _, row := range rows {
			column.AppendFrom(row.source.physicalColumns.Column(colIdx).Decoded(), row.physicalRowIndex())
		}
		outColumns[colIdx] = chunk.NewDecodedLazyColumn(column)
	}
	return chunk.NewLazyColumnVec(outColumns...), nil
}

// CollectExecStats implements BatchExecutor interface.
func (e *BatchTopNExecutor) CollectExecStats(dest *execdetails.ExecuteStats) {
	e.src.CollectExecStats(dest)
}

// CollectStorageStats implements BatchExecutor interface.
func (e *BatchTopNExecutor) CollectStorageStats(dest any) {
	e.src.CollectStorageStats(dest)
}

// TakeScannedRange implements BatchExecutor interface.
func (e *BatchTopNExecutor) TakeScannedRange() IntervalRange {
	return e.src.TakeScannedRange()
}

// CanBeCached implements BatchExecutor interface.
func (e *BatchTopNExecutor) CanBeCached() bool {
	return e.src.CanBeCached()
}
