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
	"container/heap"
	"sort"

	"github.com/pingcap/veccop/pkg/util/chunk"
)

// heapItemSourceData pins everything one batch's surviving rows need: the
// physical columns, the logical row list and the evaluated sort-key
// columns. One container is shared by every heap row drawn from the same
// batch, so the batch stays alive exactly as long as at least one of its
// rows survives in the heap.
type heapItemSourceData struct {
	physicalColumns *chunk.LazyColumnVec
	logicalRows     []int
	sortKeyColumns  []*chunk.Column
}

// heapRow is one candidate output row: a handle to its batch's pinned
// data plus the position of the row within that batch's logical rows.
// Sort-key columns are aligned to logical row order, so keyIdx indexes
// both.
type heapRow struct {
	source *heapItemSourceData
	keyIdx int
}

// physicalRowIndex returns the row's index into the physical columns.
func (r heapRow) physicalRowIndex() int {
	return r.source.logicalRows[r.keyIdx]
}

// topNHeap keeps the best n rows seen so far. The heap order is
// worst-first: the root is always the weakest survivor, which is the
// eviction candidate when a better row arrives.
type topNHeap struct {
	n        int
	cmpFuncs []chunk.CompareFunc
	isDesc   []bool
	rows     []heapRow
}

func newTopNHeap(n int, cmpFuncs []chunk.CompareFunc, isDesc []bool) *topNHeap {
	// n can be arbitrarily large; the slice grows as rows actually arrive.
	return &topNHeap{
		n:        n,
		cmpFuncs: cmpFuncs,
		isDesc:   isDesc,
		rows:     make([]heapRow, 0, min(n, BatchMaxSize)),
	}
}

// compareRow compares two rows in better-first order: negative when a
// sorts before b in the final output.
func (h *topNHeap) compareRow(a, b heapRow) int {
	for i, cmpFunc := range h.cmpFuncs {
		cmp := cmpFunc(a.source.sortKeyColumns[i], a.keyIdx, b.source.sortKeyColumns[i], b.keyIdx)
		if h.isDesc[i] {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp
		}
	}
	return 0
}

// Len implements heap.Interface.
func (h *topNHeap) Len() int {
	return len(h.rows)
}

// Less implements heap.Interface. The heap root must be the worst
// survivor, so row i is "less" when it sorts after row j.
func (h *topNHeap) Less(i, j int) bool {
	return h.compareRow(h.rows[i], h.rows[j]) > 0
}

// Swap implements heap.Interface.
func (h *topNHeap) Swap(i, j int) {
	h.rows[i], h.rows[j] = h.rows[j], h.rows[i]
}

// Push implements heap.Interface.
func (h *topNHeap) Push(x any) {
	h.rows = append(h.rows, x.(heapRow))
}

// Pop implements heap.Interface.
func (h *topNHeap) Pop() any {
	row := h.rows[len(h.rows)-1]
	h.rows = h.rows[:len(h.rows)-1]
	return row
}

// addRow offers a row to the heap. Below capacity it is always kept. At
// capacity it replaces the current worst survivor only when strictly
// better; otherwise it is discarded, dropping its batch reference if it
// was the last one.
func (h *topNHeap) addRow(row heapRow) {
	if len(h.rows) < h.n {
		heap.Push(h, row)
		return
	}
	if h.compareRow(row, h.rows[0]) < 0 {
		h.rows[0] = row
		heap.Fix(h, 0)
	}
}

// takeAll drains every survivor in better-first order. The heap is empty
// afterwards.
func (h *topNHeap) takeAll() []heapRow {
	rows := h.rows
	h.rows = nil
	sort.Slice(rows, func(i, j int) bool {
		return h.compareRow(rows[i], rows[j]) < 0
	})
	return rows
}
