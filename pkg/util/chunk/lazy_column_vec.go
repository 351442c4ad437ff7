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

package chunk

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/tipb/go-tipb"
)

// LazyColumnVec is one chunk of columnar data moving between batch
// executors: the physical columns of a batch. Which physical rows are
// visible, and in what order, is decided by the logical row index list the
// batch travels with.
type LazyColumnVec struct {
	columns []*LazyColumn
}

// NewLazyColumnVec creates a LazyColumnVec from the given columns, which
// must all have the same number of rows.
func NewLazyColumnVec(columns ...*LazyColumn) *LazyColumnVec {
	for i := 1; i < len(columns); i++ {
		if columns[i].Len() != columns[0].Len() {
			panic("all columns in a batch must have the same length")
		}
	}
	return &LazyColumnVec{columns: columns}
}

// EmptyLazyColumnVec creates a LazyColumnVec with no columns and no rows.
func EmptyLazyColumnVec() *LazyColumnVec {
	return &LazyColumnVec{}
}

// NumColumns returns the number of physical columns.
func (v *LazyColumnVec) NumColumns() int {
	return len(v.columns)
}

// NumRows returns the number of physical rows.
func (v *LazyColumnVec) NumRows() int {
	if len(v.columns) == 0 {
		return 0
	}
	return v.columns[0].Len()
}

// Column returns the idx-th physical column.
func (v *LazyColumnVec) Column(idx int) *LazyColumn {
	return v.columns[idx]
}

// EnsureColumnDecoded decodes the idx-th column with its schema field type
// if it is still raw.
func (v *LazyColumnVec) EnsureColumnDecoded(idx int, ft *tipb.FieldType) error {
	return errors.Trace(v.columns[idx].EnsureDecoded(ft))
}

// EnsureAllDecoded decodes every remaining raw column using the schema.
func (v *LazyColumnVec) EnsureAllDecoded(schema []*tipb.FieldType) error {
	if len(v.columns) != len(schema) {
		return errors.Errorf("schema has %d columns, batch has %d", len(schema), len(v.columns))
	}
	for i, col := range v.columns {
		if err := col.EnsureDecoded(schema[i]); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}
