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

package expression

import (
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/pingcap/errors"
	"github.com/pingcap/tipb/go-tipb"

	"github.com/pingcap/veccop/pkg/types"
	"github.com/pingcap/veccop/pkg/util/chunk"
)

// Expression is an executable expression evaluated over the visible rows
// of one batch. Implementations are immutable after construction and must
// not retain the input batch.
type Expression interface {
	// RetFieldType returns the field type of the evaluation result given
	// the schema of the input batch.
	RetFieldType(schema []*tipb.FieldType) *tipb.FieldType
	// VecEval evaluates the expression over exactly the rows selected by
	// logicalRows, in that order. The result column has
	// len(logicalRows) rows.
	VecEval(ctx *EvalContext, schema []*tipb.FieldType, input *chunk.LazyColumnVec, logicalRows []int) (*chunk.Column, error)
}

// Column is an expression referencing one column of the input batch by
// offset.
type Column struct {
	Index int
}

// RetFieldType implements Expression interface.
func (col *Column) RetFieldType(schema []*tipb.FieldType) *tipb.FieldType {
	return schema[col.Index]
}

// VecEval implements Expression interface. The referenced physical column
// is decoded on demand before its values are gathered.
func (col *Column) VecEval(_ *EvalContext, schema []*tipb.FieldType, input *chunk.LazyColumnVec, logicalRows []int) (*chunk.Column, error) {
	if col.Index >= input.NumColumns() {
		return nil, errors.Errorf("column offset %d out of range, batch has %d columns", col.Index, input.NumColumns())
	}
	if err := input.EnsureColumnDecoded(col.Index, schema[col.Index]); err != nil {
		return nil, errors.Trace(err)
	}
	src := input.Column(col.Index).Decoded()
	result := chunk.NewColumn(src.EvalType(), len(logicalRows))
	for _, physIdx := range logicalRows {
		result.AppendFrom(src, physIdx)
	}
	return result, nil
}

// Constant is a literal value expression.
type Constant struct {
	ft     *tipb.FieldType
	isNull bool
	i64    int64
	f64    float64
	dec    *apd.Decimal
	dur    time.Duration
	bytes  []byte
}

// RetFieldType implements Expression interface.
func (c *Constant) RetFieldType(_ []*tipb.FieldType) *tipb.FieldType {
	return c.ft
}

// VecEval implements Expression interface.
func (c *Constant) VecEval(_ *EvalContext, _ []*tipb.FieldType, _ *chunk.LazyColumnVec, logicalRows []int) (*chunk.Column, error) {
	et, err := types.EvalTypeFromFieldType(c.ft)
	if err != nil {
		return nil, errors.Trace(err)
	}
	result := chunk.NewColumn(et, len(logicalRows))
	for range logicalRows {
		if c.isNull {
			result.AppendNull()
			continue
		}
		switch et {
		case types.ETInt:
			result.AppendInt64(c.i64)
		case types.ETReal:
			result.AppendFloat64(c.f64)
		case types.ETDecimal:
			result.AppendDecimal(c.dec)
		case types.ETDatetime:
			result.AppendTime(uint64(c.i64))
		case types.ETDuration:
			result.AppendDuration(c.dur)
		case types.ETString:
			result.AppendBytes(c.bytes)
		}
	}
	return result, nil
}
