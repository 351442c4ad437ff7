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
	"time"

	"github.com/pingcap/errors"
	"github.com/pingcap/tipb/go-tipb"

	"github.com/pingcap/veccop/pkg/types"
	"github.com/pingcap/veccop/pkg/util/codec"
)

// LazyColumn is a column that may stay in its raw datum-encoded form
// until some expression actually needs its values. Columns never touched
// by an ORDER BY or filter are carried through the pipeline undecoded.
type LazyColumn struct {
	raw     [][]byte
	decoded *Column
}

// NewRawLazyColumn creates a lazy column from datum-encoded rows.
func NewRawLazyColumn(rows [][]byte) *LazyColumn {
	return &LazyColumn{raw: rows}
}

// NewDecodedLazyColumn wraps an already decoded column.
func NewDecodedLazyColumn(col *Column) *LazyColumn {
	return &LazyColumn{decoded: col}
}

// IsDecoded reports whether the column holds decoded values.
func (lc *LazyColumn) IsDecoded() bool {
	return lc.decoded != nil
}

// Len returns the number of rows in the column.
func (lc *LazyColumn) Len() int {
	if lc.decoded != nil {
		return lc.decoded.Len()
	}
	return len(lc.raw)
}

// Decoded returns the decoded column. It panics when the column has not
// been decoded; callers must go through EnsureDecoded first.
func (lc *LazyColumn) Decoded() *Column {
	if lc.decoded == nil {
		panic("column is not decoded")
	}
	return lc.decoded
}

// EnsureDecoded decodes the raw rows according to the field type. It is a
// no-op when the column is already decoded.
func (lc *LazyColumn) EnsureDecoded(ft *tipb.FieldType) error {
	if lc.decoded != nil {
		return nil
	}
	et, err := types.EvalTypeFromFieldType(ft)
	if err != nil {
		return errors.Trace(err)
	}
	col := NewColumn(et, len(lc.raw))
	for _, row := range lc.raw {
		if err = decodeDatumTo(col, et, row); err != nil {
			return errors.Trace(err)
		}
	}
	lc.decoded = col
	lc.raw = nil
	return nil
}

func decodeDatumTo(col *Column, et types.EvalType, row []byte) error {
	if len(row) == 0 {
		return errors.New("empty encoded datum")
	}
	flag, data := row[0], row[1:]
	if flag == codec.NilFlag {
		col.AppendNull()
		return nil
	}
	switch et {
	case types.ETInt:
		switch flag {
		case codec.IntFlag:
			_, v, err := codec.DecodeInt(data)
			if err != nil {
				return errors.Trace(err)
			}
			col.AppendInt64(v)
		case codec.UintFlag:
			_, v, err := codec.DecodeUint(data)
			if err != nil {
				return errors.Trace(err)
			}
			col.AppendUint64(v)
		case codec.VarintFlag:
			_, v, err := codec.DecodeVarint(data)
			if err != nil {
				return errors.Trace(err)
			}
			col.AppendInt64(v)
		case codec.UvarintFlag:
			_, v, err := codec.DecodeUvarint(data)
			if err != nil {
				return errors.Trace(err)
			}
			col.AppendUint64(v)
		default:
			return errors.Errorf("unexpected flag %d for int column", flag)
		}
	case types.ETReal:
		if flag != codec.FloatFlag {
			return errors.Errorf("unexpected flag %d for real column", flag)
		}
		_, v, err := codec.DecodeFloat(data)
		if err != nil {
			return errors.Trace(err)
		}
		col.AppendFloat64(v)
	case types.ETDecimal:
		if flag != codec.DecimalFlag {
			return errors.Errorf("unexpected flag %d for decimal column", flag)
		}
		_, d, err := codec.DecodeDecimal(data)
		if err != nil {
			return errors.Trace(err)
		}
		col.AppendDecimal(d)
	case types.ETDatetime:
		if flag != codec.UintFlag {
			return errors.Errorf("unexpected flag %d for datetime column", flag)
		}
		_, v, err := codec.DecodeUint(data)
		if err != nil {
			return errors.Trace(err)
		}
		col.AppendTime(v)
	case types.ETDuration:
		if flag != codec.DurationFlag {
			return errors.Errorf("unexpected flag %d for duration column", flag)
		}
		_, v, err := codec.DecodeVarint(data)
		if err != nil {
			return errors.Trace(err)
		}
		col.AppendDuration(time.Duration(v))
	case types.ETString:
		if flag != codec.CompactBytesFlag {
			return errors.Errorf("unexpected flag %d for string column", flag)
		}
		_, b, err := codec.DecodeCompactBytes(data)
		if err != nil {
			return errors.Trace(err)
		}
		col.AppendBytes(b)
	default:
		return errors.Errorf("unsupported eval type %v", et)
	}
	return nil
}
