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

	"github.com/cockroachdb/apd/v3"

	"github.com/pingcap/veccop/pkg/types"
)

// Column stores the values of one column in a decoded, typed vector. Only
// the vector matching the column's eval type is populated. NULLs occupy a
// slot in the typed vector so that value indexes stay aligned with row
// indexes.
type Column struct {
	evalType   types.EvalType
	length     int
	nullBitmap []byte // bit 1 means not null
	i64s       []int64
	f64s       []float64
	decs       []*apd.Decimal
	times      []uint64
	durs       []time.Duration
	bufs       [][]byte
}

// NewColumn creates a new column of the given eval type with the given
// initial capacity.
func NewColumn(et types.EvalType, capacity int) *Column {
	c := &Column{
		evalType:   et,
		nullBitmap: make([]byte, 0, (capacity+7)>>3),
	}
	switch et {
	case types.ETInt:
		c.i64s = make([]int64, 0, capacity)
	case types.ETReal:
		c.f64s = make([]float64, 0, capacity)
	case types.ETDecimal:
		c.decs = make([]*apd.Decimal, 0, capacity)
	case types.ETDatetime:
		c.times = make([]uint64, 0, capacity)
	case types.ETDuration:
		c.durs = make([]time.Duration, 0, capacity)
	case types.ETString:
		c.bufs = make([][]byte, 0, capacity)
	}
	return c
}

// EvalType returns the eval type of the values held by the column.
func (c *Column) EvalType() types.EvalType {
	return c.evalType
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	return c.length
}

// IsNull reports whether the idx-th row is NULL.
func (c *Column) IsNull(idx int) bool {
	nullByte := c.nullBitmap[idx/8]
	return nullByte&(1<<(uint(idx)&7)) == 0
}

func (c *Column) appendNullBitmap(notNull bool) {
	idx := c.length >> 3
	if idx >= len(c.nullBitmap) {
		c.nullBitmap = append(c.nullBitmap, 0)
	}
	if notNull {
		pos := uint(c.length) & 7
		c.nullBitmap[idx] |= byte(1 << pos)
	}
}

// AppendNull appends a NULL value.
func (c *Column) AppendNull() {
	c.appendNullBitmap(false)
	switch c.evalType {
	case types.ETInt:
		c.i64s = append(c.i64s, 0)
	case types.ETReal:
		c.f64s = append(c.f64s, 0)
	case types.ETDecimal:
		c.decs = append(c.decs, nil)
	case types.ETDatetime:
		c.times = append(c.times, 0)
	case types.ETDuration:
		c.durs = append(c.durs, 0)
	case types.ETString:
		c.bufs = append(c.bufs, nil)
	}
	c.length++
}

// AppendInt64 appends an int64 value.
func (c *Column) AppendInt64(v int64) {
	c.appendNullBitmap(true)
	c.i64s = append(c.i64s, v)
	c.length++
}

// AppendUint64 appends an uint64 value. The bit pattern is stored in the
// int64 vector; whether it is read back signed or unsigned is decided by
// the field type of the consumer.
func (c *Column) AppendUint64(v uint64) {
	c.AppendInt64(int64(v))
}

// AppendFloat64 appends a float64 value.
func (c *Column) AppendFloat64(v float64) {
	c.appendNullBitmap(true)
	c.f64s = append(c.f64s, v)
	c.length++
}

// AppendDecimal appends a decimal value.
func (c *Column) AppendDecimal(d *apd.Decimal) {
	c.appendNullBitmap(true)
	c.decs = append(c.decs, d)
	c.length++
}

// AppendTime appends a packed datetime value. Packed datetimes compare
// chronologically in their numeric order.
func (c *Column) AppendTime(t uint64) {
	c.appendNullBitmap(true)
	c.times = append(c.times, t)
	c.length++
}

// AppendDuration appends a duration value.
func (c *Column) AppendDuration(d time.Duration) {
	c.appendNullBitmap(true)
	c.durs = append(c.durs, d)
	c.length++
}

// AppendBytes appends a byte string value.
func (c *Column) AppendBytes(b []byte) {
	c.appendNullBitmap(true)
	c.bufs = append(c.bufs, b)
	c.length++
}

// GetInt64 returns the int64 value at the idx-th row.
func (c *Column) GetInt64(idx int) int64 {
	return c.i64s[idx]
}

// GetUint64 returns the uint64 value at the idx-th row.
func (c *Column) GetUint64(idx int) uint64 {
	return uint64(c.i64s[idx])
}

// GetFloat64 returns the float64 value at the idx-th row.
func (c *Column) GetFloat64(idx int) float64 {
	return c.f64s[idx]
}

// GetDecimal returns the decimal value at the idx-th row.
func (c *Column) GetDecimal(idx int) *apd.Decimal {
	return c.decs[idx]
}

// GetTime returns the packed datetime value at the idx-th row.
func (c *Column) GetTime(idx int) uint64 {
	return c.times[idx]
}

// GetDuration returns the duration value at the idx-th row.
func (c *Column) GetDuration(idx int) time.Duration {
	return c.durs[idx]
}

// GetBytes returns the byte string value at the idx-th row.
func (c *Column) GetBytes(idx int) []byte {
	return c.bufs[idx]
}

// AppendFrom appends the idx-th row of the src column, which must be of
// the same eval type.
func (c *Column) AppendFrom(src *Column, idx int) {
	if src.IsNull(idx) {
		c.AppendNull()
		return
	}
	switch c.evalType {
	case types.ETInt:
		c.AppendInt64(src.i64s[idx])
	case types.ETReal:
		c.AppendFloat64(src.f64s[idx])
	case types.ETDecimal:
		c.AppendDecimal(src.decs[idx])
	case types.ETDatetime:
		c.AppendTime(src.times[idx])
	case types.ETDuration:
		c.AppendDuration(src.durs[idx])
	case types.ETString:
		c.AppendBytes(src.bufs[idx])
	}
}
