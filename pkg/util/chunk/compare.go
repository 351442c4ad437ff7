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
	"math"

	"github.com/pingcap/errors"
	"github.com/pingcap/tipb/go-tipb"

	"github.com/pingcap/veccop/pkg/types"
	"github.com/pingcap/veccop/pkg/util/collate"
)

// CompareFunc is a function to compare the value at lIdx of column l with
// the value at rIdx of column r. A NULL compares below every non-NULL
// value of the type.
type CompareFunc = func(l *Column, lIdx int, r *Column, rIdx int) int

// GetCompareFunc gets a compare function for the field type. Both columns
// handed to the returned function must hold values of that type.
func GetCompareFunc(ft *tipb.FieldType) (CompareFunc, error) {
	et, err := types.EvalTypeFromFieldType(ft)
	if err != nil {
		return nil, errors.Trace(err)
	}
	switch et {
	case types.ETInt:
		if types.IsUnsigned(ft) {
			return cmpUint64, nil
		}
		return cmpInt64, nil
	case types.ETReal:
		return cmpFloat64, nil
	case types.ETDecimal:
		return cmpDecimal, nil
	case types.ETString:
		collator := collate.GetCollator(types.CollationID(ft))
		return func(l *Column, lIdx int, r *Column, rIdx int) int {
			if cmp, done := cmpNull(l, lIdx, r, rIdx); done {
				return cmp
			}
			return collator.Compare(string(l.GetBytes(lIdx)), string(r.GetBytes(rIdx)))
		}, nil
	case types.ETDatetime:
		return cmpTime, nil
	case types.ETDuration:
		return cmpDuration, nil
	}
	return nil, errors.Errorf("no compare function for eval type %v", et)
}

// cmpNull resolves comparisons involving NULL. A NULL value is the
// minimum of the type regardless of sort direction.
func cmpNull(l *Column, lIdx int, r *Column, rIdx int) (int, bool) {
	lNull, rNull := l.IsNull(lIdx), r.IsNull(rIdx)
	if lNull && rNull {
		return 0, true
	}
	if lNull {
		return -1, true
	}
	if rNull {
		return 1, true
	}
	return 0, false
}

func cmpInt64(l *Column, lIdx int, r *Column, rIdx int) int {
	if cmp, done := cmpNull(l, lIdx, r, rIdx); done {
		return cmp
	}
	return cmpI64(l.GetInt64(lIdx), r.GetInt64(rIdx))
}

func cmpUint64(l *Column, lIdx int, r *Column, rIdx int) int {
	if cmp, done := cmpNull(l, lIdx, r, rIdx); done {
		return cmp
	}
	return cmpU64(l.GetUint64(lIdx), r.GetUint64(rIdx))
}

// cmpFloat64 extends IEEE ordering to a total order: NaN compares above
// every other value and equal to itself, so the heap invariants hold for
// non-finite inputs.
func cmpFloat64(l *Column, lIdx int, r *Column, rIdx int) int {
	if cmp, done := cmpNull(l, lIdx, r, rIdx); done {
		return cmp
	}
	a, b := l.GetFloat64(lIdx), r.GetFloat64(rIdx)
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpDecimal(l *Column, lIdx int, r *Column, rIdx int) int {
	if cmp, done := cmpNull(l, lIdx, r, rIdx); done {
		return cmp
	}
	return l.GetDecimal(lIdx).Cmp(r.GetDecimal(rIdx))
}

func cmpTime(l *Column, lIdx int, r *Column, rIdx int) int {
	if cmp, done := cmpNull(l, lIdx, r, rIdx); done {
		return cmp
	}
	return cmpU64(l.GetTime(lIdx), r.GetTime(rIdx))
}

func cmpDuration(l *Column, lIdx int, r *Column, rIdx int) int {
	if cmp, done := cmpNull(l, lIdx, r, rIdx); done {
		return cmp
	}
	return cmpI64(int64(l.GetDuration(lIdx)), int64(r.GetDuration(rIdx)))
}

func cmpI64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpU64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
