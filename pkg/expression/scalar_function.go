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
	"math"

	"github.com/pingcap/errors"
	"github.com/pingcap/tipb/go-tipb"

	"github.com/pingcap/veccop/pkg/mysql"
	"github.com/pingcap/veccop/pkg/types"
	"github.com/pingcap/veccop/pkg/util/chunk"
)

// supportedSigs lists the scalar function signatures the batch engine can
// evaluate. Pushdown requests carrying any other signature are rejected at
// CheckExprSupported time so the SQL layer can fall back to a non-batch
// plan.
var supportedSigs = map[tipb.ScalarFuncSig]struct{}{
	tipb.ScalarFuncSig_IntIsNull:      {},
	tipb.ScalarFuncSig_RealIsNull:     {},
	tipb.ScalarFuncSig_DecimalIsNull:  {},
	tipb.ScalarFuncSig_StringIsNull:   {},
	tipb.ScalarFuncSig_TimeIsNull:     {},
	tipb.ScalarFuncSig_DurationIsNull: {},
	tipb.ScalarFuncSig_PlusInt:        {},
	tipb.ScalarFuncSig_UnaryMinusInt:  {},
	tipb.ScalarFuncSig_CastIntAsInt:   {},
}

// ScalarFunction is a pushed down scalar function call over child
// expressions.
type ScalarFunction struct {
	sig  tipb.ScalarFuncSig
	args []Expression
	ft   *tipb.FieldType
}

func newScalarFunction(sig tipb.ScalarFuncSig, args []Expression, ft *tipb.FieldType) (*ScalarFunction, error) {
	if _, ok := supportedSigs[sig]; !ok {
		return nil, errors.Annotatef(ErrFunctionNotSupported, "sig: %s", sig)
	}
	if ft == nil {
		ft = types.NewFieldType(mysql.TypeLonglong)
	}
	switch sig {
	case tipb.ScalarFuncSig_PlusInt:
		if len(args) != 2 {
			return nil, errors.Errorf("%s expects 2 args, got %d", sig, len(args))
		}
	default:
		if len(args) != 1 {
			return nil, errors.Errorf("%s expects 1 arg, got %d", sig, len(args))
		}
	}
	return &ScalarFunction{sig: sig, args: args, ft: ft}, nil
}

// RetFieldType implements Expression interface.
func (sf *ScalarFunction) RetFieldType(_ []*tipb.FieldType) *tipb.FieldType {
	return sf.ft
}

// VecEval implements Expression interface.
func (sf *ScalarFunction) VecEval(ctx *EvalContext, schema []*tipb.FieldType, input *chunk.LazyColumnVec, logicalRows []int) (*chunk.Column, error) {
	arg0, err := sf.args[0].VecEval(ctx, schema, input, logicalRows)
	if err != nil {
		return nil, errors.Trace(err)
	}
	switch sf.sig {
	case tipb.ScalarFuncSig_IntIsNull, tipb.ScalarFuncSig_RealIsNull,
		tipb.ScalarFuncSig_DecimalIsNull, tipb.ScalarFuncSig_StringIsNull,
		tipb.ScalarFuncSig_TimeIsNull, tipb.ScalarFuncSig_DurationIsNull:
		return vecIsNull(arg0), nil
	case tipb.ScalarFuncSig_UnaryMinusInt:
		return vecUnaryMinusInt(arg0)
	case tipb.ScalarFuncSig_CastIntAsInt:
		return arg0, nil
	case tipb.ScalarFuncSig_PlusInt:
		arg1, err := sf.args[1].VecEval(ctx, schema, input, logicalRows)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return vecPlusInt(arg0, arg1)
	}
	return nil, errors.Annotatef(ErrFunctionNotSupported, "sig: %s", sf.sig)
}

func vecIsNull(arg *chunk.Column) *chunk.Column {
	n := arg.Len()
	result := chunk.NewColumn(types.ETInt, n)
	for i := 0; i < n; i++ {
		if arg.IsNull(i) {
			result.AppendInt64(1)
		} else {
			result.AppendInt64(0)
		}
	}
	return result
}

func vecUnaryMinusInt(arg *chunk.Column) (*chunk.Column, error) {
	n := arg.Len()
	result := chunk.NewColumn(types.ETInt, n)
	for i := 0; i < n; i++ {
		if arg.IsNull(i) {
			result.AppendNull()
			continue
		}
		v := arg.GetInt64(i)
		if v == math.MinInt64 {
			return nil, errors.Errorf("BIGINT value is out of range in '-(%d)'", v)
		}
		result.AppendInt64(-v)
	}
	return result, nil
}

func vecPlusInt(lhs, rhs *chunk.Column) (*chunk.Column, error) {
	n := lhs.Len()
	result := chunk.NewColumn(types.ETInt, n)
	for i := 0; i < n; i++ {
		if lhs.IsNull(i) || rhs.IsNull(i) {
			result.AppendNull()
			continue
		}
		a, b := lhs.GetInt64(i), rhs.GetInt64(i)
		sum := a + b
		// Overflow iff both operands share a sign the sum lost.
		if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum > 0) {
			return nil, errors.Errorf("BIGINT value is out of range in '(%d + %d)'", a, b)
		}
		result.AppendInt64(sum)
	}
	return result, nil
}
