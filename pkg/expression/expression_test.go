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
	"testing"

	"github.com/pingcap/tipb/go-tipb"
	"github.com/stretchr/testify/require"

	"github.com/pingcap/veccop/pkg/mysql"
	"github.com/pingcap/veccop/pkg/types"
	"github.com/pingcap/veccop/pkg/util/chunk"
)

func intInput(vals ...any) (*chunk.LazyColumnVec, []*tipb.FieldType) {
	col := chunk.NewColumn(types.ETInt, len(vals))
	for _, v := range vals {
		if v == nil {
			col.AppendNull()
		} else {
			col.AppendInt64(int64(v.(int)))
		}
	}
	vec := chunk.NewLazyColumnVec(chunk.NewDecodedLazyColumn(col))
	return vec, []*tipb.FieldType{types.NewFieldType(mysql.TypeLonglong)}
}

func TestColumnVecEval(t *testing.T) {
	input, schema := intInput(10, nil, 30, 40)
	col := &Column{Index: 0}
	require.Same(t, schema[0], col.RetFieldType(schema))

	// Only the selected rows are gathered, in logical order.
	out, err := col.VecEval(nil, schema, input, []int{3, 1, 0})
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
	require.Equal(t, int64(40), out.GetInt64(0))
	require.True(t, out.IsNull(1))
	require.Equal(t, int64(10), out.GetInt64(2))

	outOfRange := &Column{Index: 5}
	_, err = outOfRange.VecEval(nil, schema, input, []int{0})
	require.Error(t, err)
}

func TestConstantVecEval(t *testing.T) {
	input, schema := intInput(1, 2, 3)
	c, err := PBToExpr(IntLiteralPB(42), schema)
	require.NoError(t, err)
	out, err := c.VecEval(nil, schema, input, []int{0, 2})
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())
	require.Equal(t, int64(42), out.GetInt64(0))
	require.Equal(t, int64(42), out.GetInt64(1))

	nullExpr, err := PBToExpr(&tipb.Expr{
		Tp:        tipb.ExprType_Null,
		FieldType: types.NewFieldType(mysql.TypeLonglong),
	}, schema)
	require.NoError(t, err)
	out, err = nullExpr.VecEval(nil, schema, input, []int{1})
	require.NoError(t, err)
	require.True(t, out.IsNull(0))
}

func TestScalarFunctionIsNull(t *testing.T) {
	input, schema := intInput(7, nil, 9)
	expr, err := PBToExpr(
		ScalarFuncPB(tipb.ScalarFuncSig_IntIsNull, types.NewFieldType(mysql.TypeLonglong), ColumnRefPB(0)),
		schema)
	require.NoError(t, err)

	out, err := expr.VecEval(nil, schema, input, []int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, int64(0), out.GetInt64(0))
	require.Equal(t, int64(1), out.GetInt64(1))
	require.Equal(t, int64(0), out.GetInt64(2))
	// The result of isnull is itself never NULL.
	require.False(t, out.IsNull(1))
}

func TestScalarFunctionPlusInt(t *testing.T) {
	input, schema := intInput(1, nil, -5)
	expr, err := PBToExpr(
		ScalarFuncPB(tipb.ScalarFuncSig_PlusInt, types.NewFieldType(mysql.TypeLonglong),
			ColumnRefPB(0), IntLiteralPB(10)),
		schema)
	require.NoError(t, err)

	out, err := expr.VecEval(nil, schema, input, []int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, int64(11), out.GetInt64(0))
	require.True(t, out.IsNull(1))
	require.Equal(t, int64(5), out.GetInt64(2))

	overflow, err := PBToExpr(
		ScalarFuncPB(tipb.ScalarFuncSig_PlusInt, types.NewFieldType(mysql.TypeLonglong),
			ColumnRefPB(0), IntLiteralPB(math.MaxInt64)),
		schema)
	require.NoError(t, err)
	_, err = overflow.VecEval(nil, schema, input, []int{0})
	require.Error(t, err)
	require.Contains(t, err.Error(), "BIGINT value is out of range")
}

func TestScalarFunctionUnaryMinusInt(t *testing.T) {
	input, schema := intInput(3, nil)
	expr, err := PBToExpr(
		ScalarFuncPB(tipb.ScalarFuncSig_UnaryMinusInt, types.NewFieldType(mysql.TypeLonglong),
			ColumnRefPB(0)),
		schema)
	require.NoError(t, err)

	out, err := expr.VecEval(nil, schema, input, []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, int64(-3), out.GetInt64(0))
	require.True(t, out.IsNull(1))

	minInput, _ := intInput(math.MinInt64)
	minCol := minInput.Column(0).Decoded()
	require.Equal(t, int64(math.MinInt64), minCol.GetInt64(0))
	_, err = expr.VecEval(nil, schema, minInput, []int{0})
	require.Error(t, err)
}

func TestEvalContextWarnings(t *testing.T) {
	cfg := NewEvalConfig()
	cfg.MaxWarningCount = 2
	ctx := NewEvalContext(cfg)
	ctx.AppendWarning(errDummy("w1"))
	ctx.MergeWarnings([]error{errDummy("w2"), errDummy("w3")})
	require.Equal(t, 2, ctx.WarningCount())

	warns := ctx.TakeWarnings()
	require.Len(t, warns, 2)
	require.Equal(t, 0, ctx.WarningCount())
	require.Empty(t, ctx.TakeWarnings())
}

type errDummy string

func (e errDummy) Error() string { return string(e) }
