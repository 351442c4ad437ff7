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

	"github.com/pingcap/errors"
	"github.com/pingcap/tipb/go-tipb"

	"github.com/pingcap/veccop/pkg/mysql"
	"github.com/pingcap/veccop/pkg/types"
	"github.com/pingcap/veccop/pkg/util/codec"
)

// PBToExpr builds an executable expression from a pushdown expression
// tree. schema is the field type list of the source executor the
// expression will run over.
func PBToExpr(expr *tipb.Expr, schema []*tipb.FieldType) (Expression, error) {
	switch expr.Tp {
	case tipb.ExprType_ColumnRef:
		_, offset, err := codec.DecodeInt(expr.Val)
		if err != nil {
			return nil, errors.Trace(err)
		}
		if offset < 0 || offset >= int64(len(schema)) {
			return nil, errors.Errorf("column offset %d out of range, schema has %d columns", offset, len(schema))
		}
		return &Column{Index: int(offset)}, nil
	case tipb.ExprType_Null:
		return &Constant{ft: constFieldType(expr, mysql.TypeNull), isNull: true}, nil
	case tipb.ExprType_Int64:
		_, v, err := codec.DecodeInt(expr.Val)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return &Constant{ft: constFieldType(expr, mysql.TypeLonglong), i64: v}, nil
	case tipb.ExprType_Uint64:
		_, v, err := codec.DecodeUint(expr.Val)
		if err != nil {
			return nil, errors.Trace(err)
		}
		ft := expr.FieldType
		if ft == nil {
			ft = types.NewFieldTypeBuilder(mysql.TypeLonglong).Flag(mysql.UnsignedFlag).Build()
		}
		return &Constant{ft: ft, i64: int64(v)}, nil
	case tipb.ExprType_Float32, tipb.ExprType_Float64:
		_, v, err := codec.DecodeFloat(expr.Val)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return &Constant{ft: constFieldType(expr, mysql.TypeDouble), f64: v}, nil
	case tipb.ExprType_String, tipb.ExprType_Bytes:
		return &Constant{ft: constFieldType(expr, mysql.TypeVarString), bytes: expr.Val}, nil
	case tipb.ExprType_MysqlDecimal:
		_, d, err := codec.DecodeDecimal(expr.Val)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return &Constant{ft: constFieldType(expr, mysql.TypeNewDecimal), dec: d}, nil
	case tipb.ExprType_MysqlDuration:
		_, v, err := codec.DecodeInt(expr.Val)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return &Constant{ft: constFieldType(expr, mysql.TypeDuration), dur: time.Duration(v)}, nil
	case tipb.ExprType_ScalarFunc:
		args := make([]Expression, 0, len(expr.Children))
		for _, child := range expr.Children {
			arg, err := PBToExpr(child, schema)
			if err != nil {
				return nil, errors.Trace(err)
			}
			args = append(args, arg)
		}
		return newScalarFunction(expr.Sig, args, expr.FieldType)
	}
	return nil, errors.Annotatef(ErrExprTypeNotSupported, "tp: %s", expr.Tp)
}

// CheckExprSupported checks whether an expression tree only uses nodes the
// batch engine can build, without building it.
func CheckExprSupported(expr *tipb.Expr) error {
	switch expr.Tp {
	case tipb.ExprType_ColumnRef, tipb.ExprType_Null, tipb.ExprType_Int64,
		tipb.ExprType_Uint64, tipb.ExprType_Float32, tipb.ExprType_Float64,
		tipb.ExprType_String, tipb.ExprType_Bytes, tipb.ExprType_MysqlDecimal,
		tipb.ExprType_MysqlDuration:
		return nil
	case tipb.ExprType_ScalarFunc:
		if _, ok := supportedSigs[expr.Sig]; !ok {
			return errors.Annotatef(ErrFunctionNotSupported, "sig: %s", expr.Sig)
		}
		for _, child := range expr.Children {
			if err := CheckExprSupported(child); err != nil {
				return errors.Trace(err)
			}
		}
		return nil
	}
	return errors.Annotatef(ErrExprTypeNotSupported, "tp: %s", expr.Tp)
}

func constFieldType(expr *tipb.Expr, tp byte) *tipb.FieldType {
	if expr.FieldType != nil {
		return expr.FieldType
	}
	return types.NewFieldType(tp)
}
