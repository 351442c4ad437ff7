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
	"github.com/pingcap/tipb/go-tipb"

	"github.com/pingcap/veccop/pkg/mysql"
	"github.com/pingcap/veccop/pkg/types"
	"github.com/pingcap/veccop/pkg/util/codec"
)

// Helpers building pushdown expression trees. The SQL layer normally
// produces these; tests and embedding callers use the helpers below.

// ColumnRefPB builds a column reference node for the given column offset.
func ColumnRefPB(offset int) *tipb.Expr {
	return &tipb.Expr{
		Tp:  tipb.ExprType_ColumnRef,
		Val: codec.EncodeInt(nil, int64(offset)),
	}
}

// IntLiteralPB builds a signed integer literal node.
func IntLiteralPB(v int64) *tipb.Expr {
	return &tipb.Expr{
		Tp:        tipb.ExprType_Int64,
		Val:       codec.EncodeInt(nil, v),
		FieldType: types.NewFieldType(mysql.TypeLonglong),
	}
}

// UintLiteralPB builds an unsigned integer literal node.
func UintLiteralPB(v uint64) *tipb.Expr {
	return &tipb.Expr{
		Tp:        tipb.ExprType_Uint64,
		Val:       codec.EncodeUint(nil, v),
		FieldType: types.NewFieldTypeBuilder(mysql.TypeLonglong).Flag(mysql.UnsignedFlag).Build(),
	}
}

// RealLiteralPB builds a float literal node.
func RealLiteralPB(v float64) *tipb.Expr {
	return &tipb.Expr{
		Tp:        tipb.ExprType_Float64,
		Val:       codec.EncodeFloat(nil, v),
		FieldType: types.NewFieldType(mysql.TypeDouble),
	}
}

// BytesLiteralPB builds a byte-string literal node.
func BytesLiteralPB(v []byte) *tipb.Expr {
	return &tipb.Expr{
		Tp:        tipb.ExprType_Bytes,
		Val:       v,
		FieldType: types.NewFieldType(mysql.TypeVarString),
	}
}

// NullLiteralPB builds a NULL literal node.
func NullLiteralPB() *tipb.Expr {
	return &tipb.Expr{Tp: tipb.ExprType_Null}
}

// ScalarFuncPB builds a scalar function node over the given children.
func ScalarFuncPB(sig tipb.ScalarFuncSig, ft *tipb.FieldType, children ...*tipb.Expr) *tipb.Expr {
	return &tipb.Expr{
		Tp:        tipb.ExprType_ScalarFunc,
		Sig:       sig,
		FieldType: ft,
		Children:  children,
	}
}
