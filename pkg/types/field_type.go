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

package types

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/tipb/go-tipb"

	"github.com/pingcap/veccop/pkg/mysql"
)

// EvalTypeFromFieldType maps a pushdown field type to the evaluation type
// its column values carry.
func EvalTypeFromFieldType(ft *tipb.FieldType) (EvalType, error) {
	switch byte(ft.Tp) {
	case mysql.TypeTiny, mysql.TypeShort, mysql.TypeInt24, mysql.TypeLong,
		mysql.TypeLonglong, mysql.TypeYear, mysql.TypeBit:
		return ETInt, nil
	case mysql.TypeFloat, mysql.TypeDouble:
		return ETReal, nil
	case mysql.TypeNewDecimal:
		return ETDecimal, nil
	case mysql.TypeVarchar, mysql.TypeVarString, mysql.TypeString,
		mysql.TypeBlob, mysql.TypeTinyBlob, mysql.TypeMediumBlob, mysql.TypeLongBlob:
		return ETString, nil
	case mysql.TypeDate, mysql.TypeDatetime, mysql.TypeTimestamp, mysql.TypeNewDate:
		return ETDatetime, nil
	case mysql.TypeDuration:
		return ETDuration, nil
	}
	return ETInt, errors.Errorf("unsupported field type %d in batch execution", ft.Tp)
}

// IsUnsigned checks whether the field type carries the unsigned flag.
func IsUnsigned(ft *tipb.FieldType) bool {
	return mysql.HasUnsignedFlag(uint(ft.Flag))
}

// CollationID returns the collation ID declared by the field type. The SQL
// layer negates collation IDs when the new collation framework is enabled,
// so the sign is stripped here.
func CollationID(ft *tipb.FieldType) int32 {
	if ft.Collate < 0 {
		return -ft.Collate
	}
	if ft.Collate == 0 {
		return mysql.DefaultCollationID
	}
	return ft.Collate
}

// NewFieldType builds a field type of the given type code with default
// flag and collation.
func NewFieldType(tp byte) *tipb.FieldType {
	ft := &tipb.FieldType{
		Tp:      int32(tp),
		Collate: mysql.DefaultCollationID,
	}
	if tp == mysql.TypeString || tp == mysql.TypeBlob {
		ft.Collate = mysql.BinaryCollationID
	}
	return ft
}

// NewFieldTypeBuilder creates a FieldTypeBuilder.
func NewFieldTypeBuilder(tp byte) *FieldTypeBuilder {
	return &FieldTypeBuilder{ft: NewFieldType(tp)}
}

// FieldTypeBuilder constructs field types fluently, mostly for tests.
type FieldTypeBuilder struct {
	ft *tipb.FieldType
}

// Flag adds flag bits to the field type.
func (b *FieldTypeBuilder) Flag(flag uint) *FieldTypeBuilder {
	b.ft.Flag |= uint32(flag)
	return b
}

// Collate sets the collation ID of the field type.
func (b *FieldTypeBuilder) Collate(id int32) *FieldTypeBuilder {
	b.ft.Collate = id
	return b
}

// Build returns the constructed field type.
func (b *FieldTypeBuilder) Build() *tipb.FieldType {
	return b.ft
}
