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

package codec

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/pingcap/errors"
)

// First byte in the encoded value which specifies the encoding type.
const (
	NilFlag          byte = 0
	CompactBytesFlag byte = 2
	IntFlag          byte = 3
	UintFlag         byte = 4
	FloatFlag        byte = 5
	DecimalFlag      byte = 6
	DurationFlag     byte = 7
	VarintFlag       byte = 8
	UvarintFlag      byte = 9
)

// EncodeCompactBytes joins bytes with its length into a byte slice. It is
// more efficient in both space and time compared to EncodeBytes. Note that
// the encoded result is not comparable.
func EncodeCompactBytes(b []byte, data []byte) []byte {
	b = EncodeVarint(b, int64(len(data)))
	return append(b, data...)
}

// DecodeCompactBytes decodes bytes which is encoded by EncodeCompactBytes
// before.
func DecodeCompactBytes(b []byte) ([]byte, []byte, error) {
	b, n, err := DecodeVarint(b)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	if int64(len(b)) < n {
		return nil, nil, errors.Errorf("insufficient bytes to decode value, expected length: %v", n)
	}
	return b[n:], b[:n], nil
}

// EncodeDecimal encodes a decimal into a byte slice. The decimal is
// carried in its text form; the result is not comparable.
func EncodeDecimal(b []byte, d *apd.Decimal) []byte {
	return EncodeCompactBytes(b, []byte(d.Text('f')))
}

// DecodeDecimal decodes a decimal from a byte slice generated with
// EncodeDecimal before.
func DecodeDecimal(b []byte) ([]byte, *apd.Decimal, error) {
	b, data, err := DecodeCompactBytes(b)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	d, _, err := apd.NewFromString(string(data))
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	return b, d, nil
}
