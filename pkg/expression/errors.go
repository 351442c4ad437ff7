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

import "github.com/pingcap/errors"

// Errors reported while building expressions from pushdown trees.
var (
	// ErrFunctionNotSupported means the expression tree carries a scalar
	// function signature the batch engine cannot evaluate. The request
	// should fall back to a non-batch execution path.
	ErrFunctionNotSupported = errors.New("function not supported by the batch engine")
	// ErrExprTypeNotSupported means the expression tree carries a node
	// type the batch engine cannot build at all.
	ErrExprTypeNotSupported = errors.New("expression type not supported by the batch engine")
)
