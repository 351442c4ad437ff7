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

package executor

import "github.com/pingcap/errors"

// ErrUnsupportedPushdown means the pushdown descriptor asks for something
// the batch engine cannot execute. The request should fall back to a
// non-batch execution path.
var ErrUnsupportedPushdown = errors.New("unsupported pushdown executor")
