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

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/pingcap/tipb/go-tipb"
	"go.uber.org/zap"

	"github.com/pingcap/veccop/pkg/expression"
	"github.com/pingcap/veccop/pkg/metrics"
)

// BuildBatchTopNExecutor validates the pushdown descriptor and builds a
// BatchTopNExecutor on top of src. Unsupported descriptors are reported
// with ErrUnsupportedPushdown so the caller can fall back.
func BuildBatchTopNExecutor(cfg *expression.EvalConfig, src BatchExecutor, descriptor *tipb.TopN) (*BatchTopNExecutor, error) {
	if err := CheckTopNSupported(descriptor); err != nil {
		metrics.ExecutorBuildCounter.WithLabelValues("top_n", metrics.LblUnsupported).Inc()
		log.Warn("top n descriptor is not supported by the batch engine",
			zap.Uint64("limit", descriptor.Limit),
			zap.Int("orderByLen", len(descriptor.OrderBy)),
			zap.Error(err))
		return nil, errors.Trace(err)
	}
	exec, err := NewBatchTopNExecutor(cfg, src, descriptor)
	if err != nil {
		metrics.ExecutorBuildCounter.WithLabelValues("top_n", metrics.LblError).Inc()
		return nil, errors.Trace(err)
	}
	metrics.ExecutorBuildCounter.WithLabelValues("top_n", metrics.LblOK).Inc()
	return exec, nil
}
