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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Label constants.
const (
	LblType   = "type"
	LblResult = "result"

	LblOK          = "ok"
	LblUnsupported = "unsupported"
	LblError       = "error"
)

// Executor metrics.
var (
	ExecutorBuildCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veccop",
			Subsystem: "executor",
			Name:      "build_total",
			Help:      "Counter of batch executor builds.",
		}, []string{LblType, LblResult})

	ExecutorWarningCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veccop",
			Subsystem: "executor",
			Name:      "warnings_total",
			Help:      "Counter of warnings produced during batch execution.",
		}, []string{LblType})
)

// RegisterMetrics registers the metrics which are ONLY used in this
// module.
func RegisterMetrics() {
	prometheus.MustRegister(ExecutorBuildCounter)
	prometheus.MustRegister(ExecutorWarningCounter)
}
