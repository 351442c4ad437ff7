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

// DefaultMaxWarningCount is the warning cap used when no config overrides
// it.
const DefaultMaxWarningCount = 64

// EvalConfig carries the request-level knobs that affect batch
// evaluation. It is shared by every executor of one request and must not
// be mutated after construction.
type EvalConfig struct {
	// PagingSize is the configured per-round-trip row cap of the paging
	// protocol. Zero means paging is disabled.
	PagingSize uint64
	// MaxWarningCount caps how many warnings one context retains.
	MaxWarningCount int
}

// NewEvalConfig creates an EvalConfig with default values.
func NewEvalConfig() *EvalConfig {
	return &EvalConfig{MaxWarningCount: DefaultMaxWarningCount}
}

// EvalContext is the per-executor evaluation context. It accumulates the
// warnings produced locally and merged from upstream results.
type EvalContext struct {
	Cfg      *EvalConfig
	warnings []error
}

// NewEvalContext creates an EvalContext with the given config. A nil
// config falls back to defaults.
func NewEvalContext(cfg *EvalConfig) *EvalContext {
	if cfg == nil {
		cfg = NewEvalConfig()
	}
	return &EvalContext{Cfg: cfg}
}

// AppendWarning appends a warning, dropping it silently once the cap is
// reached.
func (ctx *EvalContext) AppendWarning(err error) {
	if len(ctx.warnings) < ctx.Cfg.MaxWarningCount {
		ctx.warnings = append(ctx.warnings, err)
	}
}

// MergeWarnings merges warnings carried by an upstream result into this
// context.
func (ctx *EvalContext) MergeWarnings(warns []error) {
	for _, w := range warns {
		ctx.AppendWarning(w)
	}
}

// TakeWarnings returns the accumulated warnings and resets the context.
func (ctx *EvalContext) TakeWarnings() []error {
	warns := ctx.warnings
	ctx.warnings = nil
	return warns
}

// WarningCount returns the number of retained warnings.
func (ctx *EvalContext) WarningCount() int {
	return len(ctx.warnings)
}
