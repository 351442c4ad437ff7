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

package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/pingcap/veccop/pkg/expression"
)

// Config is the batch coprocessor configuration.
type Config struct {
	// PagingSize limits how many rows one coprocessor round-trip may
	// return. 0 disables paging.
	PagingSize uint64 `toml:"paging-size"`
	// MaxWarningCount caps how many warnings one request retains.
	MaxWarningCount int `toml:"max-warning-count"`
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		PagingSize:      0,
		MaxWarningCount: expression.DefaultMaxWarningCount,
	}
}

// Load parses the TOML file at path into the config.
func (c *Config) Load(path string) error {
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Trace(err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("unknown configuration option %q", undecoded[0].String())
	}
	if err := c.Valid(); err != nil {
		return errors.Trace(err)
	}
	log.Info("configuration loaded",
		zap.String("file", path),
		zap.Uint64("pagingSize", c.PagingSize),
		zap.Int("maxWarningCount", c.MaxWarningCount))
	return nil
}

// Valid checks whether the config is valid.
func (c *Config) Valid() error {
	if c.MaxWarningCount < 0 {
		return errors.Errorf("max-warning-count must not be negative, got %d", c.MaxWarningCount)
	}
	return nil
}

// EvalConfig converts the config into the evaluation config consumed by
// the executors.
func (c *Config) EvalConfig() *expression.EvalConfig {
	cfg := expression.NewEvalConfig()
	cfg.PagingSize = c.PagingSize
	cfg.MaxWarningCount = c.MaxWarningCount
	return cfg
}
