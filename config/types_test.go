// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReadlogConfig_WithDefaults(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     ReadlogConfig
		wantRes ReadlogConfig
	}{
		{
			name: "全部默认",
			wantRes: ReadlogConfig{
				API:   APIConfig{BaseURL: DefaultBaseURL, Timeout: DefaultTimeout},
				Redis: RedisConfig{Addr: "localhost:6379"},
				Token: TokenConfig{Key: DefaultTokenKey},
			},
		},
		{
			name: "保留已有配置",
			cfg: ReadlogConfig{
				API:   APIConfig{BaseURL: "https://readlog.example.com/api", Timeout: 3 * time.Second},
				Redis: RedisConfig{Addr: "redis:6379"},
				Token: TokenConfig{Key: "tk"},
				Dump:  DumpConfig{ReadID: 42},
			},
			wantRes: ReadlogConfig{
				API:   APIConfig{BaseURL: "https://readlog.example.com/api", Timeout: 3 * time.Second},
				Redis: RedisConfig{Addr: "redis:6379"},
				Token: TokenConfig{Key: "tk"},
				Dump:  DumpConfig{ReadID: 42},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.cfg.WithDefaults())
		})
	}
}
