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

import "time"

// ReadlogConfig 对应配置文件里的 readlog 节点
type ReadlogConfig struct {
	API   APIConfig   `yaml:"api"`
	Redis RedisConfig `yaml:"redis"`
	Token TokenConfig `yaml:"token"`
	Dump  DumpConfig  `yaml:"dump"`
}

type APIConfig struct {
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout"`
}

type RedisConfig struct {
	Addr string `yaml:"addr"`
}

type TokenConfig struct {
	// Key 登录之后 access token 在缓存里的 key
	Key string `yaml:"key"`
}

// DumpConfig 诊断程序打印哪个 Scope 的评论
type DumpConfig struct {
	ReadID     int64 `yaml:"readID"`
	SemesterID int64 `yaml:"semesterID"`
	PageSize   int   `yaml:"pageSize"`
}

const (
	DefaultBaseURL  = "http://localhost:8000/api"
	DefaultTimeout  = 10 * time.Second
	DefaultTokenKey = "access_token"
)

// WithDefaults 没有配置的字段使用默认值
func (c ReadlogConfig) WithDefaults() ReadlogConfig {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.Token.Key == "" {
		c.Token.Key = DefaultTokenKey
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	return c
}
