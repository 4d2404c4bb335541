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

package ioc

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/readlog/config"
	"github.com/ecodeclub/readlog/internal/pkg/middleware"
	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
)

func InitTokenSource(ec ecache.Cache, cfg config.ReadlogConfig) middleware.TokenSource {
	return middleware.NewECacheTokenSource(ec, cfg.Token.Key)
}

func InitRestyClient(cfg config.ReadlogConfig, tokens middleware.TokenSource) *resty.Client {
	return NewRestyClient(cfg.API, tokens, prometheus.DefaultRegisterer)
}

// NewRestyClient 调用评论服务的 client，不做重试
func NewRestyClient(cfg config.APIConfig, tokens middleware.TokenSource, reg prometheus.Registerer) *resty.Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	return middleware.Apply(client,
		middleware.NewTracingPlugin(),
		middleware.NewRequestIDPlugin(),
		middleware.NewAuthPlugin(tokens),
		middleware.NewMetricsPlugin(reg),
	)
}
