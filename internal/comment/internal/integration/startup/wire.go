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

//go:build wireinject

package startup

import (
	"github.com/ecodeclub/readlog/config"
	"github.com/ecodeclub/readlog/internal/comment"
	"github.com/ecodeclub/readlog/internal/pkg/middleware"
	"github.com/ecodeclub/readlog/ioc"
	"github.com/go-resty/resty/v2"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
)

func InitModule(cfg config.APIConfig, tokens middleware.TokenSource) *comment.Module {
	wire.Build(InitRestyClient, comment.InitModule)
	return new(comment.Module)
}

// InitRestyClient 每个测试使用独立的 registry，避免重复注册
func InitRestyClient(cfg config.APIConfig, tokens middleware.TokenSource) *resty.Client {
	return ioc.NewRestyClient(cfg, tokens, prometheus.NewRegistry())
}
