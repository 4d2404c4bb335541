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

package middleware

import (
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
)

// AuthPlugin 有 token 就带上 Bearer 头，服务端返回 401 时清理掉本地的 token
type AuthPlugin struct {
	tokens TokenSource
	logger *elog.Component
}

func NewAuthPlugin(tokens TokenSource) *AuthPlugin {
	return &AuthPlugin{
		tokens: tokens,
		logger: elog.DefaultLogger,
	}
}

func (p *AuthPlugin) Initialize(client *resty.Client) {
	client.OnBeforeRequest(p.beforeRequest)
	client.OnAfterResponse(p.afterResponse)
}

func (p *AuthPlugin) beforeRequest(_ *resty.Client, req *resty.Request) error {
	tok, err := p.tokens.Token(req.Context())
	if err != nil {
		// 拿不到 token 就按照未登录处理，交给服务端决定
		p.logger.Warn("获取 access token 失败", elog.FieldErr(err))
		return nil
	}
	if tok != "" {
		req.SetAuthToken(tok)
	}
	return nil
}

func (p *AuthPlugin) afterResponse(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}
	if err := p.tokens.Clear(resp.Request.Context()); err != nil {
		p.logger.Error("清理 access token 失败", elog.FieldErr(err))
	}
	return nil
}
