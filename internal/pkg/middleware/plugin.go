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

import "github.com/go-resty/resty/v2"

// Plugin 一组注册到 resty.Client 上的钩子
type Plugin interface {
	Initialize(client *resty.Client)
}

// Apply 按顺序注册插件，请求前的钩子按照注册的顺序执行
func Apply(client *resty.Client, plugins ...Plugin) *resty.Client {
	for _, p := range plugins {
		p.Initialize(client)
	}
	return client
}
