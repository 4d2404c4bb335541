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
	"github.com/go-resty/resty/v2"
	uuid "github.com/lithammer/shortuuid/v4"
)

const RequestIDHeader = "X-Request-Id"

type RequestIDPlugin struct{}

func NewRequestIDPlugin() *RequestIDPlugin {
	return &RequestIDPlugin{}
}

func (p *RequestIDPlugin) Initialize(client *resty.Client) {
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(RequestIDHeader) == "" {
			req.SetHeader(RequestIDHeader, uuid.New())
		}
		return nil
	})
}
