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

package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrValidation = errors.New("评论请求参数非法")
	ErrForbidden  = errors.New("没有权限操作该评论")
	ErrNotFound   = errors.New("评论或评论对象不存在")
	ErrNetwork    = errors.New("请求评论服务失败")
	ErrUnknown    = errors.New("评论服务返回未知错误")

	ErrInvalidScope = fmt.Errorf("%w: 必须指定 read 或者 semester", ErrValidation)
)

// APIError 评论服务返回了非 2xx 响应
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	// Detail 从响应体里提取出来的可读信息
	Detail string
	// Payload 服务端返回的原始响应体
	Payload json.RawMessage
}

func NewAPIError(method, path string, statusCode int, body []byte) *APIError {
	e := &APIError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Detail:     extractDetail(body),
	}
	if json.Valid(body) {
		e.Payload = json.RawMessage(body)
	}
	return e
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s %s 返回 %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s 返回 %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
}

// Kind 按照状态码归类
func (e *APIError) Kind() error {
	switch e.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrUnknown
	}
}

func (e *APIError) Is(target error) bool {
	return e.Kind() == target
}

// extractDetail 服务端的错误响应形如 {"detail": "..."}，
// 参数校验失败时 detail 是一个 [{"msg": "..."}] 数组
func extractDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}
	var msg string
	if err := json.Unmarshal(payload.Detail, &msg); err == nil {
		return msg
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return string(payload.Detail)
}
