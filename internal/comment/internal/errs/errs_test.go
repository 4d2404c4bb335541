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
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string

		wantKind    error
		wantDetail  string
		wantPayload bool
	}{
		{
			name:        "内容为空",
			statusCode:  http.StatusBadRequest,
			body:        `{"detail":"content must not be empty"}`,
			wantKind:    ErrValidation,
			wantDetail:  "content must not be empty",
			wantPayload: true,
		},
		{
			name:        "参数校验失败",
			statusCode:  http.StatusUnprocessableEntity,
			body:        `{"detail":[{"loc":["body","content"],"msg":"too short"},{"msg":"missing scope"}]}`,
			wantKind:    ErrValidation,
			wantDetail:  "too short; missing scope",
			wantPayload: true,
		},
		{
			name:        "没有权限",
			statusCode:  http.StatusForbidden,
			body:        `{"detail":"Not authorized to delete this comment"}`,
			wantKind:    ErrForbidden,
			wantDetail:  "Not authorized to delete this comment",
			wantPayload: true,
		},
		{
			name:        "不存在",
			statusCode:  http.StatusNotFound,
			body:        `{"detail":"Read not found"}`,
			wantKind:    ErrNotFound,
			wantDetail:  "Read not found",
			wantPayload: true,
		},
		{
			name:       "非 JSON 响应",
			statusCode: http.StatusBadGateway,
			body:       "bad gateway\n",
			wantKind:   ErrUnknown,
			wantDetail: "bad gateway",
		},
		{
			name:        "未登录",
			statusCode:  http.StatusUnauthorized,
			body:        `{"detail":{"reason":"expired"}}`,
			wantKind:    ErrUnknown,
			wantDetail:  `{"reason":"expired"}`,
			wantPayload: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewAPIError(http.MethodGet, "/comments/read/1", tc.statusCode, []byte(tc.body))
			assert.Equal(t, tc.wantDetail, err.Detail)
			assert.Equal(t, tc.wantPayload, err.Payload != nil)

			wrapped := fmt.Errorf("拉取评论失败: %w", err)
			assert.ErrorIs(t, wrapped, tc.wantKind)
			for _, other := range []error{ErrValidation, ErrForbidden, ErrNotFound, ErrUnknown} {
				if other != tc.wantKind {
					assert.False(t, errors.Is(wrapped, other))
				}
			}
			var apiErr *APIError
			assert.True(t, errors.As(wrapped, &apiErr))
			assert.Equal(t, tc.statusCode, apiErr.StatusCode)
		})
	}
}

func TestErrInvalidScope(t *testing.T) {
	assert.ErrorIs(t, ErrInvalidScope, ErrValidation)
	assert.False(t, errors.Is(ErrValidation, ErrInvalidScope))
}
