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

package ectx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	_, ok := OperationFromCtx(context.Background())
	assert.False(t, ok)

	ctx := CtxWithOperation(context.Background(), "list_comments")
	op, ok := OperationFromCtx(ctx)
	assert.True(t, ok)
	assert.Equal(t, "list_comments", op)

	// 其它包用同名字符串做 key 不会串
	ctx = context.WithValue(context.Background(), "operation", "other")
	_, ok = OperationFromCtx(ctx)
	assert.False(t, ok)
}
