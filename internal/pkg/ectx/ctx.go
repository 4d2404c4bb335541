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

import "context"

type operationContextType string

var (
	operationCtxKey operationContextType = "operation"
)

// OperationFromCtx 取出远程调用的逻辑名字，例如 list_comments，
// 用作指标和链路的标签，避免直接使用带 ID 的 URL
func OperationFromCtx(ctx context.Context) (string, bool) {
	op := ctx.Value(operationCtxKey)
	if op == nil {
		return "", false
	}
	v, ok := op.(string)
	return v, ok
}

func CtxWithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationCtxKey, op)
}
