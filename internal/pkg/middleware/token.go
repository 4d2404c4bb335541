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
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

// TokenSource 提供调用评论服务时使用的 access token
//
//go:generate mockgen -source=./token.go -package=middlewaremocks -destination=./mocks/token.mock.go TokenSource
type TokenSource interface {
	// Token 没有登录的时候返回空字符串
	Token(ctx context.Context) (string, error)
	// Clear 服务端拒绝了 token 之后调用
	Clear(ctx context.Context) error
}

// ECacheTokenSource 登录流程把 token 写进共享缓存，这里只负责读取和清理
type ECacheTokenSource struct {
	ec  ecache.Cache
	key string
}

func NewECacheTokenSource(ec ecache.Cache, key string) *ECacheTokenSource {
	return &ECacheTokenSource{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "token:",
		},
		key: key,
	}
}

func (s *ECacheTokenSource) Token(ctx context.Context) (string, error) {
	val := s.ec.Get(ctx, s.key)
	if val.KeyNotFound() {
		return "", nil
	}
	if val.Err != nil {
		return "", errors.Wrap(val.Err, "读取 access token 失败")
	}
	tok, err := val.String()
	if err != nil {
		return "", errors.Wrap(err, "access token 格式错误")
	}
	return tok, nil
}

func (s *ECacheTokenSource) SetToken(ctx context.Context, token string, expiration time.Duration) error {
	return errors.Wrap(s.ec.Set(ctx, s.key, token, expiration), "保存 access token 失败")
}

func (s *ECacheTokenSource) Clear(ctx context.Context) error {
	_, err := s.ec.Delete(ctx, s.key)
	return errors.Wrap(err, "清理 access token 失败")
}

// StaticTokenSource 固定的 token，诊断工具和测试使用
type StaticTokenSource struct {
	mu    sync.RWMutex
	token string
}

func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

func (s *StaticTokenSource) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *StaticTokenSource) Clear(_ context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}
