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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapCache 只实现了 token 用到的三个方法
type mapCache struct {
	ecache.Cache
	vals   map[string]any
	getErr error
}

func (m *mapCache) Get(_ context.Context, key string) ecache.Value {
	if m.getErr != nil {
		return ecache.Value{AnyValue: ekit.AnyValue{Err: m.getErr}}
	}
	return ecache.Value{AnyValue: ekit.AnyValue{Val: m.vals[key]}}
}

func (m *mapCache) Set(_ context.Context, key string, val any, _ time.Duration) error {
	m.vals[key] = val
	return nil
}

func (m *mapCache) Delete(_ context.Context, keys ...string) (int64, error) {
	var cnt int64
	for _, k := range keys {
		if _, ok := m.vals[k]; ok {
			delete(m.vals, k)
			cnt++
		}
	}
	return cnt, nil
}

func TestECacheTokenSource(t *testing.T) {
	ctx := context.Background()
	mc := &mapCache{vals: map[string]any{}}
	ts := NewECacheTokenSource(mc, "access_token")

	require.NoError(t, ts.SetToken(ctx, "abc", time.Hour))
	assert.Equal(t, "abc", mc.vals["token:access_token"])

	tok, err := ts.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	require.NoError(t, ts.Clear(ctx))
	assert.Empty(t, mc.vals)

	mc.getErr = errors.New("redis down")
	_, err = ts.Token(ctx)
	assert.ErrorIs(t, err, mc.getErr)
}

func TestStaticTokenSource(t *testing.T) {
	ctx := context.Background()
	ts := NewStaticTokenSource("abc")
	tok, err := ts.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	require.NoError(t, ts.Clear(ctx))
	tok, err = ts.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}
