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

package cache

import (
	"testing"

	"github.com/ecodeclub/readlog/internal/comment/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionUserCache(t *testing.T) {
	c := NewReactionUserCache()
	page := func(userIDs ...int64) domain.ReactionUserPage {
		res := domain.ReactionUserPage{Pagination: &domain.Pagination{Page: 1, PageSize: 20, Total: int64(len(userIDs)), TotalPages: 1}}
		for i, id := range userIDs {
			res.Items = append(res.Items, domain.ReactionUser{ID: int64(i + 1), User: domain.User{ID: id}, ReactionKind: domain.ReactionHeart})
		}
		return res
	}

	_, ok := c.Get(1, domain.ReactionHeart)
	assert.False(t, ok)

	old := c.NextTicket()
	require.True(t, c.Replace(1, domain.ReactionHeart, c.NextTicket(), page(7, 8)))
	require.True(t, c.Replace(1, domain.ReactionClap, c.NextTicket(), page(9)))
	// 晚到的旧响应
	assert.False(t, c.Replace(1, domain.ReactionHeart, old, page(1)))

	got, ok := c.Get(1, domain.ReactionHeart)
	require.True(t, ok)
	assert.Len(t, got.Items, 2)
	assert.Equal(t, int64(7), got.Items[0].User.ID)

	c.Clear(1, domain.ReactionHeart)
	_, ok = c.Get(1, domain.ReactionHeart)
	assert.False(t, ok)
	_, ok = c.Get(1, domain.ReactionClap)
	assert.True(t, ok)

	c.ClearAll()
	_, ok = c.Get(1, domain.ReactionClap)
	assert.False(t, ok)
}
