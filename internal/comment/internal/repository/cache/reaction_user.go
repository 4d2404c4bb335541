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
	"sync"
	"sync/atomic"

	"github.com/ecodeclub/readlog/internal/comment/internal/domain"
)

type reactionUserKey struct {
	commentID int64
	kind      domain.ReactionKind
}

type reactionUserEntry struct {
	page  domain.ReactionUserPage
	stamp uint64
}

// ReactionUserCache 缓存某个评论某种表情的点赞用户，只保留最近一次拉取的那一页
type ReactionUserCache struct {
	seq     atomic.Uint64
	mu      sync.RWMutex
	entries map[reactionUserKey]reactionUserEntry
}

func NewReactionUserCache() *ReactionUserCache {
	return &ReactionUserCache{entries: map[reactionUserKey]reactionUserEntry{}}
}

func (c *ReactionUserCache) NextTicket() uint64 {
	return c.seq.Add(1)
}

func (c *ReactionUserCache) Get(commentID int64, kind domain.ReactionKind) (domain.ReactionUserPage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[reactionUserKey{commentID: commentID, kind: kind}]
	return e.page, ok
}

func (c *ReactionUserCache) Replace(commentID int64, kind domain.ReactionKind,
	ticket uint64, page domain.ReactionUserPage) bool {
	key := reactionUserKey{commentID: commentID, kind: kind}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && ticket <= e.stamp {
		return false
	}
	c.entries[key] = reactionUserEntry{page: page, stamp: ticket}
	return true
}

func (c *ReactionUserCache) Clear(commentID int64, kind domain.ReactionKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, reactionUserKey{commentID: commentID, kind: kind})
}

func (c *ReactionUserCache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[reactionUserKey]reactionUserEntry{}
}
