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
	"slices"
	"sync"
	"sync/atomic"

	"github.com/ecodeclub/readlog/internal/comment/internal/domain"
)

// PatchResult 局部更新表情的结果
type PatchResult int

const (
	PatchApplied PatchResult = iota
	// PatchNoPage 这个 Scope 还没有缓存
	PatchNoPage
	// PatchStale 缓存已经被更晚发出的请求覆盖了
	PatchStale
	// PatchNotFound 当前缓存的评论树里没有这个评论
	PatchNotFound
)

func (r PatchResult) String() string {
	switch r {
	case PatchApplied:
		return "applied"
	case PatchNoPage:
		return "no_page"
	case PatchStale:
		return "stale"
	case PatchNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

type commentEntry struct {
	page domain.ScopeCommentPage
	// segments 每一段直接评论是哪一次请求写入的，按 start 升序，
	// 第一段就是整页替换时的票号
	segments []segment
	// floor 写入过这一页的最大票号，局部更新也算
	floor uint64
}

type segment struct {
	start  int
	ticket uint64
}

func newCommentEntry(page domain.ScopeCommentPage, ticket uint64) *commentEntry {
	return &commentEntry{
		page:     page,
		segments: []segment{{start: 0, ticket: ticket}},
		floor:    ticket,
	}
}

func (e *commentEntry) replacedAt() uint64 {
	return e.segments[0].ticket
}

// ticketAt 第 idx 个直接评论所在那一段的票号
func (e *commentEntry) ticketAt(idx int) uint64 {
	res := e.segments[0].ticket
	for _, seg := range e.segments {
		if seg.start > idx {
			break
		}
		res = seg.ticket
	}
	return res
}

// CommentCache 按照 Scope 缓存评论树，read 和 semester 各一张表。
// 每一次读写在锁内完成，网络请求期间不持有锁。
// 发请求之前先调用 NextTicket 拿票，写回的时候按照票号判断是否过期。
type CommentCache struct {
	seq    atomic.Uint64
	mu     sync.RWMutex
	tables map[domain.ScopeKind]map[int64]*commentEntry
}

func NewCommentCache() *CommentCache {
	return &CommentCache{
		tables: map[domain.ScopeKind]map[int64]*commentEntry{
			domain.ScopeRead:     {},
			domain.ScopeSemester: {},
		},
	}
}

// NextTicket 单调递增，同一个 CommentCache 上永不重复
func (c *CommentCache) NextTicket() uint64 {
	return c.seq.Add(1)
}

// Get 返回的 Items 和 Pagination 与缓存共享
func (c *CommentCache) Get(scope domain.Scope) (domain.ScopeCommentPage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entry(scope)
	if !ok {
		return domain.ScopeCommentPage{}, false
	}
	return e.page, true
}

// Items 没有缓存的时候返回空切片
func (c *CommentCache) Items(scope domain.Scope) []*domain.Comment {
	page, ok := c.Get(scope)
	if !ok || page.Items == nil {
		return []*domain.Comment{}
	}
	return page.Items
}

func (c *CommentCache) Pagination(scope domain.Scope) domain.Pagination {
	page, ok := c.Get(scope)
	if !ok || page.Pagination == nil {
		return domain.DefaultPagination()
	}
	return *page.Pagination
}

// Total 服务端给出的直接评论总数，没有缓存时为 0
func (c *CommentCache) Total(scope domain.Scope) int64 {
	page, ok := c.Get(scope)
	if !ok || page.Pagination == nil {
		return 0
	}
	return page.Pagination.Total
}

// Replace 整页替换。ticket 不比写入过这一页的任何请求新时丢弃，返回 false
func (c *CommentCache) Replace(scope domain.Scope, ticket uint64, page domain.ScopeCommentPage) bool {
	if !scope.Valid() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entry(scope); ok && ticket <= e.floor {
		return false
	}
	c.tables[scope.Kind][scope.ID] = newCommentEntry(page, ticket)
	return true
}

// Append 把 page 的评论追加到已有的缓存后面，分页信息使用 page 的。
// 没有缓存的时候等同于 Replace。只有整页替换比 ticket 新的时候才丢弃，
// 局部更新表情不影响追加。
func (c *CommentCache) Append(scope domain.Scope, ticket uint64, page domain.ScopeCommentPage) bool {
	if !scope.Valid() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entry(scope)
	if !ok {
		c.tables[scope.Kind][scope.ID] = newCommentEntry(page, ticket)
		return true
	}
	if ticket <= e.replacedAt() {
		return false
	}
	c.tables[scope.Kind][scope.ID] = &commentEntry{
		page: domain.ScopeCommentPage{
			Items:      slices.Concat(e.page.Items, page.Items),
			Pagination: page.Pagination,
		},
		segments: append(slices.Clone(e.segments), segment{start: len(e.page.Items), ticket: ticket}),
		floor:    max(e.floor, ticket),
	}
	return true
}

// PatchReactions 原地更新 commentID 对应节点的表情。
// 这个节点所在的那一段如果是 ticket 之后发出的请求写入的，就不再更新。
// 别的局部更新不影响判断，乱序返回的切换请求都会生效。
// 更新成功之后 floor 提升到 ticket，更早发出的刷新请求不能再覆盖它。
func (c *CommentCache) PatchReactions(scope domain.Scope, ticket uint64,
	commentID int64, state domain.ReactionState) PatchResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entry(scope)
	if !ok {
		return PatchNoPage
	}
	idx := slices.IndexFunc(e.page.Items, func(root *domain.Comment) bool {
		return domain.FindComment([]*domain.Comment{root}, commentID) != nil
	})
	if idx < 0 {
		return PatchNotFound
	}
	if e.ticketAt(idx) > ticket {
		return PatchStale
	}
	domain.PatchReactions(e.page.Items[idx:idx+1], commentID, state)
	e.floor = max(e.floor, ticket)
	return PatchApplied
}

func (c *CommentCache) Clear(scope domain.Scope) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.tables[scope.Kind]; ok {
		delete(t, scope.ID)
	}
}

func (c *CommentCache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for kind := range c.tables {
		c.tables[kind] = map[int64]*commentEntry{}
	}
}

// entry 调用方需要持有锁
func (c *CommentCache) entry(scope domain.Scope) (*commentEntry, bool) {
	t, ok := c.tables[scope.Kind]
	if !ok {
		return nil, false
	}
	e, ok := t[scope.ID]
	return e, ok
}
