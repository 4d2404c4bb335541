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

package domain

import (
	"fmt"
	"slices"
	"time"
)

// DefaultPageSize 刷新评论、查询点赞用户时默认的分页大小
const DefaultPageSize = 20

type ScopeKind string

const (
	ScopeRead     ScopeKind = "read"
	ScopeSemester ScopeKind = "semester"
)

// Scope 评论所挂载的对象，要么是一次阅读（read），要么是一个学期（semester）
type Scope struct {
	Kind ScopeKind
	ID   int64
}

func ReadScope(id int64) Scope {
	return Scope{Kind: ScopeRead, ID: id}
}

func SemesterScope(id int64) Scope {
	return Scope{Kind: ScopeSemester, ID: id}
}

func (s Scope) Valid() bool {
	return (s.Kind == ScopeRead || s.Kind == ScopeSemester) && s.ID > 0
}

func (s Scope) String() string {
	return fmt.Sprintf("%s:%d", s.Kind, s.ID)
}

type ReactionKind string

const (
	ReactionHeart    ReactionKind = "heart"
	ReactionThumbsUp ReactionKind = "thumbs_up"
	ReactionLaugh    ReactionKind = "laugh"
	ReactionThink    ReactionKind = "think"
	ReactionTarget   ReactionKind = "target"
	ReactionBook     ReactionKind = "book"
	ReactionClap     ReactionKind = "clap"
)

// ReactionKinds 服务端目前接受的全部表情类型，按界面展示顺序排列
func ReactionKinds() []ReactionKind {
	return []ReactionKind{
		ReactionHeart, ReactionThumbsUp, ReactionLaugh, ReactionThink,
		ReactionTarget, ReactionBook, ReactionClap,
	}
}

type User struct {
	ID              int64
	Username        string
	DisplayName     string
	ProfilePhotoURL string
}

// ReactionSummary 某一种表情的聚合结果
type ReactionSummary struct {
	Count int
	// 点过这个表情的用户 ID，服务端不一定返回
	Users []int64
}

// ReactionState 切换表情之后服务端返回的权威状态
type ReactionState struct {
	Reactions            map[ReactionKind]ReactionSummary
	CurrentUserReactions []ReactionKind
}

func (r ReactionState) clone() ReactionState {
	res := ReactionState{
		Reactions:            make(map[ReactionKind]ReactionSummary, len(r.Reactions)),
		CurrentUserReactions: slices.Clone(r.CurrentUserReactions),
	}
	for k, v := range r.Reactions {
		v.Users = slices.Clone(v.Users)
		res.Reactions[k] = v
	}
	return res
}

type Comment struct {
	ID int64
	// ReadID 和 SemesterID 有且只有一个非 0
	ReadID     int64
	SemesterID int64

	UserID int64
	User   User

	// 0 表示直接评论
	ParentCommentID int64

	// 已删除的评论内容为空
	Content   string
	IsDeleted bool
	DeletedAt time.Time

	// 服务端返回的回复，深度不限
	Replies []*Comment

	Reactions            map[ReactionKind]ReactionSummary
	CurrentUserReactions []ReactionKind

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Comment) Scope() Scope {
	if c.ReadID > 0 {
		return ReadScope(c.ReadID)
	}
	if c.SemesterID > 0 {
		return SemesterScope(c.SemesterID)
	}
	return Scope{}
}

func (c *Comment) IsReply() bool {
	return c.ParentCommentID != 0
}

func (c *Comment) ReactionCount(kind ReactionKind) int {
	return c.Reactions[kind].Count
}

// Reacted 当前用户是否点过这个表情
func (c *Comment) Reacted(kind ReactionKind) bool {
	return slices.Contains(c.CurrentUserReactions, kind)
}

type Pagination struct {
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

// DefaultPagination 还没有拉取过的时候对外暴露的分页信息
func DefaultPagination() Pagination {
	return Pagination{Page: 1, PageSize: DefaultPageSize}
}

// ScopeCommentPage 某个 Scope 下一页直接评论（每个都带着自己的回复）
type ScopeCommentPage struct {
	Items      []*Comment
	Pagination *Pagination
}

// ReactionUser 点了某个表情的一条记录
type ReactionUser struct {
	ID           int64
	User         User
	ReactionKind ReactionKind
	CreatedAt    time.Time
}

type ReactionUserPage struct {
	Items      []ReactionUser
	Pagination *Pagination
}

// SearchParams 跨 Scope 搜索评论，零值字段不会发送
type SearchParams struct {
	Query    string
	ReadID   int64
	UserID   int64
	Page     int
	PageSize int
}
