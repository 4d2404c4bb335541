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

package readlogsrv

// 这里的结构体模拟真实服务端的响应格式，时间不带时区

type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
}

type Reaction struct {
	Count int     `json:"count"`
	Users []int64 `json:"users"`
}

type Comment struct {
	ID                   int64               `json:"id"`
	ReadID               *int64              `json:"read_id"`
	SemesterID           *int64              `json:"semester_id"`
	UserID               int64               `json:"user_id"`
	ParentCommentID      *int64              `json:"parent_comment_id"`
	Content              *string             `json:"content"`
	IsDeleted            bool                `json:"is_deleted"`
	DeletedAt            *string             `json:"deleted_at"`
	User                 User                `json:"user"`
	Replies              []Comment           `json:"replies"`
	Reactions            map[string]Reaction `json:"reactions"`
	CurrentUserReactions []string            `json:"current_user_reactions"`
	CreatedAt            string              `json:"created_at"`
	UpdatedAt            string              `json:"updated_at"`
}

type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type ReactionUser struct {
	ID           int64  `json:"id"`
	User         User   `json:"user"`
	ReactionType string `json:"reaction_type"`
	CreatedAt    string `json:"created_at"`
}

type ReactionState struct {
	Reactions            map[string]Reaction `json:"reactions"`
	CurrentUserReactions []string            `json:"current_user_reactions"`
}

type createCommentReq struct {
	Content         string `json:"content"`
	ParentCommentID *int64 `json:"parent_comment_id"`
	ReadID          *int64 `json:"read_id"`
	SemesterID      *int64 `json:"semester_id"`
}

type toggleReactionReq struct {
	ReactionType string `json:"reaction_type"`
}

// Seed 直接写入服务端的评论，Scope 二选一
type Seed struct {
	ReadID          int64
	SemesterID      int64
	UserID          int64
	ParentCommentID int64
	Content         string
}

// Request 服务端收到的请求
type Request struct {
	Method string
	// Route gin 的路由，例如 /api/comments/:id
	Route string
	Path  string
	Token string
}
