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

package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// naiveLayout 服务端有时返回不带时区的时间，按照 UTC 处理
const naiveLayout = "2006-01-02T15:04:05.999999999"

type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*t = Timestamp{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, naiveLayout} {
		if v, err := time.Parse(layout, raw); err == nil {
			*t = Timestamp{Time: v}
			return nil
		}
	}
	return fmt.Errorf("无法解析时间 %q", raw)
}

type User struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	DisplayName     string `json:"display_name,omitempty"`
	ProfilePhotoURL string `json:"profile_photo_url,omitempty"`
}

// ReactionSummary 服务端可能只给一个数字，也可能给 {"count": 1, "users": [2]}
type ReactionSummary struct {
	Count int     `json:"count"`
	Users []int64 `json:"users,omitempty"`
}

func (r *ReactionSummary) UnmarshalJSON(data []byte) error {
	var cnt int
	if err := json.Unmarshal(data, &cnt); err == nil {
		*r = ReactionSummary{Count: cnt}
		return nil
	}
	type alias ReactionSummary
	var val alias
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}
	*r = ReactionSummary(val)
	return nil
}

type Comment struct {
	ID                   int64                      `json:"id"`
	ReadID               *int64                     `json:"read_id,omitempty"`
	SemesterID           *int64                     `json:"semester_id,omitempty"`
	UserID               int64                      `json:"user_id"`
	ParentCommentID      *int64                     `json:"parent_comment_id,omitempty"`
	Content              *string                    `json:"content,omitempty"`
	IsDeleted            bool                       `json:"is_deleted"`
	DeletedAt            Timestamp                  `json:"deleted_at,omitempty"`
	User                 User                       `json:"user"`
	Replies              []Comment                  `json:"replies"`
	Reactions            map[string]ReactionSummary `json:"reactions"`
	CurrentUserReactions []string                   `json:"current_user_reactions"`
	CreatedAt            Timestamp                  `json:"created_at"`
	UpdatedAt            Timestamp                  `json:"updated_at,omitempty"`
}

// Page 所有分页接口共用的外层结构
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type CreateCommentReq struct {
	Content         string `json:"content"`
	ParentCommentID *int64 `json:"parent_comment_id"`
	ReadID          *int64 `json:"read_id,omitempty"`
	SemesterID      *int64 `json:"semester_id,omitempty"`
}

type ToggleReactionReq struct {
	ReactionType string `json:"reaction_type"`
}

type ReactionState struct {
	Reactions            map[string]ReactionSummary `json:"reactions"`
	CurrentUserReactions []string                   `json:"current_user_reactions"`
}

type ReactionUser struct {
	ID           int64     `json:"id"`
	User         User      `json:"user"`
	ReactionType string    `json:"reaction_type"`
	CreatedAt    Timestamp `json:"created_at"`
}

type SearchReq struct {
	Q        string
	ReadID   int64
	UserID   int64
	Page     int
	PageSize int
}
