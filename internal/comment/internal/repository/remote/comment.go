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
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ecodeclub/readlog/internal/comment/internal/errs"
	"github.com/ecodeclub/readlog/internal/pkg/ectx"
	"github.com/go-resty/resty/v2"
)

const (
	opListReadComments     = "list_read_comments"
	opListSemesterComments = "list_semester_comments"
	opCreateComment        = "create_comment"
	opDeleteComment        = "delete_comment"
	opToggleReaction       = "toggle_reaction"
	opListReactionUsers    = "list_reaction_users"
	opSearchComments       = "search_comments"
)

//go:generate mockgen -source=./comment.go -package=commentmocks -destination=../../../mocks/comment_remote.mock.go CommentRemote

// CommentRemote 评论服务的 REST 接口，一个方法对应一个接口
type CommentRemote interface {
	// ListReadComments 某次阅读下的一页直接评论，每个评论带着回复
	ListReadComments(ctx context.Context, readID int64, page, pageSize int) (Page[Comment], error)
	// ListSemesterComments 某个学期下的一页直接评论
	ListSemesterComments(ctx context.Context, semesterID int64, page, pageSize int) (Page[Comment], error)
	CreateComment(ctx context.Context, req CreateCommentReq) (Comment, error)
	DeleteComment(ctx context.Context, id int64) error
	// ToggleReaction 切换当前用户在评论上的某个表情，服务端决定是加还是删
	ToggleReaction(ctx context.Context, id int64, reactionType string) (ReactionState, error)
	ListReactionUsers(ctx context.Context, id int64, reactionType string, page, pageSize int) (Page[ReactionUser], error)
	SearchComments(ctx context.Context, req SearchReq) (Page[Comment], error)
}

type restyCommentRemote struct {
	client *resty.Client
}

// NewRestyCommentRemote client 需要已经设置好 BaseURL 以及鉴权等插件
func NewRestyCommentRemote(client *resty.Client) CommentRemote {
	return &restyCommentRemote{client: client}
}

func (r *restyCommentRemote) ListReadComments(ctx context.Context, readID int64, page, pageSize int) (Page[Comment], error) {
	var res Page[Comment]
	err := r.do(ctx, opListReadComments, http.MethodGet, "/comments/read/{readId}", &res, func(req *resty.Request) {
		req.SetPathParam("readId", strconv.FormatInt(readID, 10)).
			SetQueryParams(pageParams(page, pageSize))
	})
	return res, err
}

func (r *restyCommentRemote) ListSemesterComments(ctx context.Context, semesterID int64, page, pageSize int) (Page[Comment], error) {
	var res Page[Comment]
	err := r.do(ctx, opListSemesterComments, http.MethodGet, "/comments/semester/{semesterId}", &res, func(req *resty.Request) {
		req.SetPathParam("semesterId", strconv.FormatInt(semesterID, 10)).
			SetQueryParams(pageParams(page, pageSize))
	})
	return res, err
}

func (r *restyCommentRemote) CreateComment(ctx context.Context, body CreateCommentReq) (Comment, error) {
	var res Comment
	err := r.do(ctx, opCreateComment, http.MethodPost, "/comments", &res, func(req *resty.Request) {
		req.SetBody(body)
	})
	return res, err
}

func (r *restyCommentRemote) DeleteComment(ctx context.Context, id int64) error {
	return r.do(ctx, opDeleteComment, http.MethodDelete, "/comments/{commentId}", nil, func(req *resty.Request) {
		req.SetPathParam("commentId", strconv.FormatInt(id, 10))
	})
}

func (r *restyCommentRemote) ToggleReaction(ctx context.Context, id int64, reactionType string) (ReactionState, error) {
	var res ReactionState
	err := r.do(ctx, opToggleReaction, http.MethodPost, "/comments/{commentId}/reactions", &res, func(req *resty.Request) {
		req.SetPathParam("commentId", strconv.FormatInt(id, 10)).
			SetBody(ToggleReactionReq{ReactionType: reactionType})
	})
	return res, err
}

func (r *restyCommentRemote) ListReactionUsers(ctx context.Context, id int64, reactionType string, page, pageSize int) (Page[ReactionUser], error) {
	var res Page[ReactionUser]
	err := r.do(ctx, opListReactionUsers, http.MethodGet, "/comments/{commentId}/reactions", &res, func(req *resty.Request) {
		req.SetPathParam("commentId", strconv.FormatInt(id, 10)).
			SetQueryParams(pageParams(page, pageSize)).
			SetQueryParam("reaction_type", reactionType)
	})
	return res, err
}

func (r *restyCommentRemote) SearchComments(ctx context.Context, sr SearchReq) (Page[Comment], error) {
	var res Page[Comment]
	err := r.do(ctx, opSearchComments, http.MethodGet, "/comments/search", &res, func(req *resty.Request) {
		req.SetQueryParam("q", sr.Q)
		if sr.ReadID > 0 {
			req.SetQueryParam("read_id", strconv.FormatInt(sr.ReadID, 10))
		}
		if sr.UserID > 0 {
			req.SetQueryParam("user_id", strconv.FormatInt(sr.UserID, 10))
		}
		if sr.Page > 0 {
			req.SetQueryParam("page", strconv.Itoa(sr.Page))
		}
		if sr.PageSize > 0 {
			req.SetQueryParam("page_size", strconv.Itoa(sr.PageSize))
		}
	})
	return res, err
}

// do 所有请求都从这里发出去：传输失败包装成 ErrNetwork，非 2xx 转成 *errs.APIError。
// 这一层不做任何重试。
func (r *restyCommentRemote) do(ctx context.Context, op, method, path string,
	result any, build func(req *resty.Request)) error {
	req := r.client.R().SetContext(ectx.CtxWithOperation(ctx, op))
	if result != nil {
		req.SetResult(result).ForceContentType("application/json")
	}
	build(req)
	resp, err := req.Execute(method, path)
	if err != nil {
		// 响应已经拿到，只是响应体解析失败
		if resp != nil && resp.RawResponse != nil && resp.IsSuccess() {
			return fmt.Errorf("%w: 解析 %s %s 的响应失败: %w", errs.ErrUnknown, method, path, err)
		}
		return fmt.Errorf("%w: %s %s: %w", errs.ErrNetwork, method, path, err)
	}
	if !resp.IsSuccess() {
		return errs.NewAPIError(method, path, resp.StatusCode(), resp.Body())
	}
	return nil
}

func pageParams(page, pageSize int) map[string]string {
	return map[string]string{
		"page":      strconv.Itoa(page),
		"page_size": strconv.Itoa(pageSize),
	}
}
