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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/readlog/internal/comment/internal/domain"
	"github.com/ecodeclub/readlog/internal/comment/internal/errs"
	"github.com/ecodeclub/readlog/internal/comment/internal/repository/remote"
)

//go:generate mockgen -source=./comment.go -package=commentmocks -destination=../../mocks/comment_repository.mock.go CommentRepository
type CommentRepository interface {
	// List 某个 Scope 下的一页直接评论（带回复）
	List(ctx context.Context, scope domain.Scope, page, pageSize int) (domain.ScopeCommentPage, error)
	// Create 使用 c 的 Scope、Content、ParentCommentID 创建评论
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
	ToggleReaction(ctx context.Context, id int64, kind domain.ReactionKind) (domain.ReactionState, error)
	ReactionUsers(ctx context.Context, id int64, kind domain.ReactionKind, page, pageSize int) (domain.ReactionUserPage, error)
	Search(ctx context.Context, params domain.SearchParams) (domain.ScopeCommentPage, error)
}

type commentRepository struct {
	remote remote.CommentRemote
}

func NewCommentRepository(r remote.CommentRemote) CommentRepository {
	return &commentRepository{remote: r}
}

func (r *commentRepository) List(ctx context.Context, scope domain.Scope, page, pageSize int) (domain.ScopeCommentPage, error) {
	var (
		res remote.Page[remote.Comment]
		err error
	)
	switch scope.Kind {
	case domain.ScopeRead:
		res, err = r.remote.ListReadComments(ctx, scope.ID, page, pageSize)
	case domain.ScopeSemester:
		res, err = r.remote.ListSemesterComments(ctx, scope.ID, page, pageSize)
	default:
		return domain.ScopeCommentPage{}, errs.ErrInvalidScope
	}
	if err != nil {
		return domain.ScopeCommentPage{}, err
	}
	return r.toCommentPage(res), nil
}

func (r *commentRepository) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	req := remote.CreateCommentReq{Content: c.Content}
	if c.ParentCommentID != 0 {
		req.ParentCommentID = &c.ParentCommentID
	}
	scope := c.Scope()
	switch scope.Kind {
	case domain.ScopeRead:
		req.ReadID = &scope.ID
	case domain.ScopeSemester:
		req.SemesterID = &scope.ID
	default:
		return nil, errs.ErrInvalidScope
	}
	res, err := r.remote.CreateComment(ctx, req)
	if err != nil {
		return nil, err
	}
	return r.toDomain(res), nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	return r.remote.DeleteComment(ctx, id)
}

func (r *commentRepository) ToggleReaction(ctx context.Context, id int64, kind domain.ReactionKind) (domain.ReactionState, error) {
	res, err := r.remote.ToggleReaction(ctx, id, string(kind))
	if err != nil {
		return domain.ReactionState{}, err
	}
	return domain.ReactionState{
		Reactions:            r.toReactions(res.Reactions),
		CurrentUserReactions: r.toKinds(res.CurrentUserReactions),
	}, nil
}

func (r *commentRepository) ReactionUsers(ctx context.Context, id int64, kind domain.ReactionKind, page, pageSize int) (domain.ReactionUserPage, error) {
	res, err := r.remote.ListReactionUsers(ctx, id, string(kind), page, pageSize)
	if err != nil {
		return domain.ReactionUserPage{}, err
	}
	return domain.ReactionUserPage{
		Items: slice.Map(res.Items, func(_ int, src remote.ReactionUser) domain.ReactionUser {
			return domain.ReactionUser{
				ID:           src.ID,
				User:         r.toUser(src.User),
				ReactionKind: domain.ReactionKind(src.ReactionType),
				CreatedAt:    src.CreatedAt.Time,
			}
		}),
		Pagination: toPagination(res),
	}, nil
}

func (r *commentRepository) Search(ctx context.Context, params domain.SearchParams) (domain.ScopeCommentPage, error) {
	res, err := r.remote.SearchComments(ctx, remote.SearchReq{
		Q:        params.Query,
		ReadID:   params.ReadID,
		UserID:   params.UserID,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
	if err != nil {
		return domain.ScopeCommentPage{}, err
	}
	return r.toCommentPage(res), nil
}

func (r *commentRepository) toCommentPage(res remote.Page[remote.Comment]) domain.ScopeCommentPage {
	return domain.ScopeCommentPage{
		Items: slice.Map(res.Items, func(_ int, src remote.Comment) *domain.Comment {
			return r.toDomain(src)
		}),
		Pagination: toPagination(res),
	}
}

func (r *commentRepository) toDomain(c remote.Comment) *domain.Comment {
	res := &domain.Comment{
		ID:                   c.ID,
		UserID:               c.UserID,
		User:                 r.toUser(c.User),
		IsDeleted:            c.IsDeleted,
		DeletedAt:            c.DeletedAt.Time,
		Reactions:            r.toReactions(c.Reactions),
		CurrentUserReactions: r.toKinds(c.CurrentUserReactions),
		CreatedAt:            c.CreatedAt.Time,
		UpdatedAt:            c.UpdatedAt.Time,
		// 树的形状完全以服务端返回的为准
		Replies: slice.Map(c.Replies, func(_ int, src remote.Comment) *domain.Comment {
			return r.toDomain(src)
		}),
	}
	if c.ReadID != nil {
		res.ReadID = *c.ReadID
	}
	if c.SemesterID != nil {
		res.SemesterID = *c.SemesterID
	}
	if c.ParentCommentID != nil {
		res.ParentCommentID = *c.ParentCommentID
	}
	if c.Content != nil {
		res.Content = *c.Content
	}
	return res
}

func (r *commentRepository) toUser(u remote.User) domain.User {
	return domain.User{
		ID:              u.ID,
		Username:        u.Username,
		DisplayName:     u.DisplayName,
		ProfilePhotoURL: u.ProfilePhotoURL,
	}
}

func (r *commentRepository) toReactions(src map[string]remote.ReactionSummary) map[domain.ReactionKind]domain.ReactionSummary {
	res := make(map[domain.ReactionKind]domain.ReactionSummary, len(src))
	for k, v := range src {
		res[domain.ReactionKind(k)] = domain.ReactionSummary{Count: v.Count, Users: v.Users}
	}
	return res
}

func (r *commentRepository) toKinds(src []string) []domain.ReactionKind {
	return slice.Map(src, func(_ int, s string) domain.ReactionKind {
		return domain.ReactionKind(s)
	})
}

func toPagination[T any](p remote.Page[T]) *domain.Pagination {
	return &domain.Pagination{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}
