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

package service

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/ecodeclub/readlog/internal/comment/internal/domain"
	"github.com/ecodeclub/readlog/internal/comment/internal/errs"
	"github.com/ecodeclub/readlog/internal/comment/internal/repository"
	"github.com/ecodeclub/readlog/internal/comment/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
)

type CommentService interface {
	// FetchComments 拉取一页评论，成功之后整页替换本地缓存
	FetchComments(ctx context.Context, scope domain.Scope, page, pageSize int) (domain.ScopeCommentPage, error)
	// LoadMoreComments 拉取一页评论并且追加到本地缓存后面
	LoadMoreComments(ctx context.Context, scope domain.Scope, page, pageSize int) (domain.ScopeCommentPage, error)
	// CreateComment 创建评论或者回复，成功之后重新拉取第一页。
	// 创建成功但是刷新失败的时候，同时返回创建的评论和刷新的错误
	CreateComment(ctx context.Context, scope domain.Scope, content string, parentCommentID int64) (*domain.Comment, error)
	// DeleteComment 成功之后重新拉取 scope 的第一页，scope 为零值时不刷新
	DeleteComment(ctx context.Context, commentID int64, scope domain.Scope) error
	// ToggleReaction 以服务端返回的结果为准，只更新 scope 缓存里的那一个评论
	ToggleReaction(ctx context.Context, commentID int64, kind domain.ReactionKind, scope domain.Scope) (domain.ReactionState, error)
	FetchReactionUsers(ctx context.Context, commentID int64, kind domain.ReactionKind, page, pageSize int) (domain.ReactionUserPage, error)
	// SearchComments 结果不缓存
	SearchComments(ctx context.Context, params domain.SearchParams) (domain.ScopeCommentPage, error)
	// ClearComments scope 为 nil 的时候清空全部评论缓存
	ClearComments(scope *domain.Scope) error

	Comments(scope domain.Scope) []*domain.Comment
	Pagination(scope domain.Scope) domain.Pagination
	TotalCommentCount(scope domain.Scope) int64
	ReactionUsers(commentID int64, kind domain.ReactionKind) (domain.ReactionUserPage, bool)
	// Loading 是否还有没结束的请求
	Loading() bool
}

type commentService struct {
	repo          repository.CommentRepository
	comments      *cache.CommentCache
	reactionUsers *cache.ReactionUserCache
	inflight      atomic.Int64
	logger        *elog.Component
}

func NewCommentService(repo repository.CommentRepository,
	comments *cache.CommentCache,
	reactionUsers *cache.ReactionUserCache) CommentService {
	return &commentService{
		repo:          repo,
		comments:      comments,
		reactionUsers: reactionUsers,
		logger:        elog.DefaultLogger.With(elog.FieldComponent("CommentService")),
	}
}

func (s *commentService) FetchComments(ctx context.Context, scope domain.Scope, page, pageSize int) (domain.ScopeCommentPage, error) {
	return s.fetch(ctx, scope, page, pageSize, s.comments.Replace)
}

func (s *commentService) LoadMoreComments(ctx context.Context, scope domain.Scope, page, pageSize int) (domain.ScopeCommentPage, error) {
	return s.fetch(ctx, scope, page, pageSize, s.comments.Append)
}

func (s *commentService) fetch(ctx context.Context, scope domain.Scope, page, pageSize int,
	store func(scope domain.Scope, ticket uint64, page domain.ScopeCommentPage) bool) (domain.ScopeCommentPage, error) {
	if !scope.Valid() {
		return domain.ScopeCommentPage{}, errs.ErrInvalidScope
	}
	page, pageSize = normalize(page, pageSize)
	defer s.track()()

	ticket := s.comments.NextTicket()
	res, err := s.repo.List(ctx, scope, page, pageSize)
	if err != nil {
		s.logger.Error("拉取评论失败",
			elog.FieldErr(err),
			elog.String("scope", scope.String()),
			elog.Int("page", page))
		return domain.ScopeCommentPage{}, err
	}
	if err = ctx.Err(); err != nil {
		return domain.ScopeCommentPage{}, err
	}
	if !store(scope, ticket, res) {
		s.logger.Debug("丢弃过期的评论页",
			elog.String("scope", scope.String()),
			elog.Int("page", page))
	}
	return res, nil
}

func (s *commentService) CreateComment(ctx context.Context, scope domain.Scope, content string, parentCommentID int64) (*domain.Comment, error) {
	c := domain.Comment{
		Content:         strings.TrimSpace(content),
		ParentCommentID: parentCommentID,
	}
	switch {
	case !scope.Valid():
		return nil, errs.ErrInvalidScope
	case scope.Kind == domain.ScopeRead:
		c.ReadID = scope.ID
	default:
		c.SemesterID = scope.ID
	}

	defer s.track()()
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		s.logger.Error("创建评论失败",
			elog.FieldErr(err),
			elog.String("scope", scope.String()),
			elog.Int64("parentCommentId", parentCommentID))
		return nil, err
	}
	_, err = s.FetchComments(ctx, scope, 1, domain.DefaultPageSize)
	return created, err
}

func (s *commentService) DeleteComment(ctx context.Context, commentID int64, scope domain.Scope) error {
	defer s.track()()
	err := s.repo.Delete(ctx, commentID)
	if err != nil {
		s.logger.Error("删除评论失败",
			elog.FieldErr(err),
			elog.Int64("commentId", commentID))
		return err
	}
	if !scope.Valid() {
		return nil
	}
	_, err = s.FetchComments(ctx, scope, 1, domain.DefaultPageSize)
	return err
}

func (s *commentService) ToggleReaction(ctx context.Context, commentID int64, kind domain.ReactionKind, scope domain.Scope) (domain.ReactionState, error) {
	defer s.track()()
	ticket := s.comments.NextTicket()
	state, err := s.repo.ToggleReaction(ctx, commentID, kind)
	if err != nil {
		s.logger.Error("切换表情失败",
			elog.FieldErr(err),
			elog.Int64("commentId", commentID),
			elog.String("reaction", string(kind)))
		return domain.ReactionState{}, err
	}
	if err = ctx.Err(); err != nil {
		return domain.ReactionState{}, err
	}
	if !scope.Valid() {
		return state, nil
	}
	if res := s.comments.PatchReactions(scope, ticket, commentID, state); res != cache.PatchApplied {
		s.logger.Debug("没有更新本地缓存的表情",
			elog.String("scope", scope.String()),
			elog.Int64("commentId", commentID),
			elog.String("result", res.String()))
	}
	return state, nil
}

func (s *commentService) FetchReactionUsers(ctx context.Context, commentID int64, kind domain.ReactionKind, page, pageSize int) (domain.ReactionUserPage, error) {
	page, pageSize = normalize(page, pageSize)
	defer s.track()()
	ticket := s.reactionUsers.NextTicket()
	res, err := s.repo.ReactionUsers(ctx, commentID, kind, page, pageSize)
	if err != nil {
		s.logger.Error("拉取点赞用户失败",
			elog.FieldErr(err),
			elog.Int64("commentId", commentID),
			elog.String("reaction", string(kind)))
		return domain.ReactionUserPage{}, err
	}
	if err = ctx.Err(); err != nil {
		return domain.ReactionUserPage{}, err
	}
	s.reactionUsers.Replace(commentID, kind, ticket, res)
	return res, nil
}

func (s *commentService) SearchComments(ctx context.Context, params domain.SearchParams) (domain.ScopeCommentPage, error) {
	defer s.track()()
	res, err := s.repo.Search(ctx, params)
	if err != nil {
		s.logger.Error("搜索评论失败", elog.FieldErr(err), elog.String("q", params.Query))
	}
	return res, err
}

func (s *commentService) ClearComments(scope *domain.Scope) error {
	if scope == nil {
		s.comments.ClearAll()
		return nil
	}
	if !scope.Valid() {
		return errs.ErrInvalidScope
	}
	s.comments.Clear(*scope)
	return nil
}

func (s *commentService) Comments(scope domain.Scope) []*domain.Comment {
	return s.comments.Items(scope)
}

func (s *commentService) Pagination(scope domain.Scope) domain.Pagination {
	return s.comments.Pagination(scope)
}

func (s *commentService) TotalCommentCount(scope domain.Scope) int64 {
	return s.comments.Total(scope)
}

func (s *commentService) ReactionUsers(commentID int64, kind domain.ReactionKind) (domain.ReactionUserPage, bool) {
	return s.reactionUsers.Get(commentID, kind)
}

func (s *commentService) Loading() bool {
	return s.inflight.Load() > 0
}

// track 用法 defer s.track()()
func (s *commentService) track() func() {
	s.inflight.Add(1)
	return func() {
		s.inflight.Add(-1)
	}
}

func normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return page, pageSize
}
