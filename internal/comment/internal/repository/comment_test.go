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
	"testing"
	"time"

	"github.com/ecodeclub/readlog/internal/comment/internal/domain"
	"github.com/ecodeclub/readlog/internal/comment/internal/errs"
	"github.com/ecodeclub/readlog/internal/comment/internal/repository/remote"
	commentmocks "github.com/ecodeclub/readlog/internal/comment/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommentRepository_List(t *testing.T) {
	created := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	remotePage := remote.Page[remote.Comment]{
		Items: []remote.Comment{
			{
				ID:      1,
				ReadID:  ptr[int64](42),
				UserID:  7,
				Content: ptr("好书"),
				User:    remote.User{ID: 7, Username: "ming"},
				Replies: []remote.Comment{
					{
						ID:              2,
						ReadID:          ptr[int64](42),
						ParentCommentID: ptr[int64](1),
						IsDeleted:       true,
						Reactions:       map[string]remote.ReactionSummary{"heart": {Count: 1}},
					},
				},
				Reactions:            map[string]remote.ReactionSummary{"like": {Count: 2, Users: []int64{7, 8}}},
				CurrentUserReactions: []string{"like"},
				CreatedAt:            remote.Timestamp{Time: created},
			},
		},
		Page: 1, PageSize: 20, Total: 1, TotalPages: 1,
	}

	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) remote.CommentRemote
		scope   domain.Scope
		wantErr error
		wantRes domain.ScopeCommentPage
	}{
		{
			name: "阅读",
			mock: func(ctrl *gomock.Controller) remote.CommentRemote {
				r := commentmocks.NewMockCommentRemote(ctrl)
				r.EXPECT().ListReadComments(gomock.Any(), int64(42), 1, 20).Return(remotePage, nil)
				return r
			},
			scope: domain.ReadScope(42),
			wantRes: domain.ScopeCommentPage{
				Items: []*domain.Comment{
					{
						ID:      1,
						ReadID:  42,
						UserID:  7,
						Content: "好书",
						User:    domain.User{ID: 7, Username: "ming"},
						Replies: []*domain.Comment{
							{
								ID:                   2,
								ReadID:               42,
								ParentCommentID:      1,
								IsDeleted:            true,
								Replies:              []*domain.Comment{},
								Reactions:            map[domain.ReactionKind]domain.ReactionSummary{"heart": {Count: 1}},
								CurrentUserReactions: []domain.ReactionKind{},
							},
						},
						Reactions:            map[domain.ReactionKind]domain.ReactionSummary{"like": {Count: 2, Users: []int64{7, 8}}},
						CurrentUserReactions: []domain.ReactionKind{"like"},
						CreatedAt:            created,
					},
				},
				Pagination: &domain.Pagination{Page: 1, PageSize: 20, Total: 1, TotalPages: 1},
			},
		},
		{
			name: "学期",
			mock: func(ctrl *gomock.Controller) remote.CommentRemote {
				r := commentmocks.NewMockCommentRemote(ctrl)
				r.EXPECT().ListSemesterComments(gomock.Any(), int64(3), 1, 20).
					Return(remote.Page[remote.Comment]{Page: 1, PageSize: 20}, nil)
				return r
			},
			scope: domain.SemesterScope(3),
			wantRes: domain.ScopeCommentPage{
				Items:      []*domain.Comment{},
				Pagination: &domain.Pagination{Page: 1, PageSize: 20},
			},
		},
		{
			name: "非法的 Scope",
			mock: func(ctrl *gomock.Controller) remote.CommentRemote {
				return commentmocks.NewMockCommentRemote(ctrl)
			},
			scope:   domain.Scope{Kind: "book", ID: 1},
			wantErr: errs.ErrInvalidScope,
		},
		{
			name: "服务端错误",
			mock: func(ctrl *gomock.Controller) remote.CommentRemote {
				r := commentmocks.NewMockCommentRemote(ctrl)
				r.EXPECT().ListReadComments(gomock.Any(), int64(42), 1, 20).
					Return(remote.Page[remote.Comment]{}, errs.ErrNotFound)
				return r
			},
			scope:   domain.ReadScope(42),
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCommentRepository(tc.mock(ctrl))
			res, err := repo.List(context.Background(), tc.scope, 1, 20)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestCommentRepository_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) remote.CommentRemote
		input   domain.Comment
		wantErr error
		wantID  int64
	}{
		{
			name: "阅读下的直接评论",
			mock: func(ctrl *gomock.Controller) remote.CommentRemote {
				r := commentmocks.NewMockCommentRemote(ctrl)
				r.EXPECT().CreateComment(gomock.Any(), remote.CreateCommentReq{
					Content: "hi",
					ReadID:  ptr[int64](42),
				}).Return(remote.Comment{ID: 10, ReadID: ptr[int64](42)}, nil)
				return r
			},
			input:  domain.Comment{ReadID: 42, Content: "hi"},
			wantID: 10,
		},
		{
			name: "学期下的回复",
			mock: func(ctrl *gomock.Controller) remote.CommentRemote {
				r := commentmocks.NewMockCommentRemote(ctrl)
				r.EXPECT().CreateComment(gomock.Any(), remote.CreateCommentReq{
					Content:         "hi",
					ParentCommentID: ptr[int64](9),
					SemesterID:      ptr[int64](3),
				}).Return(remote.Comment{ID: 11}, nil)
				return r
			},
			input:  domain.Comment{SemesterID: 3, ParentCommentID: 9, Content: "hi"},
			wantID: 11,
		},
		{
			name: "没有 Scope",
			mock: func(ctrl *gomock.Controller) remote.CommentRemote {
				return commentmocks.NewMockCommentRemote(ctrl)
			},
			input:   domain.Comment{Content: "hi"},
			wantErr: errs.ErrInvalidScope,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCommentRepository(tc.mock(ctrl))
			res, err := repo.Create(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantID, res.ID)
		})
	}
}

func TestCommentRepository_ToggleReaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := commentmocks.NewMockCommentRemote(ctrl)
	r.EXPECT().ToggleReaction(gomock.Any(), int64(1), "like").Return(remote.ReactionState{
		Reactions:            map[string]remote.ReactionSummary{"like": {Count: 1}},
		CurrentUserReactions: []string{"like"},
	}, nil)
	repo := NewCommentRepository(r)

	res, err := repo.ToggleReaction(context.Background(), 1, "like")
	require.NoError(t, err)
	assert.Equal(t, domain.ReactionState{
		Reactions:            map[domain.ReactionKind]domain.ReactionSummary{"like": {Count: 1}},
		CurrentUserReactions: []domain.ReactionKind{"like"},
	}, res)
}

func TestCommentRepository_ReactionUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := commentmocks.NewMockCommentRemote(ctrl)
	r.EXPECT().ListReactionUsers(gomock.Any(), int64(1), "heart", 2, 10).Return(remote.Page[remote.ReactionUser]{
		Items: []remote.ReactionUser{
			{ID: 3, User: remote.User{ID: 8, Username: "hong"}, ReactionType: "heart"},
		},
		Page: 2, PageSize: 10, Total: 11, TotalPages: 2,
	}, nil)
	repo := NewCommentRepository(r)

	res, err := repo.ReactionUsers(context.Background(), 1, domain.ReactionHeart, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.ReactionUserPage{
		Items: []domain.ReactionUser{
			{ID: 3, User: domain.User{ID: 8, Username: "hong"}, ReactionKind: domain.ReactionHeart},
		},
		Pagination: &domain.Pagination{Page: 2, PageSize: 10, Total: 11, TotalPages: 2},
	}, res)
}

func TestCommentRepository_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := commentmocks.NewMockCommentRemote(ctrl)
	r.EXPECT().SearchComments(gomock.Any(), remote.SearchReq{Q: "好书", UserID: 7, Page: 1, PageSize: 5}).
		Return(remote.Page[remote.Comment]{
			Items: []remote.Comment{{ID: 1, SemesterID: ptr[int64](3)}},
			Page:  1, PageSize: 5, Total: 1, TotalPages: 1,
		}, nil)
	repo := NewCommentRepository(r)

	res, err := repo.Search(context.Background(), domain.SearchParams{Query: "好书", UserID: 7, Page: 1, PageSize: 5})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, domain.SemesterScope(3), res.Items[0].Scope())
}

func ptr[T any](v T) *T {
	return &v
}
