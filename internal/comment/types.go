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

package comment

import (
	"github.com/ecodeclub/readlog/internal/comment/internal/domain"
	"github.com/ecodeclub/readlog/internal/comment/internal/errs"
	"github.com/ecodeclub/readlog/internal/comment/internal/service"
)

// Service 方便测试
type Service = service.CommentService

type (
	Scope            = domain.Scope
	ScopeKind        = domain.ScopeKind
	Comment          = domain.Comment
	User             = domain.User
	Pagination       = domain.Pagination
	ScopeCommentPage = domain.ScopeCommentPage
	ReactionKind     = domain.ReactionKind
	ReactionSummary  = domain.ReactionSummary
	ReactionState    = domain.ReactionState
	ReactionUser     = domain.ReactionUser
	ReactionUserPage = domain.ReactionUserPage
	SearchParams     = domain.SearchParams
	APIError         = errs.APIError
)

const (
	ScopeRead     = domain.ScopeRead
	ScopeSemester = domain.ScopeSemester

	ReactionHeart    = domain.ReactionHeart
	ReactionThumbsUp = domain.ReactionThumbsUp
	ReactionLaugh    = domain.ReactionLaugh
	ReactionThink    = domain.ReactionThink
	ReactionTarget   = domain.ReactionTarget
	ReactionBook     = domain.ReactionBook
	ReactionClap     = domain.ReactionClap

	DefaultPageSize = domain.DefaultPageSize
)

var (
	ReadScope      = domain.ReadScope
	SemesterScope  = domain.SemesterScope
	ReactionKinds  = domain.ReactionKinds
	FindComment    = domain.FindComment
	PatchReactions = domain.PatchReactions
	CountComments  = domain.CountComments
)

var (
	ErrValidation   = errs.ErrValidation
	ErrInvalidScope = errs.ErrInvalidScope
	ErrForbidden    = errs.ErrForbidden
	ErrNotFound     = errs.ErrNotFound
	ErrNetwork      = errs.ErrNetwork
	ErrUnknown      = errs.ErrUnknown
)

type Module struct {
	Svc Service
}
