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

import (
	"net/http"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) listRead(ctx *gin.Context) {
	id, ok := pathID(ctx, "readId")
	if !ok {
		return
	}
	s.list(ctx, func(r *record) bool { return r.readID == id })
}

func (s *Server) listSemester(ctx *gin.Context) {
	id, ok := pathID(ctx, "semesterId")
	if !ok {
		return
	}
	s.list(ctx, func(r *record) bool { return r.semesterID == id })
}

// list 分页返回直接评论，新的在前，回复挂在各自的父评论下面
func (s *Server) list(ctx *gin.Context, match func(r *record) bool) {
	page, size, ok := pageQuery(ctx)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var roots []*record
	for _, r := range s.comments {
		if r.parentID == 0 && match(r) {
			roots = append(roots, r)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].id > roots[j].id })
	uid := viewer(ctx)
	ctx.JSON(http.StatusOK, paginate(roots, page, size, func(r *record) Comment {
		return s.render(r, uid, true)
	}))
}

func (s *Server) search(ctx *gin.Context) {
	q := strings.TrimSpace(ctx.Query("q"))
	if q == "" {
		unprocessable(ctx, "query", "q", "Field required")
		return
	}
	page, size, ok := pageQuery(ctx)
	if !ok {
		return
	}
	readID, ok := optionalQueryID(ctx, "read_id")
	if !ok {
		return
	}
	userID, ok := optionalQueryID(ctx, "user_id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var found []*record
	for _, r := range s.comments {
		if r.deleted || !strings.Contains(strings.ToLower(r.content), strings.ToLower(q)) {
			continue
		}
		if readID > 0 && r.readID != readID {
			continue
		}
		if userID > 0 && r.userID != userID {
			continue
		}
		found = append(found, r)
	}
	sort.Slice(found, func(i, j int) bool { return found[i].id > found[j].id })
	uid := viewer(ctx)
	ctx.JSON(http.StatusOK, paginate(found, page, size, func(r *record) Comment {
		return s.render(r, uid, false)
	}))
}

func (s *Server) create(ctx *gin.Context) {
	uid, ok := requireUser(ctx)
	if !ok {
		return
	}
	var req createCommentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		unprocessable(ctx, "body", "", err.Error())
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		unprocessable(ctx, "body", "content", "String should have at least 1 character")
		return
	}
	if (req.ReadID == nil) == (req.SemesterID == nil) {
		detail(ctx, http.StatusBadRequest, "Either read_id or semester_id must be provided")
		return
	}
	seed := Seed{UserID: uid, Content: req.Content}
	if req.ReadID != nil {
		seed.ReadID = *req.ReadID
	} else {
		seed.SemesterID = *req.SemesterID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if req.ParentCommentID != nil {
		parent, exists := s.comments[*req.ParentCommentID]
		if !exists || parent.deleted {
			detail(ctx, http.StatusBadRequest, "Parent comment not found or deleted")
			return
		}
		if parent.readID != seed.ReadID || parent.semesterID != seed.SemesterID {
			detail(ctx, http.StatusBadRequest, "Parent comment belongs to a different scope")
			return
		}
		seed.ParentCommentID = parent.id
	}
	id := s.insert(seed)
	ctx.JSON(http.StatusCreated, s.render(s.comments[id], uid, true))
}

func (s *Server) remove(ctx *gin.Context) {
	uid, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, exists := s.comments[id]
	if !exists || r.deleted {
		detail(ctx, http.StatusNotFound, "Comment not found")
		return
	}
	if r.userID != uid {
		detail(ctx, http.StatusForbidden, "Not authorized to delete this comment")
		return
	}
	r.deleted = true
	r.deletedAt = baseTime.Add(time.Duration(s.seq) * time.Hour)
	ctx.Status(http.StatusNoContent)
}

func (s *Server) toggle(ctx *gin.Context) {
	uid, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req toggleReactionReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.ReactionType == "" {
		unprocessable(ctx, "body", "reaction_type", "Field required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, exists := s.comments[id]
	if !exists || r.deleted {
		detail(ctx, http.StatusNotFound, "Comment not found")
		return
	}
	idx := slices.IndexFunc(r.reactions, func(re reaction) bool {
		return re.userID == uid && re.kind == req.ReactionType
	})
	if idx >= 0 {
		r.reactions = slices.Delete(r.reactions, idx, idx+1)
	} else {
		r.reactions = append(r.reactions, s.newReaction(uid, req.ReactionType))
	}
	reactions, mine := aggregate(r, uid)
	ctx.JSON(http.StatusOK, ReactionState{Reactions: reactions, CurrentUserReactions: mine})
}

func (s *Server) reactionUsers(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	page, size, ok := pageQuery(ctx)
	if !ok {
		return
	}
	kind := ctx.Query("reaction_type")
	s.mu.Lock()
	defer s.mu.Unlock()
	r, exists := s.comments[id]
	if !exists {
		detail(ctx, http.StatusNotFound, "Comment not found")
		return
	}
	var matched []reaction
	for _, re := range r.reactions {
		if kind == "" || re.kind == kind {
			matched = append(matched, re)
		}
	}
	ctx.JSON(http.StatusOK, paginate(matched, page, size, func(re reaction) ReactionUser {
		return ReactionUser{
			ID:           re.id,
			User:         s.users[re.userID],
			ReactionType: re.kind,
			CreatedAt:    re.createdAt.Format(timeLayout),
		}
	}))
}

// render 调用方需要持有锁
func (s *Server) render(r *record, uid int64, withReplies bool) Comment {
	reactions, mine := aggregate(r, uid)
	res := Comment{
		ID:                   r.id,
		UserID:               r.userID,
		User:                 s.users[r.userID],
		IsDeleted:            r.deleted,
		Replies:              []Comment{},
		Reactions:            reactions,
		CurrentUserReactions: mine,
		CreatedAt:            r.createdAt.Format(timeLayout),
		UpdatedAt:            r.createdAt.Format(timeLayout),
	}
	if r.readID > 0 {
		res.ReadID = &r.readID
	}
	if r.semesterID > 0 {
		res.SemesterID = &r.semesterID
	}
	if r.parentID > 0 {
		res.ParentCommentID = &r.parentID
	}
	if r.deleted {
		deletedAt := r.deletedAt.Format(timeLayout)
		res.DeletedAt = &deletedAt
	} else {
		content := r.content
		res.Content = &content
	}
	if !withReplies {
		return res
	}
	var children []*record
	for _, c := range s.comments {
		if c.parentID == r.id {
			children = append(children, c)
		}
	}
	sort.Slice(children, func(i, j int) bool { return children[i].id < children[j].id })
	for _, c := range children {
		res.Replies = append(res.Replies, s.render(c, uid, true))
	}
	return res
}

func aggregate(r *record, uid int64) (map[string]Reaction, []string) {
	reactions := map[string]Reaction{}
	mine := []string{}
	for _, re := range r.reactions {
		val := reactions[re.kind]
		val.Count++
		val.Users = append(val.Users, re.userID)
		reactions[re.kind] = val
		if uid > 0 && re.userID == uid {
			mine = append(mine, re.kind)
		}
	}
	return reactions, mine
}

func paginate[S any, T any](src []S, page, size int, m func(S) T) Page[T] {
	total := len(src)
	res := Page[T]{
		Items:    []T{},
		Page:     page,
		PageSize: size,
		Total:    int64(total),
	}
	res.TotalPages = (total + size - 1) / size
	start := (page - 1) * size
	if start >= total {
		return res
	}
	end := min(start+size, total)
	for _, item := range src[start:end] {
		res.Items = append(res.Items, m(item))
	}
	return res
}

func pageQuery(ctx *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		unprocessable(ctx, "query", "page", "Input should be greater than or equal to 1")
		return 0, 0, false
	}
	size, err := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	if err != nil || size < 1 || size > 100 {
		unprocessable(ctx, "query", "page_size", "Input should be between 1 and 100")
		return 0, 0, false
	}
	return page, size, true
}

func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		unprocessable(ctx, "path", name, "Input should be a valid integer")
		return 0, false
	}
	return id, true
}

func optionalQueryID(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		unprocessable(ctx, "query", name, "Input should be a valid integer")
		return 0, false
	}
	return id, true
}

func requireUser(ctx *gin.Context) (int64, bool) {
	uid := viewer(ctx)
	if uid <= 0 {
		detail(ctx, http.StatusUnauthorized, "Not authenticated")
		return 0, false
	}
	return uid, true
}

func detail(ctx *gin.Context, status int, msg string) {
	ctx.AbortWithStatusJSON(status, gin.H{"detail": msg})
}

// unprocessable 参数校验失败，格式和 FastAPI 一致
func unprocessable(ctx *gin.Context, loc, field, msg string) {
	ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
		"detail": []gin.H{{
			"loc":  []string{loc, field},
			"msg":  msg,
			"type": "value_error",
		}},
	})
}
