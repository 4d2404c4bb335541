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

// Package readlogsrv 一个内存版的阅读记录评论服务，集成测试使用
package readlogsrv

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	RouteReadComments     = "/api/comments/read/:readId"
	RouteSemesterComments = "/api/comments/semester/:semesterId"
	RouteCreateComment    = "/api/comments"
	RouteDeleteComment    = "/api/comments/:id"
	RouteReactions        = "/api/comments/:id/reactions"
	RouteSearch           = "/api/comments/search"
)

const timeLayout = "2006-01-02T15:04:05.000000"

var baseTime = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

type record struct {
	id         int64
	readID     int64
	semesterID int64
	userID     int64
	parentID   int64
	content    string
	deleted    bool
	deletedAt  time.Time
	createdAt  time.Time
	reactions  []reaction
}

type reaction struct {
	id        int64
	userID    int64
	kind      string
	createdAt time.Time
}

type failure struct {
	status int
	detail string
}

type Server struct {
	srv *httptest.Server

	mu          sync.Mutex
	seq         int64
	reactionSeq int64
	users       map[int64]User
	tokens      map[string]int64
	comments    map[int64]*record
	failures    map[string][]failure
	holds       map[string][]chan struct{}
	requests    []Request
}

func NewServer() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		users:    map[int64]User{},
		tokens:   map[string]int64{},
		comments: map[int64]*record{},
		failures: map[string][]failure{},
		holds:    map[string][]chan struct{}{},
	}
	engine := gin.New()
	engine.Use(s.logRequest, s.inject, s.auth)
	api := engine.Group("/api")
	api.GET("/comments/read/:readId", s.listRead)
	api.GET("/comments/semester/:semesterId", s.listSemester)
	api.GET("/comments/search", s.search)
	api.POST("/comments", s.create)
	api.DELETE("/comments/:id", s.remove)
	api.POST("/comments/:id/reactions", s.toggle)
	api.GET("/comments/:id/reactions", s.reactionUsers)
	s.srv = httptest.NewServer(engine)
	return s
}

// BaseURL 客户端配置里的 baseURL
func (s *Server) BaseURL() string {
	return s.srv.URL + "/api"
}

func (s *Server) Close() {
	s.srv.Close()
}

// AddUser 返回这个用户的 bearer token
func (s *Server) AddUser(id int64, username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = User{ID: id, Username: username}
	token := fmt.Sprintf("token-%d", id)
	s.tokens[token] = id
	return token
}

func (s *Server) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// AddComment 绕过接口直接写入一条评论
func (s *Server) AddComment(seed Seed) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(seed)
}

// AddReaction 绕过接口直接写入一个表情
func (s *Server) AddReaction(commentID, userID int64, kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.comments[commentID]; ok {
		r.reactions = append(r.reactions, s.newReaction(userID, kind))
	}
}

func (s *Server) IsDeleted(commentID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.comments[commentID]
	return ok && r.deleted
}

// FailNext 下一个匹配 method 和 route 的请求直接返回 status
func (s *Server) FailNext(method, route string, status int, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + route
	s.failures[key] = append(s.failures[key], failure{status: status, detail: detail})
}

// Hold 下一个匹配的请求会停在处理之前，直到调用返回的 release
func (s *Server) Hold(method, route string) (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	key := method + " " + route
	s.holds[key] = append(s.holds[key], ch)
	s.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() { close(ch) })
	}
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *Server) logRequest(ctx *gin.Context) {
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: ctx.Request.Method,
		Route:  ctx.FullPath(),
		Path:   ctx.Request.URL.Path,
		Token:  bearer(ctx),
	})
	s.mu.Unlock()
	ctx.Next()
}

func (s *Server) inject(ctx *gin.Context) {
	key := ctx.Request.Method + " " + ctx.FullPath()
	s.mu.Lock()
	var (
		fail    *failure
		holdOne chan struct{}
	)
	if fs := s.failures[key]; len(fs) > 0 {
		fail = &fs[0]
		s.failures[key] = fs[1:]
	}
	if hs := s.holds[key]; len(hs) > 0 {
		holdOne = hs[0]
		s.holds[key] = hs[1:]
	}
	s.mu.Unlock()

	if holdOne != nil {
		select {
		case <-holdOne:
		case <-ctx.Request.Context().Done():
			ctx.Abort()
			return
		}
	}
	if fail != nil {
		ctx.AbortWithStatusJSON(fail.status, gin.H{"detail": fail.detail})
		return
	}
	ctx.Next()
}

// auth 没有 token 的时候是匿名访问，token 不认识直接 401
func (s *Server) auth(ctx *gin.Context) {
	token := bearer(ctx)
	if token == "" {
		ctx.Next()
		return
	}
	s.mu.Lock()
	uid, ok := s.tokens[token]
	s.mu.Unlock()
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
		return
	}
	ctx.Set("uid", uid)
	ctx.Next()
}

func bearer(ctx *gin.Context) string {
	return strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
}

func viewer(ctx *gin.Context) int64 {
	return ctx.GetInt64("uid")
}

// insert 调用方需要持有锁
func (s *Server) insert(seed Seed) int64 {
	s.seq++
	id := s.seq
	s.comments[id] = &record{
		id:         id,
		readID:     seed.ReadID,
		semesterID: seed.SemesterID,
		userID:     seed.UserID,
		parentID:   seed.ParentCommentID,
		content:    seed.Content,
		createdAt:  baseTime.Add(time.Duration(id) * time.Minute),
	}
	return id
}

func (s *Server) newReaction(userID int64, kind string) reaction {
	s.reactionSeq++
	return reaction{
		id:        s.reactionSeq,
		userID:    userID,
		kind:      kind,
		createdAt: baseTime.Add(time.Duration(s.reactionSeq) * time.Second),
	}
}
