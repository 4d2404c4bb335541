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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ecodeclub/readlog/config"
	"github.com/ecodeclub/readlog/internal/comment"
	"github.com/ecodeclub/readlog/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"
)

// export EGO_DEBUG=true
// go run main.go --config=config/config.yaml
// 拉取 readlog.dump 里配置的 Scope 并且打印评论树
func main() {
	// 先触发初始化，加载配置和日志
	ego.New()
	tp := ioc.InitZipkinTracer()
	defer func(tp *trace.TracerProvider) {
		err := tp.Shutdown(context.Background())
		if err != nil {
			elog.Error("Shutdown zipkinTracer", elog.FieldErr(err))
		}
	}(tp)
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	if err = dump(context.Background(), os.Stdout, app.Comment.Svc, app.Config.Dump); err != nil {
		elog.DefaultLogger.Error("打印评论失败", elog.FieldErr(err))
		os.Exit(1)
	}
}

func dumpScopes(cfg config.DumpConfig) []comment.Scope {
	var scopes []comment.Scope
	if cfg.ReadID > 0 {
		scopes = append(scopes, comment.ReadScope(cfg.ReadID))
	}
	if cfg.SemesterID > 0 {
		scopes = append(scopes, comment.SemesterScope(cfg.SemesterID))
	}
	return scopes
}

// dump 并发拉取每个 Scope 的第一页，全部成功之后按顺序打印
func dump(ctx context.Context, w io.Writer, svc comment.Service, cfg config.DumpConfig) error {
	scopes := dumpScopes(cfg)
	if len(scopes) == 0 {
		return comment.ErrInvalidScope
	}
	var eg errgroup.Group
	for _, scope := range scopes {
		eg.Go(func() error {
			_, err := svc.FetchComments(ctx, scope, 1, cfg.PageSize)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for _, scope := range scopes {
		p := svc.Pagination(scope)
		_, _ = fmt.Fprintf(w, "%s 共 %d 条评论，第 %d/%d 页\n", scope, svc.TotalCommentCount(scope), p.Page, p.TotalPages)
		writeTree(w, svc.Comments(scope), 1)
	}
	return nil
}

func writeTree(w io.Writer, items []*comment.Comment, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, c := range items {
		content := c.Content
		if c.IsDeleted {
			content = "[已删除]"
		}
		var reactions []string
		for _, kind := range comment.ReactionKinds() {
			if cnt := c.ReactionCount(kind); cnt > 0 {
				reactions = append(reactions, fmt.Sprintf("%s=%d", kind, cnt))
			}
		}
		_, _ = fmt.Fprintf(w, "%s#%d %s: %s", indent, c.ID, c.User.Username, content)
		if len(reactions) > 0 {
			_, _ = fmt.Fprintf(w, " (%s)", strings.Join(reactions, ", "))
		}
		_, _ = fmt.Fprintln(w)
		writeTree(w, c.Replies, depth+1)
	}
}
