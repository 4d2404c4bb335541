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

//go:build wireinject

package comment

import (
	"github.com/ecodeclub/readlog/internal/comment/internal/repository"
	"github.com/ecodeclub/readlog/internal/comment/internal/repository/cache"
	"github.com/ecodeclub/readlog/internal/comment/internal/repository/remote"
	"github.com/ecodeclub/readlog/internal/comment/internal/service"
	"github.com/go-resty/resty/v2"
	"github.com/google/wire"
)

// InitModule client 需要已经装好鉴权、监控等插件
func InitModule(client *resty.Client) *Module {
	wire.Build(
		remote.NewRestyCommentRemote,
		repository.NewCommentRepository,
		cache.NewCommentCache,
		cache.NewReactionUserCache,
		service.NewCommentService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
