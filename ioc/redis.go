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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/readlog/config"
	"github.com/redis/go-redis/v9"
)

func InitRedis(cfg config.ReadlogConfig) redis.Cmdable {
	cmd := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	WaitForRedisSetup(cmd)
	return cmd
}

// InitCache 登录流程和这里共用同一个 redis，key 都带 readlog: 前缀
func InitCache(cmd redis.Cmdable) ecache.Cache {
	return &ecache.NamespaceCache{
		C:         eredis.NewCache(cmd),
		Namespace: "readlog:",
	}
}

func WaitForRedisSetup(cmd redis.Cmdable) {
	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = cmd.Ping(ctx).Err()
		cancel()
		if err == nil {
			break
		}
		next, ok := strategy.Next()
		if !ok {
			panic("WaitForRedisSetup 重试失败......")
		}
		time.Sleep(next)
	}
}
