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

package middleware

import (
	"fmt"
	"net/http"

	"github.com/ecodeclub/jobboard/internal/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RateLimitBuilder 按客户端 IP 限流
type RateLimitBuilder struct {
	prefix  string
	limiter ratelimit.Limiter
	logger  *elog.Component
}

func NewRateLimitBuilder(limiter ratelimit.Limiter) *RateLimitBuilder {
	return &RateLimitBuilder{
		prefix:  "ip-limiter",
		limiter: limiter,
		logger:  elog.DefaultLogger,
	}
}

func (b *RateLimitBuilder) Prefix(prefix string) *RateLimitBuilder {
	b.prefix = prefix
	return b
}

func (b *RateLimitBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := fmt.Sprintf("%s:%s", b.prefix, ctx.ClientIP())
		limited, err := b.limiter.Limit(ctx, key)
		if err != nil {
			// Redis 出问题的时候保守一点，直接拒绝
			b.logger.Error("限流器调用失败", elog.FieldErr(err), elog.String("key", key))
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if limited {
			b.logger.Warn("触发限流", elog.String("key", key))
			ctx.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		ctx.Next()
	}
}
