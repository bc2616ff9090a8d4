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
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/jobboard/internal/cos"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/ratelimit"
	"github.com/ecodeclub/jobboard/internal/search"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func initGinxServer(
	cmd redis.Cmdable,
	jobHdl *job.Handler,
	searchHdl *search.Handler,
	cosHdl *cos.Handler,
) *egin.Component {
	res := egin.Load("server.http").Build()
	res.Use(corsMiddleware())
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer).Build())
	res.Use(middleware.NewRateLimitBuilder(initLimiter(cmd)).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	jobHdl.PublicRoutes(res.Engine)
	searchHdl.PublicRoutes(res.Engine)
	cosHdl.PublicRoutes(res.Engine)
	return res
}

func initLimiter(cmd redis.Cmdable) ratelimit.Limiter {
	interval := econf.GetDuration("ratelimit.interval")
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	rate := econf.GetInt("ratelimit.rate")
	if rate <= 0 {
		rate = 100
	}
	return ratelimit.NewRedisSlidingWindowLimiter(cmd, interval, rate)
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, econf.GetString("server.http.domain"))
		},
	})
}
