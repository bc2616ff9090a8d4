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

package web

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/search/internal/domain"
	"github.com/ecodeclub/jobboard/internal/search/internal/errs"
	"github.com/ecodeclub/jobboard/internal/search/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    service.JobSearchService
	logger *elog.Component
}

func NewHandler(svc service.JobSearchService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/search/jobs", ginx.W(h.Query))
	server.POST("/search/jobs", ginx.B[SearchReq](h.Search))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
}

func (h *Handler) Query(ctx *ginx.Context) (ginx.Result, error) {
	var req SearchReq
	if err := ctx.Context.ShouldBindQuery(&req); err != nil {
		return h.abort(ctx, http.StatusBadRequest, errs.SearchInvalid, err.Error())
	}
	return h.Search(ctx, req)
}

func (h *Handler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	spec := req.Spec()
	jobs, err := h.svc.Search(ctx, req.Keyword, &spec)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SearchResult{
			Count: len(jobs),
			List: slice.Map(jobs, func(idx int, src domain.Job) JobVO {
				return newJobVO(src)
			}),
		},
	}, nil
}

func (h *Handler) abort(ctx *ginx.Context, status int, code errs.ErrorCode, msg string) (ginx.Result, error) {
	h.logger.Warn("搜索参数不合法", elog.String("msg", msg))
	ctx.AbortWithStatusJSON(status, ginx.Result{
		Code: code.Code,
		Msg:  msg,
	})
	return ginx.Result{}, ginx.ErrNoResponse
}
