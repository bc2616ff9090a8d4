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
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/errs"
	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	logger *elog.Component
	now    func() time.Time
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
		now:    time.Now,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/jobs")
	g.POST("/create", ginx.B[CreateJobReq](h.Create))
	g.GET("", ginx.W(h.Query))
	g.POST("/list", ginx.B[jobfilter.Request](h.List))
	g.GET("/:id", ginx.W(h.Get))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
}

func (h *Handler) Create(ctx *ginx.Context, req CreateJobReq) (ginx.Result, error) {
	job, err := req.toDomain()
	if err != nil {
		return h.abort(ctx, http.StatusBadRequest, errs.JobInvalid, err.Error())
	}
	id, err := h.svc.Create(ctx, job)
	switch {
	case errors.Is(err, domain.ErrInvalidJob):
		return h.abort(ctx, http.StatusBadRequest, errs.JobInvalid, err.Error())
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: strconv.FormatInt(id, 10),
	}, nil
}

// Query GET /jobs，条件放在 query string 里
func (h *Handler) Query(ctx *ginx.Context) (ginx.Result, error) {
	var req jobfilter.Request
	if err := ctx.Context.ShouldBindQuery(&req); err != nil {
		return h.abort(ctx, http.StatusBadRequest, errs.JobInvalid, err.Error())
	}
	return h.List(ctx, req)
}

func (h *Handler) List(ctx *ginx.Context, req jobfilter.Request) (ginx.Result, error) {
	spec := req.Spec()
	jobs, err := h.svc.List(ctx, &spec)
	if err != nil {
		return systemErrorResult, err
	}
	now := h.now()
	return ginx.Result{
		Data: ListJobResp{
			Count: len(jobs),
			List: slice.Map(jobs, func(idx int, src domain.Job) JobVO {
				return newJobVO(src, now)
			}),
		},
	}, nil
}

func (h *Handler) Get(ctx *ginx.Context) (ginx.Result, error) {
	return h.detail(ctx, ctx.Context.Param("id"))
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	return h.detail(ctx, string(req.Id))
}

func (h *Handler) detail(ctx *ginx.Context, rawId string) (ginx.Result, error) {
	id, ok := parseId(rawId)
	if !ok {
		return h.abort(ctx, http.StatusBadRequest, errs.JobIdInvalid, errs.JobIdInvalid.Msg)
	}
	job, err := h.svc.Detail(ctx, id)
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return h.abort(ctx, http.StatusNotFound, errs.JobNotFound, errs.JobNotFound.Msg)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newJobVO(job, h.now()),
	}, nil
}

// abort 直接写出带业务错误码的响应，HTTP 状态码和业务错误对应
func (h *Handler) abort(ctx *ginx.Context, status int, code errs.ErrorCode, msg string) (ginx.Result, error) {
	ctx.AbortWithStatusJSON(status, ginx.Result{
		Code: code.Code,
		Msg:  msg,
	})
	return ginx.Result{}, ginx.ErrNoResponse
}
