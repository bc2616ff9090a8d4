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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/jobs")
	g.POST("/snapshot/refresh", ginx.W(h.RefreshSnapshot))
	g.POST("/reindex", ginx.W(h.Reindex))
}

func (h *AdminHandler) RefreshSnapshot(ctx *ginx.Context) (ginx.Result, error) {
	if err := h.svc.RefreshSnapshot(ctx); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Reindex(ctx *ginx.Context) (ginx.Result, error) {
	cnt, err := h.svc.Reindex(ctx)
	if err != nil {
		return ginx.Result{
			Code: systemErrorResult.Code,
			Msg:  systemErrorResult.Msg,
			Data: cnt,
		}, err
	}
	return ginx.Result{Data: cnt}, nil
}
