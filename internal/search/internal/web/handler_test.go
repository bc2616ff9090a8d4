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
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/ecodeclub/jobboard/internal/search/internal/domain"
	"github.com/ecodeclub/jobboard/internal/search/internal/errs"
	searchmocks "github.com/ecodeclub/jobboard/internal/search/mocks"
	"github.com/ecodeclub/jobboard/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Search(t *testing.T) {
	testCases := []struct {
		name   string
		mock   func(ctrl *gomock.Controller) *searchmocks.MockJobSearchService
		newReq func(t *testing.T) *http.Request

		wantStatus int
		wantResult test.Result[SearchResult]
	}{
		{
			name: "GET 搜索",
			mock: func(ctrl *gomock.Controller) *searchmocks.MockJobSearchService {
				svc := searchmocks.NewMockJobSearchService(ctrl)
				svc.EXPECT().Search(gomock.Any(), "golang", &jobfilter.Spec{
					Location:  "chennai",
					MaxSalary: ptr[int64](900000),
				}).Return([]domain.Job{{
					ID: 12, Title: "Go Developer", Type: "Full-time",
					MinSalary: jobfilter.NewAmount(500000), Ctime: 123,
				}}, nil)
				return svc
			},
			newReq: func(t *testing.T) *http.Request {
				req, err := http.NewRequest(http.MethodGet,
					"/search/jobs?keyword=golang&location=chennai&jobType=default-job-type&maxSalary=900&salaryUnit=K", nil)
				require.NoError(t, err)
				return req
			},
			wantStatus: http.StatusOK,
			wantResult: test.Result[SearchResult]{
				Data: SearchResult{
					Count: 1,
					List: []JobVO{{
						ID: "12", JobTitle: "Go Developer", JobType: "Full-time",
						MinSalary: ptr[int64](500000), CreatedAt: 123,
					}},
				},
			},
		},
		{
			name: "POST 搜索",
			mock: func(ctrl *gomock.Controller) *searchmocks.MockJobSearchService {
				svc := searchmocks.NewMockJobSearchService(ctrl)
				svc.EXPECT().Search(gomock.Any(), "company:amazon", &jobfilter.Spec{
					JobType:   ptr("Part-time"),
					MinSalary: ptr[int64](1000),
				}).Return([]domain.Job{}, nil)
				return svc
			},
			newReq: func(t *testing.T) *http.Request {
				req, err := http.NewRequest(http.MethodPost, "/search/jobs", iox.NewJSONReader(map[string]any{
					"keyword":   "company:amazon",
					"jobType":   "Part-time",
					"minSalary": 1000,
				}))
				require.NoError(t, err)
				req.Header.Set("content-type", "application/json")
				return req
			},
			wantStatus: http.StatusOK,
			wantResult: test.Result[SearchResult]{
				Data: SearchResult{List: []JobVO{}},
			},
		},
		{
			name: "POST 旧版占位类型和字符串薪资",
			mock: func(ctrl *gomock.Controller) *searchmocks.MockJobSearchService {
				svc := searchmocks.NewMockJobSearchService(ctrl)
				svc.EXPECT().Search(gomock.Any(), "", &jobfilter.Spec{
					JobTitle:  "go",
					MinSalary: ptr[int64](30000),
				}).Return([]domain.Job{}, nil)
				return svc
			},
			newReq: func(t *testing.T) *http.Request {
				req, err := http.NewRequest(http.MethodPost, "/search/jobs", iox.NewJSONReader(map[string]any{
					"jobTitle":   "go",
					"jobType":    "default-job-type",
					"minSalary":  "30",
					"maxSalary":  nil,
					"salaryUnit": "k",
				}))
				require.NoError(t, err)
				req.Header.Set("content-type", "application/json")
				return req
			},
			wantStatus: http.StatusOK,
			wantResult: test.Result[SearchResult]{
				Data: SearchResult{List: []JobVO{}},
			},
		},
		{
			name: "ES 错误",
			mock: func(ctrl *gomock.Controller) *searchmocks.MockJobSearchService {
				svc := searchmocks.NewMockJobSearchService(ctrl)
				svc.EXPECT().Search(gomock.Any(), "", &jobfilter.Spec{}).Return(nil, errors.New("mock es error"))
				return svc
			},
			newReq: func(t *testing.T) *http.Request {
				req, err := http.NewRequest(http.MethodGet, "/search/jobs", nil)
				require.NoError(t, err)
				return req
			},
			wantStatus: http.StatusInternalServerError,
			wantResult: test.Result[SearchResult]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gin.SetMode(gin.TestMode)
			server := gin.New()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)
			recorder := test.NewJSONResponseRecorder[SearchResult]()
			server.ServeHTTP(recorder, tc.newReq(t))
			require.Equal(t, tc.wantStatus, recorder.Code)
			assert.Equal(t, tc.wantResult, recorder.MustScan())
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
