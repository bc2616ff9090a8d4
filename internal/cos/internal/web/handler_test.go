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
	"github.com/ecodeclub/jobboard/internal/cos/internal/errs"
	cosmocks "github.com/ecodeclub/jobboard/internal/cos/mocks"
	"github.com/ecodeclub/jobboard/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
	"go.uber.org/mock/gomock"
)

func TestHandler_TempAuthCode(t *testing.T) {
	cfg := Config{AppID: "1250000000", Bucket: "logo", Region: "ap-nanjing"}
	testCases := []struct {
		name string
		mock func(t *testing.T, ctrl *gomock.Controller) CredentialClient
		req  TmpAuthCodeReq

		wantStatus int
		wantResult test.Result[COSTmpAuthCode]
	}{
		{
			name: "签发成功",
			mock: func(t *testing.T, ctrl *gomock.Controller) CredentialClient {
				client := cosmocks.NewMockCredentialClient(ctrl)
				client.EXPECT().GetCredential(gomock.Any()).DoAndReturn(func(opt *sts.CredentialOptions) (*sts.CredentialResult, error) {
					require.Len(t, opt.Policy.Statement, 1)
					stmt := opt.Policy.Statement[0]
					assert.Equal(t, []string{"qcs::cos:ap-nanjing:uid/1250000000:logo-1250000000/jobs/logo/abc.png"}, stmt.Resource)
					assert.Equal(t, "image/png", stmt.Condition["string_equal"]["cos:content-type"])
					return &sts.CredentialResult{
						Credentials: &sts.Credentials{
							TmpSecretID:  "id",
							TmpSecretKey: "key",
							SessionToken: "token",
						},
						StartTime:   100,
						ExpiredTime: 3700,
					}, nil
				})
				return client
			},
			req:        TmpAuthCodeReq{Type: " IMAGE/PNG "},
			wantStatus: http.StatusOK,
			wantResult: test.Result[COSTmpAuthCode]{
				Data: COSTmpAuthCode{
					SecretId:     "id",
					SecretKey:    "key",
					SessionToken: "token",
					StartTime:    100,
					ExpiredTime:  3700,
					Bucket:       "logo-1250000000",
					Region:       "ap-nanjing",
					Key:          "jobs/logo/abc.png",
					URL:          "https://logo-1250000000.cos.ap-nanjing.myqcloud.com/jobs/logo/abc.png",
				},
			},
		},
		{
			name: "不支持的类型",
			mock: func(t *testing.T, ctrl *gomock.Controller) CredentialClient {
				return cosmocks.NewMockCredentialClient(ctrl)
			},
			req:        TmpAuthCodeReq{Type: "application/pdf"},
			wantStatus: http.StatusBadRequest,
			wantResult: test.Result[COSTmpAuthCode]{
				Code: errs.FileTypeInvalid.Code,
				Msg:  errs.FileTypeInvalid.Msg,
			},
		},
		{
			name: "腾讯云返回错误",
			mock: func(t *testing.T, ctrl *gomock.Controller) CredentialClient {
				client := cosmocks.NewMockCredentialClient(ctrl)
				client.EXPECT().GetCredential(gomock.Any()).Return(nil, errors.New("mock sts error"))
				return client
			},
			req:        TmpAuthCodeReq{Type: "image/jpeg"},
			wantStatus: http.StatusInternalServerError,
			wantResult: test.Result[COSTmpAuthCode]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			hdl := newHandler(tc.mock(t, ctrl), cfg)
			hdl.newKey = func() string { return "abc" }
			gin.SetMode(gin.TestMode)
			server := gin.New()
			hdl.PublicRoutes(server)
			req, err := http.NewRequest(http.MethodPost, "/cos/authorization", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[COSTmpAuthCode]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantStatus, recorder.Code)
			assert.Equal(t, tc.wantResult, recorder.MustScan())
		})
	}
}
