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

//go:build e2e

package integration

import (
	"os"
	"testing"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/cos/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// HandlerTestSuite 需要真实的腾讯云账号，通过环境变量传入
type HandlerTestSuite struct {
	suite.Suite
	handler *web.Handler
}

func (s *HandlerTestSuite) SetupSuite() {
	s.handler = web.NewHandler(web.Config{
		SecretID:  os.Getenv("COS_SECRET_ID"),
		SecretKey: os.Getenv("COS_SECRET_KEY"),
		AppID:     os.Getenv("COS_APP_ID"),
		Bucket:    os.Getenv("COS_BUCKET"),
		Region:    "ap-nanjing",
	})
}

func (s *HandlerTestSuite) TestTmpAuthCode() {
	res, err := s.handler.TempAuthCode(&ginx.Context{}, web.TmpAuthCodeReq{Type: "image/png"})
	require.NoError(s.T(), err)
	// 断言有值就可以了
	code := res.Data.(web.COSTmpAuthCode)
	assert.NotEmpty(s.T(), code.SecretKey)
	assert.Contains(s.T(), code.URL, code.Key)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
