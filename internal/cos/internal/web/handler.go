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
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/cos/internal/errs"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

var _ ginx.Handler = &Handler{}

const logoPrefix = "jobs/logo/"

// 允许上传的图片类型和对应的后缀
var logoTypes = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

//go:generate mockgen -source=./handler.go -package=cosmocks -destination=../../mocks/credential.mock.go -typed CredentialClient
type CredentialClient interface {
	GetCredential(opt *sts.CredentialOptions) (*sts.CredentialResult, error)
}

type Handler struct {
	client CredentialClient
	cfg    Config
	// 临时密钥的权限
	actions []string
	newKey  func() string
	logger  *elog.Component
}

func NewHandler(cfg Config) *Handler {
	c := sts.NewClient(
		cfg.SecretID,
		cfg.SecretKey,
		http.DefaultClient,
	)
	return newHandler(c, cfg)
}

func newHandler(client CredentialClient, cfg Config) *Handler {
	return &Handler{
		client: client,
		cfg:    cfg,
		actions: []string{
			// 简单上传
			"name/cos:PostObject",
			"name/cos:PutObject",
			// 分片上传
			"name/cos:InitiateMultipartUpload",
			"name/cos:ListMultipartUploads",
			"name/cos:ListParts",
			"name/cos:UploadPart",
			"name/cos:CompleteMultipartUpload",
		},
		newKey: func() string {
			return shortuuid.New()
		},
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	cos := server.Group("/cos")
	cos.POST("/authorization", ginx.B(h.TempAuthCode))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
}

// TempAuthCode 为一次 logo 上传签发临时密钥，每次都是一个新的对象
func (h *Handler) TempAuthCode(ctx *ginx.Context, req TmpAuthCodeReq) (ginx.Result, error) {
	typ := strings.ToLower(strings.TrimSpace(req.Type))
	ext, ok := logoTypes[typ]
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ginx.Result{
			Code: errs.FileTypeInvalid.Code,
			Msg:  errs.FileTypeInvalid.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	key := logoPrefix + h.newKey() + ext
	// 存储桶的命名格式为 BucketName-APPID
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s",
		h.cfg.Region, h.cfg.AppID,
		h.cfg.Bucket, h.cfg.AppID, key)
	opt := &sts.CredentialOptions{
		DurationSeconds: int64(time.Hour.Seconds()),
		Region:          h.cfg.Region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{
				{
					Action: h.actions,
					Effect: "allow",
					Resource: []string{
						resource,
					},
					Condition: map[string]map[string]interface{}{
						"string_equal": {
							"cos:content-type": typ,
						},
					},
				},
			},
		},
	}
	res, err := h.client.GetCredential(opt)
	if err != nil {
		return systemErrorResult, err
	}
	if res.Credentials == nil {
		return systemErrorResult, errors.New("临时密钥为空")
	}
	return ginx.Result{
		Data: COSTmpAuthCode{
			SecretId:     res.Credentials.TmpSecretID,
			SecretKey:    res.Credentials.TmpSecretKey,
			SessionToken: res.Credentials.SessionToken,
			StartTime:    res.StartTime,
			ExpiredTime:  res.ExpiredTime,
			Bucket:       h.bucketName(),
			Region:       h.cfg.Region,
			Key:          key,
			URL:          h.objectURL(key),
		},
	}, nil
}

func (h *Handler) bucketName() string {
	return fmt.Sprintf("%s-%s", h.cfg.Bucket, h.cfg.AppID)
}

func (h *Handler) objectURL(key string) string {
	return fmt.Sprintf("https://%s.cos.%s.myqcloud.com/%s", h.bucketName(), h.cfg.Region, key)
}
