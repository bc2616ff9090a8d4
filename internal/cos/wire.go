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

//go:build wireinject

package cos

import (
	"fmt"

	"github.com/ecodeclub/jobboard/internal/cos/internal/web"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule() (*Module, error) {
	wire.Build(
		InitConfig,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func InitConfig() (web.Config, error) {
	var cfg web.Config
	err := econf.UnmarshalKey("cos", &cfg)
	if err != nil {
		return web.Config{}, fmt.Errorf("读取 COS 配置失败 %w", err)
	}
	return cfg, nil
}
