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

package job

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobboard/internal/job/internal/cronjob"
	"github.com/ecodeclub/jobboard/internal/job/internal/event"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository/cache"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/ecodeclub/jobboard/internal/job/internal/web"
	"github.com/ecodeclub/jobboard/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var HandlerSet = wire.NewSet(
	InitService,
	web.NewHandler,
	web.NewAdminHandler,
	cronjob.NewRefreshSnapshotJob,
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(HandlerSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func InitService(db *egorm.Component, ec ecache.Cache, q mq.MQ) (Service, error) {
	wire.Build(
		InitTablesOnce,
		cache.NewJobCache,
		repository.NewJobRepository,
		event.NewSyncEventProducer,
		InitIDGenerator,
		InitFilterConfig,
		service.NewJobService,
	)
	return nil, nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.JobDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMJobDAO(db)
}

func InitIDGenerator() (service.IDGenerator, error) {
	g, err := snowflake.NewGenerator(econf.GetInt64("snowflake.node"))
	if err != nil {
		return nil, err
	}
	return g, nil
}

// InitFilterConfig 没有配置的时候默认把条件下推到数据库
func InitFilterConfig() service.Config {
	return service.Config{
		Mode:        service.FilterMode(econf.GetString("job.filter.mode")),
		SnapshotTTL: econf.GetDuration("job.filter.snapshotTTL"),
	}
}
