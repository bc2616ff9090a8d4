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

package search

import (
	"sync"

	"github.com/ecodeclub/jobboard/internal/search/internal/event"
	"github.com/ecodeclub/jobboard/internal/search/internal/repository"
	"github.com/ecodeclub/jobboard/internal/search/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/search/internal/service"
	"github.com/ecodeclub/jobboard/internal/search/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/olivere/elastic/v7"
)

var HandlerSet = wire.NewSet(
	InitJobDAO,
	repository.NewJobRepo,
	service.NewJobSearchService,
	web.NewHandler,
)

var SyncSvcSet = wire.NewSet(
	InitAnyRepo,
	service.NewSyncSvc,
)

func InitModule(es *elastic.Client, q mq.MQ) (*Module, error) {
	wire.Build(
		HandlerSet,
		SyncSvcSet,
		event.NewSyncConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitIndexOnce(es *elastic.Client) {
	daoOnce.Do(func() {
		err := dao.InitES(es)
		if err != nil {
			panic(err)
		}
	})
}

func InitJobDAO(es *elastic.Client) dao.JobDAO {
	InitIndexOnce(es)
	return dao.NewJobElasticDAO(es)
}

func InitAnyRepo(es *elastic.Client) repository.AnyRepo {
	InitIndexOnce(es)
	anyDAO := dao.NewAnyEsDAO(es)
	return repository.NewAnyRepo(anyDAO)
}
