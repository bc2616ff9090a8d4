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
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/ecodeclub/jobboard/internal/search"
	"github.com/ecodeclub/jobboard/internal/search/internal/event"
	"github.com/ecodeclub/jobboard/internal/search/internal/integration/startup"
	"github.com/ecodeclub/jobboard/internal/search/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/search/internal/web"
	"github.com/ecodeclub/jobboard/internal/test"
	testioc "github.com/ecodeclub/jobboard/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	server   *egin.Component
	es       *elastic.Client
	producer mq.Producer
	consumer *search.SyncConsumer
	cancel   context.CancelFunc
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	s.server = server
	var ctx context.Context
	ctx, s.cancel = context.WithCancel(context.Background())
	s.consumer = module.SyncConsumer
	s.consumer.Start(ctx)
	s.es = testioc.InitES()
	s.producer, err = testioc.InitMQ().Producer(event.SyncTopic)
	require.NoError(s.T(), err)
	s.syncJobs()
}

func (s *HandlerTestSuite) TearDownSuite() {
	s.cancel()
	require.NoError(s.T(), s.consumer.Stop(context.Background()))
	_, err := s.es.DeleteByQuery(dao.JobIndexName).
		Query(elastic.NewMatchAllQuery()).
		Refresh("true").
		Do(context.Background())
	require.NoError(s.T(), err)
}

func salary(v int64) *int64 {
	return &v
}

// syncJobs 模拟 job 模块发出的同步事件
func (s *HandlerTestSuite) syncJobs() {
	jobs := []dao.Job{
		{ID: 1, Title: "Full Stack Developer", CompanyName: "Amazon", Location: "Chennai", Type: "Full-time",
			MinSalary: salary(500000), MaxSalary: salary(900000), Description: "react and golang", Ctime: 100},
		{ID: 2, Title: "Node Js Developer", CompanyName: "Zoho", Location: "Bangalore", Type: "Part-time",
			MinSalary: salary(300000), MaxSalary: salary(450000), Description: "node", Ctime: 200},
		{ID: 3, Title: "Full-Stack Engineer", CompanyName: "Remote Co", Location: "Remote", Type: "Contract",
			MaxSalary: salary(1200000), Description: "golang services", Ctime: 300},
		{ID: 4, Title: "Backend Developer", CompanyName: "Amazon", Location: "chennai", Type: "Full-time",
			MinSalary: salary(800000), MaxSalary: salary(1500000), Description: "golang and kafka", Ctime: 400},
	}
	for _, j := range jobs {
		j.TitleKey = jobfilter.TextKey(j.Title)
		j.LocationKey = jobfilter.TextKey(j.Location)
		j.TypeKey = jobfilter.TypeKey(j.Type)
		data, err := json.Marshal(j)
		require.NoError(s.T(), err)
		val, err := json.Marshal(event.SyncEvent{Biz: "job", BizID: j.ID, Data: string(data)})
		require.NoError(s.T(), err)
		_, err = s.producer.Produce(context.Background(), &mq.Message{Value: val})
		require.NoError(s.T(), err)
	}
	require.Eventually(s.T(), func() bool {
		_, err := s.es.Refresh(dao.JobIndexName).Do(context.Background())
		if err != nil {
			return false
		}
		cnt, err := s.es.Count(dao.JobIndexName).Do(context.Background())
		return err == nil && cnt == int64(len(jobs))
	}, 10*time.Second, 200*time.Millisecond)
}

func (s *HandlerTestSuite) TestSearch() {
	testCases := []struct {
		name    string
		query   string
		wantIds []string
	}{
		{name: "不限制按创建时间倒序", query: "", wantIds: []string{"4", "3", "2", "1"}},
		{name: "关键字", query: "keyword=golang", wantIds: []string{"4", "3", "1"}},
		{name: "指定列的关键字", query: "keyword=company:amazon", wantIds: []string{"4", "1"}},
		{name: "标题", query: "jobTitle=full%20stack", wantIds: []string{"3", "1"}},
		{name: "地点", query: "location=CHENNAI", wantIds: []string{"4", "1"}},
		{name: "类型", query: "jobType=contract", wantIds: []string{"3"}},
		{name: "薪资缺失不匹配", query: "maxSalary=600&salaryUnit=k", wantIds: []string{"2", "1"}},
		{name: "组合", query: "keyword=golang&location=chennai&minSalary=1000000", wantIds: []string{"4"}},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/search/jobs?"+tc.query, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.SearchResult]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan().Data
			ids := make([]string, 0, len(res.List))
			for _, vo := range res.List {
				ids = append(ids, vo.ID)
			}
			assert.Equal(t, tc.wantIds, ids)
			assert.Equal(t, len(tc.wantIds), res.Count)
		})
	}
}

func (s *HandlerTestSuite) TestDocument() {
	res, err := s.es.Get().Index(dao.JobIndexName).Id(strconv.Itoa(4)).Do(context.Background())
	require.NoError(s.T(), err)
	var doc dao.Job
	require.NoError(s.T(), json.Unmarshal(res.Source, &doc))
	assert.Equal(s.T(), "backenddeveloper", doc.TitleKey)
	assert.Equal(s.T(), "full-time", doc.TypeKey)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
