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

package dao

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/ecodeclub/jobboard/internal/search/internal/domain"
	"github.com/olivere/elastic/v7"
)

const JobIndexName = "job_index"

// 每一页的大小，结果不分页，用 search_after 一直读到最后一页
const defaultPageSize = 200

// Job 和 job 模块同步过来的文档结构一致
type Job struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	TitleKey    string `json:"title_key"`
	CompanyName string `json:"company_name"`
	ImageURL    string `json:"image_url"`
	Location    string `json:"location"`
	LocationKey string `json:"location_key"`
	Type        string `json:"type"`
	TypeKey     string `json:"type_key"`
	MinSalary   *int64 `json:"min_salary"`
	MaxSalary   *int64 `json:"max_salary"`
	Experience  string `json:"experience"`
	Description string `json:"description"`
	Deadline    int64  `json:"deadline"`
	Ctime       int64  `json:"ctime"`
}

type JobDAO interface {
	SearchJob(ctx context.Context, metas []domain.QueryMeta, c jobfilter.Criteria) ([]Job, error)
}

type JobElasticDAO struct {
	client   *elastic.Client
	index    string
	cols     []Col
	pageSize int
}

func NewJobElasticDAO(client *elastic.Client) JobDAO {
	return &JobElasticDAO{
		client: client,
		index:    JobIndexName,
		pageSize: defaultPageSize,
		cols: []Col{
			{Alias: "title", Name: "title", Boost: 10},
			{Alias: "company", Name: "company_name", Boost: 5},
			{Alias: "description", Name: "description", Boost: 1},
		},
	}
}

func (j *JobElasticDAO) SearchJob(ctx context.Context, metas []domain.QueryMeta, c jobfilter.Criteria) ([]Job, error) {
	query := j.buildQuery(metas, c)
	res := make([]Job, 0, j.pageSize)
	var after []any
	for {
		svc := j.client.Search(j.index).
			Query(query).
			Sort("ctime", false).
			Sort("id", false).
			Size(j.pageSize)
		if after != nil {
			svc = svc.SearchAfter(after...)
		}
		resp, err := svc.Do(ctx)
		if err != nil {
			return nil, err
		}
		hits := resp.Hits.Hits
		for _, hit := range hits {
			var ele Job
			err = json.Unmarshal(hit.Source, &ele)
			if err != nil {
				return nil, err
			}
			res = append(res, ele)
		}
		if len(hits) < j.pageSize {
			return res, nil
		}
		after = hits[len(hits)-1].Sort
		if len(after) == 0 {
			return nil, fmt.Errorf("ES 没有返回排序值，无法继续翻页: index=%s", j.index)
		}
	}
}

// buildQuery 关键字影响相关度，过滤条件放在 filter 里不参与打分。
// range 查询不会命中缺失的字段，所以缺少薪资的职位在有薪资条件时不会出现。
func (j *JobElasticDAO) buildQuery(metas []domain.QueryMeta, c jobfilter.Criteria) *elastic.BoolQuery {
	query := elastic.NewBoolQuery()
	if cols := buildCols(j.cols, metas); len(cols) > 0 {
		query = query.Must(elastic.NewBoolQuery().Should(cols...))
	}
	filters := make([]elastic.Query, 0, 4)
	if c.Title != "" {
		filters = append(filters, elastic.NewWildcardQuery("title_key", containsPattern(c.Title)))
	}
	if c.Location != "" {
		filters = append(filters, elastic.NewWildcardQuery("location_key", containsPattern(c.Location)))
	}
	if c.HasType {
		filters = append(filters, elastic.NewTermQuery("type_key", c.Type))
	}
	if c.HasMinSalary {
		filters = append(filters, elastic.NewRangeQuery("max_salary").Gte(c.MinSalary))
	}
	if c.HasMaxSalary {
		filters = append(filters, elastic.NewRangeQuery("min_salary").Lte(c.MaxSalary))
	}
	if len(filters) > 0 {
		query = query.Filter(filters...)
	}
	return query
}
