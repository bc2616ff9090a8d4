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

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/ecodeclub/jobboard/internal/search/internal/domain"
	"github.com/ecodeclub/jobboard/internal/search/internal/repository"
)

//go:generate mockgen -source=./search.go -package=searchmocks -destination=../../mocks/search.mock.go -typed JobSearchService
type JobSearchService interface {
	// Search keyword 形如 "golang company:amazon"，带前缀的词只匹配对应的列
	Search(ctx context.Context, keyword string, spec *jobfilter.Spec) ([]domain.Job, error)
}

type jobSearchService struct {
	repo repository.JobRepo
}

func NewJobSearchService(repo repository.JobRepo) JobSearchService {
	return &jobSearchService{
		repo: repo,
	}
}

func (s *jobSearchService) Search(ctx context.Context, keyword string, spec *jobfilter.Spec) ([]domain.Job, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: spec 为 nil", jobfilter.ErrInvalidInput)
	}
	c := jobfilter.Compile(*spec)
	jobs, err := s.repo.SearchJob(ctx, s.getQueryMeta(keyword), c)
	if err != nil {
		return nil, err
	}
	// ES 负责召回，最终以 jobfilter 的判断为准
	return jobfilter.FilterCriteria(jobs, c)
}

func (s *jobSearchService) getQueryMeta(keyword string) []domain.QueryMeta {
	words := strings.Fields(keyword)
	metas := make([]domain.QueryMeta, 0, len(words))
	for _, word := range words {
		col, kw, ok := strings.Cut(word, ":")
		if !ok || col == "" || kw == "" {
			metas = append(metas, domain.QueryMeta{
				Keyword: word,
				IsAll:   true,
			})
			continue
		}
		metas = append(metas, domain.QueryMeta{
			Col:     col,
			Keyword: kw,
		})
	}
	return metas
}
