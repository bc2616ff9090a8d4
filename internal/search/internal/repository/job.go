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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/ecodeclub/jobboard/internal/search/internal/domain"
	"github.com/ecodeclub/jobboard/internal/search/internal/repository/dao"
)

//go:generate mockgen -source=./job.go -package=repomocks -destination=./mocks/job.mock.go -typed JobRepo
type JobRepo interface {
	SearchJob(ctx context.Context, metas []domain.QueryMeta, c jobfilter.Criteria) ([]domain.Job, error)
}

type jobRepo struct {
	jobDao dao.JobDAO
}

func NewJobRepo(jobDao dao.JobDAO) JobRepo {
	return &jobRepo{
		jobDao: jobDao,
	}
}

func (j *jobRepo) SearchJob(ctx context.Context, metas []domain.QueryMeta, c jobfilter.Criteria) ([]domain.Job, error) {
	jobs, err := j.jobDao.SearchJob(ctx, metas, c)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return domain.Job{
			ID:          src.ID,
			Title:       src.Title,
			CompanyName: src.CompanyName,
			ImageURL:    src.ImageURL,
			Location:    src.Location,
			Type:        src.Type,
			MinSalary:   toAmount(src.MinSalary),
			MaxSalary:   toAmount(src.MaxSalary),
			Experience:  src.Experience,
			Description: src.Description,
			Deadline:    src.Deadline,
			Ctime:       src.Ctime,
		}
	}), nil
}

func toAmount(v *int64) jobfilter.Amount {
	if v == nil {
		return jobfilter.Amount{}
	}
	return jobfilter.NewAmount(*v)
}
