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
	"database/sql"
	"errors"
	"sync/atomic"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository/cache"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/gotomicro/ego/core/elog"
)

var ErrJobNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./job.go -package=repomocks -destination=./mocks/job.mock.go -typed JobRepository
type JobRepository interface {
	Create(ctx context.Context, job domain.Job) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Job, error)
	Find(ctx context.Context, c jobfilter.Criteria) ([]domain.Job, error)
	// Snapshot 全部职位，按创建时间倒序，优先读缓存
	Snapshot(ctx context.Context) ([]domain.Job, error)
	RefreshSnapshot(ctx context.Context) ([]domain.Job, error)
}

type jobRepository struct {
	dao   dao.JobDAO
	cache cache.JobCache
	// 每次写入加一，用来识别写入之前就开始加载的旧快照
	gen    atomic.Int64
	logger *elog.Component
}

func NewJobRepository(d dao.JobDAO, c cache.JobCache) JobRepository {
	return &jobRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *jobRepository) Create(ctx context.Context, job domain.Job) (int64, error) {
	id, err := r.dao.Insert(ctx, r.toEntity(job))
	if err != nil {
		return 0, err
	}
	r.gen.Add(1)
	if err = r.cache.DelSnapshot(ctx); err != nil {
		r.logger.Error("删除职位快照失败", elog.FieldErr(err), elog.Int64("id", id))
	}
	return id, nil
}

func (r *jobRepository) FindById(ctx context.Context, id int64) (domain.Job, error) {
	job, err := r.cache.GetJob(ctx, id)
	if err == nil {
		return job, nil
	}
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	job = r.toDomain(entity)
	if err = r.cache.SetJob(ctx, job); err != nil {
		r.logger.Error("缓存职位失败", elog.FieldErr(err), elog.Int64("id", id))
	}
	return job, nil
}

func (r *jobRepository) Find(ctx context.Context, c jobfilter.Criteria) ([]domain.Job, error) {
	entities, err := r.dao.Find(ctx, c)
	if err != nil {
		return nil, err
	}
	return r.toDomains(entities), nil
}

func (r *jobRepository) Snapshot(ctx context.Context) ([]domain.Job, error) {
	jobs, err := r.cache.GetSnapshot(ctx)
	if err == nil {
		return jobs, nil
	}
	if !errors.Is(err, cache.ErrJobNotFound) {
		r.logger.Error("读取职位快照失败", elog.FieldErr(err))
	}
	return r.RefreshSnapshot(ctx)
}

func (r *jobRepository) RefreshSnapshot(ctx context.Context) ([]domain.Job, error) {
	gen := r.gen.Load()
	entities, err := r.dao.All(ctx)
	if err != nil {
		return nil, err
	}
	jobs := r.toDomains(entities)
	if r.gen.Load() != gen {
		return jobs, nil
	}
	if err = r.cache.SetSnapshot(ctx, jobs); err != nil {
		r.logger.Error("缓存职位快照失败", elog.FieldErr(err))
		return jobs, nil
	}
	// 写缓存的同时可能有新职位创建，它的删除如果先执行了，这里补删一次
	if r.gen.Load() != gen {
		if err = r.cache.DelSnapshot(ctx); err != nil {
			r.logger.Error("删除过期职位快照失败", elog.FieldErr(err))
		}
	}
	return jobs, nil
}

func (r *jobRepository) toDomains(entities []dao.Job) []domain.Job {
	jobs := slice.Map(entities, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	})
	if jobs == nil {
		jobs = []domain.Job{}
	}
	// 数据库已经排过序，这里保证和内存路径用同一个排序规则
	domain.SortNewestFirst(jobs)
	return jobs
}

func (r *jobRepository) toEntity(j domain.Job) dao.Job {
	return dao.Job{
		Id:               j.ID,
		Title:            j.Title,
		CompanyName:      j.CompanyName,
		ImageUrl:         j.ImageURL,
		Location:         j.Location,
		Type:             j.Type.String(),
		MinSalary:        toNullInt64(j.MinSalary),
		MaxSalary:        toNullInt64(j.MaxSalary),
		Experience:       j.Experience,
		Description:      j.Description,
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		Deadline:         j.Deadline.UnixMilli(),
		Ctime:            j.Ctime,
	}
}

func (r *jobRepository) toDomain(j dao.Job) domain.Job {
	return domain.Job{
		ID:               j.Id,
		Title:            j.Title,
		CompanyName:      j.CompanyName,
		ImageURL:         j.ImageUrl,
		Location:         j.Location,
		Type:             domain.JobType(j.Type),
		MinSalary:        toAmount(j.MinSalary),
		MaxSalary:        toAmount(j.MaxSalary),
		Experience:       j.Experience,
		Description:      j.Description,
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		Deadline:         time.UnixMilli(j.Deadline),
		Ctime:            j.Ctime,
	}
}

func toNullInt64(a jobfilter.Amount) sql.NullInt64 {
	return sql.NullInt64{Int64: a.Value, Valid: a.Valid}
}

func toAmount(n sql.NullInt64) jobfilter.Amount {
	return jobfilter.Amount{Value: n.Int64, Valid: n.Valid}
}
