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
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/event"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository"
	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/gotomicro/ego/core/elog"
)

var ErrJobNotFound = repository.ErrJobNotFound

type FilterMode string

const (
	// FilterModeQuery 过滤条件下推到数据库
	FilterModeQuery FilterMode = "query"
	// FilterModeMemory 取全量快照，在进程内过滤
	FilterModeMemory FilterMode = "memory"
)

type Config struct {
	Mode        FilterMode    `yaml:"mode"`
	SnapshotTTL time.Duration `yaml:"snapshotTTL"`
}

//go:generate mockgen -source=./job.go -package=jobmocks -destination=../../mocks/job.mock.go -typed Service
type Service interface {
	Create(ctx context.Context, job domain.Job) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Job, error)
	// List 按创建时间倒序返回满足条件的职位
	List(ctx context.Context, spec *jobfilter.Spec) ([]domain.Job, error)
	RefreshSnapshot(ctx context.Context) error
	// Reindex 把所有职位重新同步到搜索，返回成功的个数
	Reindex(ctx context.Context) (int, error)
}

type IDGenerator interface {
	Next() int64
}

type snapshotView struct {
	view     *jobfilter.View[domain.Job]
	loadedAt time.Time
	// 开始加载快照时的代数
	gen int64
}

type jobService struct {
	repo     repository.JobRepository
	producer event.SyncEventProducer
	idGen    IDGenerator
	cfg      Config
	view     atomic.Pointer[snapshotView]
	// 每创建一个职位加一，旧代数加载出来的快照不能再用
	gen    atomic.Int64
	now    func() time.Time
	logger *elog.Component
}

func NewJobService(repo repository.JobRepository,
	producer event.SyncEventProducer,
	idGen IDGenerator,
	cfg Config) Service {
	if cfg.Mode == "" {
		cfg.Mode = FilterModeQuery
	}
	if cfg.SnapshotTTL <= 0 {
		cfg.SnapshotTTL = 30 * time.Second
	}
	return &jobService{
		repo:     repo,
		producer: producer,
		idGen:    idGen,
		cfg:      cfg,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (s *jobService) Create(ctx context.Context, job domain.Job) (int64, error) {
	now := s.now()
	if err := job.Validate(now); err != nil {
		return 0, err
	}
	job.ID = s.idGen.Next()
	job.Ctime = now.UnixMilli()
	id, err := s.repo.Create(ctx, job)
	if err != nil {
		return 0, err
	}
	s.gen.Add(1)
	s.view.Store(nil)
	s.syncToSearch(ctx, job)
	return id, nil
}

func (s *jobService) Detail(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindById(ctx, id)
}

func (s *jobService) List(ctx context.Context, spec *jobfilter.Spec) ([]domain.Job, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: spec 为 nil", jobfilter.ErrInvalidInput)
	}
	if s.cfg.Mode != FilterModeMemory {
		return s.repo.Find(ctx, jobfilter.Compile(*spec))
	}
	sv, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return sv.view.Apply(spec)
}

func (s *jobService) snapshot(ctx context.Context) (*snapshotView, error) {
	gen := s.gen.Load()
	sv := s.view.Load()
	if sv != nil && sv.gen == gen && s.now().Sub(sv.loadedAt) < s.cfg.SnapshotTTL {
		return sv, nil
	}
	jobs, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.storeView(jobs, gen)
}

// storeView 加载期间有新职位创建的话，结果只给本次请求用，不会缓存
func (s *jobService) storeView(jobs []domain.Job, gen int64) (*snapshotView, error) {
	view, err := jobfilter.NewView(jobs)
	if err != nil {
		return nil, err
	}
	sv := &snapshotView{view: view, loadedAt: s.now(), gen: gen}
	if s.gen.Load() == gen {
		s.view.Store(sv)
	}
	return sv, nil
}

func (s *jobService) RefreshSnapshot(ctx context.Context) error {
	gen := s.gen.Load()
	jobs, err := s.repo.RefreshSnapshot(ctx)
	if err != nil {
		return err
	}
	_, err = s.storeView(jobs, gen)
	return err
}

func (s *jobService) Reindex(ctx context.Context) (int, error) {
	jobs, err := s.repo.RefreshSnapshot(ctx)
	if err != nil {
		return 0, err
	}
	var (
		cnt  int
		errs []error
	)
	for _, job := range jobs {
		evt, err := event.NewSyncEvent(job)
		if err == nil {
			err = s.producer.Produce(ctx, evt)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("同步职位 %d 失败: %w", job.ID, err))
			continue
		}
		cnt++
	}
	return cnt, errors.Join(errs...)
}

func (s *jobService) syncToSearch(ctx context.Context, job domain.Job) {
	evt, err := event.NewSyncEvent(job)
	if err == nil {
		err = s.producer.Produce(ctx, evt)
	}
	if err != nil {
		s.logger.Error("发送职位同步搜索事件失败",
			elog.FieldErr(err),
			elog.Int64("id", job.ID))
	}
}
