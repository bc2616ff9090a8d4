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
	"testing"
	"time"

	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/event"
	evtmocks "github.com/ecodeclub/jobboard/internal/job/internal/event/mocks"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository"
	repomocks "github.com/ecodeclub/jobboard/internal/job/internal/repository/mocks"
	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type idFunc func() int64

func (f idFunc) Next() int64 {
	return f()
}

func newTestService(repo repository.JobRepository, producer event.SyncEventProducer,
	cfg Config, now time.Time) *jobService {
	svc := NewJobService(repo, producer, idFunc(func() int64 { return 123 }), cfg).(*jobService)
	svc.now = func() time.Time { return now }
	return svc
}

func testJobs() []domain.Job {
	return []domain.Job{
		{ID: 5, Title: "Backend Developer", Location: "Chennai", Type: domain.JobTypeFullTime,
			MinSalary: jobfilter.NewAmount(800000), MaxSalary: jobfilter.NewAmount(1500000), Ctime: 500},
		{ID: 4, Title: "Full-Stack Engineer", Location: "Remote", Type: domain.JobTypeContract,
			MaxSalary: jobfilter.NewAmount(1200000), Ctime: 400},
		{ID: 3, Title: "UX/UI Designer", Location: "New Delhi", Type: domain.JobTypeInternship,
			MinSalary: jobfilter.NewAmount(100000), MaxSalary: jobfilter.NewAmount(200000), Ctime: 300},
		{ID: 2, Title: "Node Js Developer", Location: "Bangalore", Type: domain.JobTypePartTime,
			MinSalary: jobfilter.NewAmount(300000), MaxSalary: jobfilter.NewAmount(450000), Ctime: 200},
		{ID: 1, Title: "Full Stack Developer", Location: "Chennai", Type: domain.JobTypeFullTime,
			MinSalary: jobfilter.NewAmount(500000), MaxSalary: jobfilter.NewAmount(900000), Ctime: 100},
	}
}

func jobIds(jobs []domain.Job) []int64 {
	res := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		res = append(res, j.ID)
	}
	return res
}

func TestJobService_Create(t *testing.T) {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.Local)
	valid := domain.Job{
		Title:            "Go Developer",
		CompanyName:      "ecodeclub",
		Location:         "Remote",
		Type:             domain.JobTypeFullTime,
		MinSalary:        jobfilter.NewAmount(100),
		MaxSalary:        jobfilter.NewAmount(200),
		Experience:       "1-3 yr Exp",
		Description:      "desc",
		Requirements:     "req",
		Responsibilities: "resp",
		Deadline:         now.AddDate(0, 1, 0),
	}
	testCases := []struct {
		name   string
		before func(t *testing.T, ctrl *gomock.Controller) (repository.JobRepository, event.SyncEventProducer)
		job    domain.Job

		wantId  int64
		wantErr error
	}{
		{
			name: "创建成功",
			before: func(t *testing.T, ctrl *gomock.Controller) (repository.JobRepository, event.SyncEventProducer) {
				repo := repomocks.NewMockJobRepository(ctrl)
				producer := evtmocks.NewMockSyncEventProducer(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, job domain.Job) (int64, error) {
					assert.Equal(t, int64(123), job.ID)
					assert.Equal(t, now.UnixMilli(), job.Ctime)
					return job.ID, nil
				})
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt event.SyncEvent) error {
					assert.Equal(t, event.JobBiz, evt.Biz)
					assert.Equal(t, int64(123), evt.BizID)
					return nil
				})
				return repo, producer
			},
			job:    valid,
			wantId: 123,
		},
		{
			name: "发送事件失败不影响创建",
			before: func(t *testing.T, ctrl *gomock.Controller) (repository.JobRepository, event.SyncEventProducer) {
				repo := repomocks.NewMockJobRepository(ctrl)
				producer := evtmocks.NewMockSyncEventProducer(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(123), nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
				return repo, producer
			},
			job:    valid,
			wantId: 123,
		},
		{
			name: "非法职位不落库",
			before: func(t *testing.T, ctrl *gomock.Controller) (repository.JobRepository, event.SyncEventProducer) {
				return repomocks.NewMockJobRepository(ctrl), evtmocks.NewMockSyncEventProducer(ctrl)
			},
			job: func() domain.Job {
				j := valid
				j.Deadline = now.AddDate(0, 0, -1)
				return j
			}(),
			wantErr: domain.ErrInvalidJob,
		},
		{
			name: "数据库错误",
			before: func(t *testing.T, ctrl *gomock.Controller) (repository.JobRepository, event.SyncEventProducer) {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock db error"))
				return repo, evtmocks.NewMockSyncEventProducer(ctrl)
			},
			job:     valid,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, producer := tc.before(t, ctrl)
			svc := newTestService(repo, producer, Config{}, now)
			id, err := svc.Create(context.Background(), tc.job)
			if tc.wantErr != nil {
				if errors.Is(tc.wantErr, domain.ErrInvalidJob) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.EqualError(t, err, tc.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestJobService_ListQueryMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	jobType := "Full-time"
	spec := &jobfilter.Spec{JobTitle: " Developer ", JobType: &jobType}
	repo.EXPECT().Find(gomock.Any(), jobfilter.Compile(*spec)).Return(testJobs()[:1], nil)

	svc := newTestService(repo, evtmocks.NewMockSyncEventProducer(ctrl), Config{}, time.Now())
	res, err := svc.List(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, jobIds(res))

	_, err = svc.List(context.Background(), nil)
	assert.ErrorIs(t, err, jobfilter.ErrInvalidInput)
}

func TestJobService_ListMemoryMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	// TTL 内只加载一次快照
	repo.EXPECT().Snapshot(gomock.Any()).Return(testJobs(), nil).Times(1)

	svc := newTestService(repo, evtmocks.NewMockSyncEventProducer(ctrl),
		Config{Mode: FilterModeMemory, SnapshotTTL: time.Minute}, time.Now())

	contract := "contract"
	testCases := []struct {
		name    string
		spec    jobfilter.Spec
		wantIds []int64
	}{
		{name: "不限制", spec: jobfilter.Spec{}, wantIds: []int64{5, 4, 3, 2, 1}},
		{name: "标题", spec: jobfilter.Spec{JobTitle: "full stack"}, wantIds: []int64{4, 1}},
		{name: "地点", spec: jobfilter.Spec{Location: "CHENNAI"}, wantIds: []int64{5, 1}},
		{name: "类型", spec: jobfilter.Spec{JobType: &contract}, wantIds: []int64{4}},
		{name: "薪资", spec: jobfilter.Spec{MaxSalary: ptr[int64](400000)}, wantIds: []int64{3, 2}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.List(context.Background(), &tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.wantIds, jobIds(res))
			// 和直接在全量数据上过滤的结果一致
			want, err := jobfilter.Filter(testJobs(), &tc.spec)
			require.NoError(t, err)
			assert.Equal(t, jobIds(want), jobIds(res))
		})
	}
}

func TestJobService_SnapshotExpire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	producer := evtmocks.NewMockSyncEventProducer(ctrl)
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.Local)
	svc := newTestService(repo, producer, Config{Mode: FilterModeMemory, SnapshotTTL: time.Minute}, now)

	repo.EXPECT().Snapshot(gomock.Any()).Return(testJobs(), nil)
	_, err := svc.List(context.Background(), &jobfilter.Spec{})
	require.NoError(t, err)

	// 过期之后重新加载
	svc.now = func() time.Time { return now.Add(2 * time.Minute) }
	repo.EXPECT().Snapshot(gomock.Any()).Return(testJobs()[:2], nil)
	res, err := svc.List(context.Background(), &jobfilter.Spec{})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 4}, jobIds(res))

	// 刷新之后直接使用新的快照
	repo.EXPECT().RefreshSnapshot(gomock.Any()).Return(testJobs()[4:], nil)
	require.NoError(t, svc.RefreshSnapshot(context.Background()))
	res, err = svc.List(context.Background(), &jobfilter.Spec{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, jobIds(res))

	// 加载失败
	repo.EXPECT().RefreshSnapshot(gomock.Any()).Return(nil, errors.New("mock db error"))
	assert.Error(t, svc.RefreshSnapshot(context.Background()))
}

func TestJobService_CreateResetsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	producer := evtmocks.NewMockSyncEventProducer(ctrl)
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.Local)
	svc := newTestService(repo, producer, Config{Mode: FilterModeMemory, SnapshotTTL: time.Hour}, now)

	repo.EXPECT().Snapshot(gomock.Any()).Return(testJobs(), nil).Times(2)
	_, err := svc.List(context.Background(), &jobfilter.Spec{})
	require.NoError(t, err)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(123), nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	_, err = svc.Create(context.Background(), domain.Job{
		Title:            "Go Developer",
		CompanyName:      "ecodeclub",
		Location:         "Remote",
		Type:             domain.JobTypeFullTime,
		MinSalary:        jobfilter.NewAmount(100),
		MaxSalary:        jobfilter.NewAmount(200),
		Experience:       "1-3 yr Exp",
		Description:      "desc",
		Requirements:     "req",
		Responsibilities: "resp",
		Deadline:         now,
	})
	require.NoError(t, err)

	_, err = svc.List(context.Background(), &jobfilter.Spec{})
	require.NoError(t, err)
}

func TestJobService_CreateDuringSnapshotLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	producer := evtmocks.NewMockSyncEventProducer(ctrl)
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.Local)
	svc := newTestService(repo, producer, Config{Mode: FilterModeMemory, SnapshotTTL: time.Hour}, now)

	created := domain.Job{
		Title:            "Go Developer",
		CompanyName:      "ecodeclub",
		Location:         "Remote",
		Type:             domain.JobTypeFullTime,
		MinSalary:        jobfilter.NewAmount(100),
		MaxSalary:        jobfilter.NewAmount(200),
		Experience:       "1-3 yr Exp",
		Description:      "desc",
		Requirements:     "req",
		Responsibilities: "resp",
		Deadline:         now,
	}
	loading := make(chan struct{})
	createDone := make(chan struct{})
	// 第一次加载在创建之前开始、在创建之后才返回，拿到的是旧数据
	gomock.InOrder(
		repo.EXPECT().Snapshot(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.Job, error) {
			close(loading)
			<-createDone
			return testJobs(), nil
		}),
		repo.EXPECT().Snapshot(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.Job, error) {
			job := created
			job.ID, job.Ctime = 123, now.UnixMilli()
			return append([]domain.Job{job}, testJobs()...), nil
		}),
	)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(123), nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	listErr := make(chan error, 1)
	go func() {
		_, err := svc.List(context.Background(), &jobfilter.Spec{})
		listErr <- err
	}()
	<-loading
	_, err := svc.Create(context.Background(), created)
	require.NoError(t, err)
	close(createDone)
	require.NoError(t, <-listErr)

	res, err := svc.List(context.Background(), &jobfilter.Spec{JobTitle: "go developer"})
	require.NoError(t, err)
	assert.Equal(t, []int64{123}, jobIds(res))

	// 新快照已经缓存，不会再加载
	res, err = svc.List(context.Background(), &jobfilter.Spec{JobTitle: "go developer"})
	require.NoError(t, err)
	assert.Equal(t, []int64{123}, jobIds(res))
}

func TestJobService_Reindex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	producer := evtmocks.NewMockSyncEventProducer(ctrl)
	repo.EXPECT().RefreshSnapshot(gomock.Any()).Return(testJobs(), nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt event.SyncEvent) error {
		if evt.BizID == 3 {
			return errors.New("mock mq error")
		}
		return nil
	}).Times(5)

	svc := newTestService(repo, producer, Config{}, time.Now())
	cnt, err := svc.Reindex(context.Background())
	assert.Equal(t, 4, cnt)
	assert.ErrorContains(t, err, "同步职位 3 失败")
}

func ptr[T any](v T) *T {
	return &v
}
