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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/pkg/errors"
)

var ErrJobNotFound = errors.New("职位缓存不存在")

const (
	expiration = 24 * time.Hour
	// 快照只是列表的兜底数据，过期时间短一些
	snapshotExpiration = 30 * time.Minute
	snapshotKey        = "snapshot"
)

//go:generate mockgen -source=./job.go -package=cachemocks -destination=./mocks/job.mock.go -typed JobCache
type JobCache interface {
	SetJob(ctx context.Context, job domain.Job) error
	GetJob(ctx context.Context, id int64) (domain.Job, error)
	// SetSnapshot 全部职位，按创建时间倒序
	SetSnapshot(ctx context.Context, jobs []domain.Job) error
	GetSnapshot(ctx context.Context) ([]domain.Job, error)
	DelSnapshot(ctx context.Context) error
}

type jobCache struct {
	ec ecache.Cache
}

func NewJobCache(ec ecache.Cache) JobCache {
	return &jobCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "job:",
		},
	}
}

func (c *jobCache) SetJob(ctx context.Context, job domain.Job) error {
	val, err := json.Marshal(job)
	if err != nil {
		return errors.Wrap(err, "序列化职位失败")
	}
	return c.ec.Set(ctx, c.jobKey(job.ID), string(val), expiration)
}

func (c *jobCache) GetJob(ctx context.Context, id int64) (domain.Job, error) {
	val := c.ec.Get(ctx, c.jobKey(id))
	if val.KeyNotFound() {
		return domain.Job{}, ErrJobNotFound
	}
	if val.Err != nil {
		return domain.Job{}, val.Err
	}
	str, err := val.String()
	if err != nil {
		return domain.Job{}, err
	}
	var job domain.Job
	err = json.Unmarshal([]byte(str), &job)
	return job, errors.Wrap(err, "反序列化职位失败")
}

func (c *jobCache) SetSnapshot(ctx context.Context, jobs []domain.Job) error {
	val, err := json.Marshal(jobs)
	if err != nil {
		return errors.Wrap(err, "序列化职位快照失败")
	}
	return c.ec.Set(ctx, snapshotKey, string(val), snapshotExpiration)
}

func (c *jobCache) GetSnapshot(ctx context.Context) ([]domain.Job, error) {
	val := c.ec.Get(ctx, snapshotKey)
	if val.KeyNotFound() {
		return nil, ErrJobNotFound
	}
	if val.Err != nil {
		return nil, val.Err
	}
	str, err := val.String()
	if err != nil {
		return nil, err
	}
	var jobs []domain.Job
	if err = json.Unmarshal([]byte(str), &jobs); err != nil {
		return nil, errors.Wrap(err, "反序列化职位快照失败")
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

func (c *jobCache) DelSnapshot(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, snapshotKey)
	return err
}

func (c *jobCache) jobKey(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
