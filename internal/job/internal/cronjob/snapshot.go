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

package cronjob

import (
	"context"

	"github.com/ecodeclub/jobboard/internal/job/internal/service"
)

// RefreshSnapshotJob 定时重建职位快照，进程内过滤的时候读的就是它
type RefreshSnapshotJob struct {
	svc service.Service
}

func NewRefreshSnapshotJob(svc service.Service) *RefreshSnapshotJob {
	return &RefreshSnapshotJob{svc: svc}
}

func (j *RefreshSnapshotJob) Name() string {
	return "RefreshJobSnapshot"
}

func (j *RefreshSnapshotJob) Run(ctx context.Context) error {
	return j.svc.RefreshSnapshot(ctx)
}
