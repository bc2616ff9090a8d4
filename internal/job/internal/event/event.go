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

package event

import (
	"encoding/json"

	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
)

const (
	SyncTopic = "sync_data_to_search"
	JobBiz    = "job"
)

type SyncEvent struct {
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
	Data  string `json:"data"`
}

// Job 写入 job_index 的文档，*_key 字段和数据库里的一样由 jobfilter 计算
type Job struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	TitleKey         string `json:"title_key"`
	CompanyName      string `json:"company_name"`
	ImageURL         string `json:"image_url"`
	Location         string `json:"location"`
	LocationKey      string `json:"location_key"`
	Type             string `json:"type"`
	TypeKey          string `json:"type_key"`
	MinSalary        *int64 `json:"min_salary"`
	MaxSalary        *int64 `json:"max_salary"`
	Experience       string `json:"experience"`
	Description      string `json:"description"`
	Requirements     string `json:"requirements"`
	Responsibilities string `json:"responsibilities"`
	Deadline         int64  `json:"deadline"`
	Ctime            int64  `json:"ctime"`
}

func NewSyncEvent(job domain.Job) (SyncEvent, error) {
	doc := Job{
		ID:               job.ID,
		Title:            job.Title,
		TitleKey:         jobfilter.TextKey(job.Title),
		CompanyName:      job.CompanyName,
		ImageURL:         job.ImageURL,
		Location:         job.Location,
		LocationKey:      jobfilter.TextKey(job.Location),
		Type:             job.Type.String(),
		TypeKey:          jobfilter.TypeKey(job.Type.String()),
		MinSalary:        job.MinSalary.Ptr(),
		MaxSalary:        job.MaxSalary.Ptr(),
		Experience:       job.Experience,
		Description:      job.Description,
		Requirements:     job.Requirements,
		Responsibilities: job.Responsibilities,
		Deadline:         job.Deadline.UnixMilli(),
		Ctime:            job.Ctime,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return SyncEvent{}, err
	}
	return SyncEvent{
		Biz:   JobBiz,
		BizID: job.ID,
		Data:  string(data),
	}, nil
}
