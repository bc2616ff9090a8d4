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

package web

import (
	"strconv"

	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/ecodeclub/jobboard/internal/search/internal/domain"
)

// SearchReq 过滤参数和职位列表接口完全一样，多一个关键字
type SearchReq struct {
	Keyword string `json:"keyword" form:"keyword"`
	jobfilter.Request
}

type JobVO struct {
	ID            string `json:"id"`
	JobTitle      string `json:"jobTitle"`
	CompanyName   string `json:"companyName"`
	ImageUrl      string `json:"imageUrl"`
	Location      string `json:"location"`
	JobType       string `json:"jobType"`
	MinSalary     *int64 `json:"minSalary"`
	MaxSalary     *int64 `json:"maxSalary"`
	JobExperience string `json:"jobExperience"`
	CreatedAt     int64  `json:"createdAt"`
}

func newJobVO(job domain.Job) JobVO {
	return JobVO{
		ID:            strconv.FormatInt(job.ID, 10),
		JobTitle:      job.Title,
		CompanyName:   job.CompanyName,
		ImageUrl:      job.ImageURL,
		Location:      job.Location,
		JobType:       job.Type,
		MinSalary:     job.MinSalary.Ptr(),
		MaxSalary:     job.MaxSalary.Ptr(),
		JobExperience: job.Experience,
		CreatedAt:     job.Ctime,
	}
}

type SearchResult struct {
	Count int     `json:"count"`
	List  []JobVO `json:"list"`
}
