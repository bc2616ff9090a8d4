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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/ecodeclub/jobboard/internal/pkg/textsummary"
)

const summaryLength = 160

type IdReq struct {
	Id jobfilter.FlexString `json:"id"`
}

func parseId(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return id, err == nil && id > 0
}

type CreateJobReq struct {
	JobTitle    string               `json:"jobTitle"`
	CompanyName string               `json:"companyName"`
	ImageUrl    string               `json:"imageUrl"`
	Location    string               `json:"location"`
	JobType     string               `json:"jobType"`
	MinSalary   jobfilter.FlexString `json:"minSalary"`
	MaxSalary   jobfilter.FlexString `json:"maxSalary"`
	// JobExperience 为空时用 MinExperience 和 MaxExperience 拼出来
	JobExperience       string   `json:"jobExperience"`
	MinExperience       *float64 `json:"minExperience"`
	MaxExperience       *float64 `json:"maxExperience"`
	JobDescription      string   `json:"jobDescription"`
	Requirements        string   `json:"requirements"`
	Responsibilities    string   `json:"responsibilities"`
	ApplicationDeadline string   `json:"applicationDeadline"`
}

func (r CreateJobReq) toDomain() (domain.Job, error) {
	typ, ok := domain.ParseJobType(r.JobType)
	if !ok {
		return domain.Job{}, fmt.Errorf("%w: 未知的工作类型 %q", domain.ErrInvalidJob, r.JobType)
	}
	exp := strings.TrimSpace(r.JobExperience)
	if exp == "" && (r.MinExperience != nil || r.MaxExperience != nil) {
		if r.MinExperience == nil || r.MaxExperience == nil {
			return domain.Job{}, fmt.Errorf("%w: 经验年限需要同时给出上下限", domain.ErrInvalidJob)
		}
		var err error
		exp, err = domain.FormatExperience(*r.MinExperience, *r.MaxExperience)
		if err != nil {
			return domain.Job{}, err
		}
	}
	var deadline time.Time
	if s := strings.TrimSpace(r.ApplicationDeadline); s != "" {
		var err error
		deadline, err = time.ParseInLocation(domain.DeadlineLayout, s, time.Local)
		if err != nil {
			return domain.Job{}, fmt.Errorf("%w: applicationDeadline 格式应为 %s", domain.ErrInvalidJob, domain.DeadlineLayout)
		}
	}
	return domain.Job{
		Title:            strings.TrimSpace(r.JobTitle),
		CompanyName:      strings.TrimSpace(r.CompanyName),
		ImageURL:         strings.TrimSpace(r.ImageUrl),
		Location:         strings.TrimSpace(r.Location),
		Type:             typ,
		MinSalary:        jobfilter.ParseAmount(string(r.MinSalary)),
		MaxSalary:        jobfilter.ParseAmount(string(r.MaxSalary)),
		Experience:       exp,
		Description:      r.JobDescription,
		Requirements:     r.Requirements,
		Responsibilities: r.Responsibilities,
		Deadline:         deadline,
	}, nil
}

type JobVO struct {
	ID                  string `json:"id"`
	JobTitle            string `json:"jobTitle"`
	CompanyName         string `json:"companyName"`
	ImageUrl            string `json:"imageUrl"`
	Location            string `json:"location"`
	JobType             string `json:"jobType"`
	MinSalary           *int64 `json:"minSalary"`
	MaxSalary           *int64 `json:"maxSalary"`
	JobExperience       string `json:"jobExperience"`
	JobDescription      string `json:"jobDescription"`
	Summary             string `json:"summary"`
	Requirements        string `json:"requirements"`
	Responsibilities    string `json:"responsibilities"`
	ApplicationDeadline string `json:"applicationDeadline"`
	CreatedAt           int64  `json:"createdAt"`
	PostedAgo           string `json:"postedAgo"`
}

func newJobVO(job domain.Job, now time.Time) JobVO {
	return JobVO{
		ID:                  strconv.FormatInt(job.ID, 10),
		JobTitle:            job.Title,
		CompanyName:         job.CompanyName,
		ImageUrl:            job.ImageURL,
		Location:            job.Location,
		JobType:             job.Type.String(),
		MinSalary:           job.MinSalary.Ptr(),
		MaxSalary:           job.MaxSalary.Ptr(),
		JobExperience:       job.Experience,
		JobDescription:      job.Description,
		Summary:             textsummary.Summarize(job.Description, summaryLength),
		Requirements:        job.Requirements,
		Responsibilities:    job.Responsibilities,
		ApplicationDeadline: job.Deadline.In(time.Local).Format(domain.DeadlineLayout),
		CreatedAt:           job.Ctime,
		PostedAgo:           job.PostedAgo(now),
	}
}

type ListJobResp struct {
	Count int     `json:"count"`
	List  []JobVO `json:"list"`
}
