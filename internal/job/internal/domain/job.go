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

package domain

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
)

var ErrInvalidJob = errors.New("职位信息不合法")

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

var jobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship}

// ParseJobType 空串表示默认的全职，大小写和空白不敏感
func ParseJobType(s string) (JobType, bool) {
	if strings.TrimSpace(s) == "" {
		return JobTypeFullTime, true
	}
	key := jobfilter.TypeKey(s)
	for _, t := range jobTypes {
		if jobfilter.TypeKey(string(t)) == key {
			return t, true
		}
	}
	return "", false
}

func (t JobType) String() string {
	return string(t)
}

const DeadlineLayout = time.DateOnly

type Job struct {
	ID          int64
	Title       string
	CompanyName string
	ImageURL    string
	Location    string
	Type        JobType
	MinSalary   jobfilter.Amount
	MaxSalary   jobfilter.Amount
	// 例如 1-3 yr Exp
	Experience       string
	Description      string
	Requirements     string
	Responsibilities string
	Deadline         time.Time
	// 创建时间，毫秒
	Ctime int64
}

func (j Job) FilterRecord() jobfilter.Record {
	return jobfilter.Record{
		Title:     j.Title,
		Location:  j.Location,
		JobType:   j.Type.String(),
		MinSalary: j.MinSalary,
		MaxSalary: j.MaxSalary,
	}
}

// Validate 只用于新建职位，now 用来判断截止日期
func (j Job) Validate(now time.Time) error {
	required := []struct {
		field string
		val   string
	}{
		{"jobTitle", j.Title},
		{"companyName", j.CompanyName},
		{"location", j.Location},
		{"jobExperience", j.Experience},
		{"jobDescription", j.Description},
		{"requirements", j.Requirements},
		{"responsibilities", j.Responsibilities},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return fmt.Errorf("%w: %s 不能为空", ErrInvalidJob, r.field)
		}
	}
	if !slices.Contains(jobTypes, j.Type) {
		return fmt.Errorf("%w: 未知的工作类型 %q", ErrInvalidJob, j.Type)
	}
	if !j.MinSalary.Valid || !j.MaxSalary.Valid {
		return fmt.Errorf("%w: 薪资必须是数字", ErrInvalidJob)
	}
	if j.MinSalary.Value < 0 {
		return fmt.Errorf("%w: 薪资不能为负数", ErrInvalidJob)
	}
	if j.MaxSalary.Value < j.MinSalary.Value {
		return fmt.Errorf("%w: 最高薪资不能低于最低薪资", ErrInvalidJob)
	}
	if j.Deadline.IsZero() {
		return fmt.Errorf("%w: applicationDeadline 不能为空", ErrInvalidJob)
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if j.Deadline.Before(today) {
		return fmt.Errorf("%w: 截止日期不能早于今天", ErrInvalidJob)
	}
	return nil
}

// FormatExperience 把经验年限区间格式化成 "1-3 yr Exp"
func FormatExperience(minYears, maxYears float64) (string, error) {
	if minYears < 0 || maxYears < minYears {
		return "", fmt.Errorf("%w: 经验年限区间不合法 %v-%v", ErrInvalidJob, minYears, maxYears)
	}
	return fmt.Sprintf("%s-%s yr Exp",
		strconv.FormatFloat(minYears, 'f', -1, 64),
		strconv.FormatFloat(maxYears, 'f', -1, 64)), nil
}

// SortNewestFirst 按创建时间倒序，创建时间相同按 ID 倒序，稳定排序
func SortNewestFirst(jobs []Job) {
	slices.SortStableFunc(jobs, func(a, b Job) int {
		if a.Ctime != b.Ctime {
			if a.Ctime > b.Ctime {
				return -1
			}
			return 1
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		default:
			return 0
		}
	})
}

// PostedAgo 列表卡片上展示的发布时间
func (j Job) PostedAgo(now time.Time) string {
	d := now.Sub(time.UnixMilli(j.Ctime))
	switch {
	case d < time.Hour:
		return "Just now"
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh Ago", int(d/time.Hour))
	default:
		return fmt.Sprintf("%dd Ago", int(d/(24*time.Hour)))
	}
}
