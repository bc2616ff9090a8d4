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
	"testing"
	"time"

	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJob(now time.Time) Job {
	return Job{
		Title:            "Full Stack Developer",
		CompanyName:      "Amazon",
		Location:         "Chennai",
		Type:             JobTypeFullTime,
		MinSalary:        jobfilter.NewAmount(500000),
		MaxSalary:        jobfilter.NewAmount(900000),
		Experience:       "1-3 yr Exp",
		Description:      "build things",
		Requirements:     "go",
		Responsibilities: "ship",
		Deadline:         now.AddDate(0, 0, 7),
	}
}

func TestJob_Validate(t *testing.T) {
	now := time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)
	testCases := []struct {
		name    string
		job     func() Job
		wantErr error
	}{
		{
			name:    "合法",
			job:     func() Job { return validJob(now) },
			wantErr: nil,
		},
		{
			name: "截止日期是今天",
			job: func() Job {
				j := validJob(now)
				j.Deadline = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
				return j
			},
		},
		{
			name: "截止日期已过",
			job: func() Job {
				j := validJob(now)
				j.Deadline = time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC)
				return j
			},
			wantErr: ErrInvalidJob,
		},
		{
			name: "没有截止日期",
			job: func() Job {
				j := validJob(now)
				j.Deadline = time.Time{}
				return j
			},
			wantErr: ErrInvalidJob,
		},
		{
			name: "标题为空白",
			job: func() Job {
				j := validJob(now)
				j.Title = "  "
				return j
			},
			wantErr: ErrInvalidJob,
		},
		{
			name: "未知类型",
			job: func() Job {
				j := validJob(now)
				j.Type = "Freelance"
				return j
			},
			wantErr: ErrInvalidJob,
		},
		{
			name: "薪资不是数字",
			job: func() Job {
				j := validJob(now)
				j.MinSalary = jobfilter.ParseAmount("abc")
				return j
			},
			wantErr: ErrInvalidJob,
		},
		{
			name: "最高薪资低于最低薪资",
			job: func() Job {
				j := validJob(now)
				j.MaxSalary = jobfilter.NewAmount(100)
				return j
			},
			wantErr: ErrInvalidJob,
		},
		{
			name: "负数薪资",
			job: func() Job {
				j := validJob(now)
				j.MinSalary = jobfilter.NewAmount(-1)
				return j
			},
			wantErr: ErrInvalidJob,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.job().Validate(now)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParseJobType(t *testing.T) {
	testCases := []struct {
		val    string
		want   JobType
		wantOk bool
	}{
		{val: "", want: JobTypeFullTime, wantOk: true},
		{val: "part-time", want: JobTypePartTime, wantOk: true},
		{val: " INTERNSHIP ", want: JobTypeInternship, wantOk: true},
		{val: "Contract", want: JobTypeContract, wantOk: true},
		{val: "default-job-type", wantOk: false},
	}
	for _, tc := range testCases {
		t.Run(tc.val, func(t *testing.T) {
			got, ok := ParseJobType(tc.val)
			assert.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatExperience(t *testing.T) {
	res, err := FormatExperience(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "1-3 yr Exp", res)

	res, err = FormatExperience(0.5, 2.5)
	require.NoError(t, err)
	assert.Equal(t, "0.5-2.5 yr Exp", res)

	_, err = FormatExperience(3, 1)
	assert.ErrorIs(t, err, ErrInvalidJob)
}

func TestSortNewestFirst(t *testing.T) {
	jobs := []Job{
		{ID: 1, Ctime: 100},
		{ID: 2, Ctime: 300},
		{ID: 3, Ctime: 200},
		{ID: 4, Ctime: 300},
	}
	SortNewestFirst(jobs)
	got := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		got = append(got, j.ID)
	}
	assert.Equal(t, []int64{4, 2, 3, 1}, got)
}

func TestJob_PostedAgo(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	testCases := []struct {
		ago  time.Duration
		want string
	}{
		{ago: 30 * time.Minute, want: "Just now"},
		{ago: 12 * time.Hour, want: "12h Ago"},
		{ago: 36 * time.Hour, want: "1d Ago"},
		{ago: 48 * time.Hour, want: "2d Ago"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			j := Job{Ctime: now.Add(-tc.ago).UnixMilli()}
			assert.Equal(t, tc.want, j.PostedAgo(now))
		})
	}
}
