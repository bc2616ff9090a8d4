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

import "github.com/ecodeclub/jobboard/internal/pkg/jobfilter"

// QueryMeta 关键字里的一个词，Col 为空表示在所有列上匹配
type QueryMeta struct {
	Col     string
	Keyword string
	IsAll   bool
}

type Job struct {
	ID          int64
	Title       string
	CompanyName string
	ImageURL    string
	Location    string
	Type        string
	MinSalary   jobfilter.Amount
	MaxSalary   jobfilter.Amount
	Experience  string
	Description string
	// 毫秒
	Deadline int64
	Ctime    int64
}

func (j Job) FilterRecord() jobfilter.Record {
	return jobfilter.Record{
		Title:     j.Title,
		Location:  j.Location,
		JobType:   j.Type,
		MinSalary: j.MinSalary,
		MaxSalary: j.MaxSalary,
	}
}
