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

package jobfilter

import (
	"encoding/json"
	"strings"
)

// LegacyAnyJobType 旧版前端用这个占位值表示“任意类型”，翻译成不限制
const LegacyAnyJobType = "default-job-type"

// FlexString 同时接受 JSON 字符串和数字，前端传的薪资两种都有
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	if string(data) == "null" {
		*f = ""
		return nil
	}
	*f = FlexString(data)
	return nil
}

// Request 列表和搜索共用的过滤参数，GET 从 query string 绑定，POST 从 JSON 绑定
type Request struct {
	JobTitle  string     `json:"jobTitle" form:"jobTitle"`
	Location  string     `json:"location" form:"location"`
	JobType   string     `json:"jobType" form:"jobType"`
	MinSalary FlexString `json:"minSalary" form:"minSalary"`
	MaxSalary FlexString `json:"maxSalary" form:"maxSalary"`
	// SalaryUnit 为 k 时薪资以千为单位
	SalaryUnit string `json:"salaryUnit" form:"salaryUnit"`
}

func (r Request) Spec() Spec {
	unit := UnitBase
	if strings.EqualFold(strings.TrimSpace(r.SalaryUnit), "k") {
		unit = UnitThousand
	}
	spec := Spec{
		JobTitle:  r.JobTitle,
		Location:  r.Location,
		MinSalary: ParseBoundIn(string(r.MinSalary), unit),
		MaxSalary: ParseBoundIn(string(r.MaxSalary), unit),
	}
	if t := strings.TrimSpace(r.JobType); t != "" && t != LegacyAnyJobType {
		spec.JobType = &t
	}
	return spec
}
