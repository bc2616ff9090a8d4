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

// Package jobfilter 是职位过滤的唯一实现。
// SQL 下推、进程内快照过滤和 ES 查询都从 Compile 出来的 Criteria 出发，
// 保证同样的条件在不同路径上得到同样的结果。
package jobfilter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput 调用方传入了 nil 的记录集合或者过滤条件，属于编程错误
var ErrInvalidInput = errors.New("jobfilter: 非法输入")

// Record 过滤引擎看到的职位
type Record struct {
	Title     string
	Location  string
	JobType   string
	MinSalary Amount
	MaxSalary Amount
}

type Filterable interface {
	FilterRecord() Record
}

// Spec 过滤条件。零值和 nil 都表示该维度不限制。
type Spec struct {
	JobTitle string
	Location string
	// JobType 为 nil 表示任意类型
	JobType   *string
	MinSalary *int64
	MaxSalary *int64
}

// Criteria 归一化之后的过滤条件，可比较，可以直接作为缓存的 key
type Criteria struct {
	Title    string
	Location string

	HasType bool
	Type    string

	HasMinSalary bool
	MinSalary    int64
	HasMaxSalary bool
	MaxSalary    int64
}

func Compile(spec Spec) Criteria {
	c := Criteria{
		Title:    TextKey(spec.JobTitle),
		Location: TextKey(spec.Location),
	}
	if spec.JobType != nil {
		if key := TypeKey(*spec.JobType); key != "" {
			c.HasType = true
			c.Type = key
		}
	}
	if spec.MinSalary != nil {
		c.HasMinSalary = true
		c.MinSalary = *spec.MinSalary
	}
	if spec.MaxSalary != nil {
		c.HasMaxSalary = true
		c.MaxSalary = *spec.MaxSalary
	}
	return c
}

// Empty 没有任何条件
func (c Criteria) Empty() bool {
	return c == Criteria{}
}

// Match 所有生效的条件之间是 AND 关系
func Match(r Record, c Criteria) bool {
	if c.Title != "" && !strings.Contains(TextKey(r.Title), c.Title) {
		return false
	}
	if c.Location != "" && !strings.Contains(TextKey(r.Location), c.Location) {
		return false
	}
	if c.HasType && TypeKey(r.JobType) != c.Type {
		return false
	}
	// 薪资按照区间重叠来判断，记录上的薪资不可用就直接不匹配
	if c.HasMinSalary && (!r.MaxSalary.Valid || r.MaxSalary.Value < c.MinSalary) {
		return false
	}
	if c.HasMaxSalary && (!r.MinSalary.Valid || r.MinSalary.Value > c.MaxSalary) {
		return false
	}
	return true
}

// Filter 返回满足 spec 的记录，保持原有顺序，不修改入参
func Filter[T Filterable](records []T, spec *Spec) ([]T, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: spec 为 nil", ErrInvalidInput)
	}
	return FilterCriteria(records, Compile(*spec))
}

func FilterCriteria[T Filterable](records []T, c Criteria) ([]T, error) {
	if records == nil {
		return nil, fmt.Errorf("%w: records 为 nil", ErrInvalidInput)
	}
	res := make([]T, 0, len(records))
	for _, r := range records {
		if Match(r.FilterRecord(), c) {
			res = append(res, r)
		}
	}
	return res, nil
}
