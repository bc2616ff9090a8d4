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
	"fmt"
	"slices"
	"sync"
)

// View 原始记录加上过滤条件推导出来的视图。
// 只记住最近一次条件的结果，原始记录变了就重新建一个 View。
type View[T Filterable] struct {
	records []T

	mu      sync.Mutex
	hasLast bool
	last    Criteria
	lastRes []T
}

// NewView 之后调用方不能再修改 records
func NewView[T Filterable](records []T) (*View[T], error) {
	if records == nil {
		return nil, fmt.Errorf("%w: records 为 nil", ErrInvalidInput)
	}
	return &View[T]{records: records}, nil
}

func (v *View[T]) Len() int {
	return len(v.records)
}

// Apply 返回的切片属于调用方，可以随意修改
func (v *View[T]) Apply(spec *Spec) ([]T, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: spec 为 nil", ErrInvalidInput)
	}
	c := Compile(*spec)
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.hasLast || v.last != c {
		res, err := FilterCriteria(v.records, c)
		if err != nil {
			return nil, err
		}
		v.hasLast, v.last, v.lastRes = true, c, res
	}
	return slices.Clone(v.lastRes), nil
}
