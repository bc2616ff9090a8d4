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
	"math"
	"strconv"
	"strings"
)

const (
	// UnitBase 薪资的基础单位，库里存的就是这个单位
	UnitBase int64 = 1
	// UnitThousand 前端滑块用的单位，一格代表一千
	UnitThousand int64 = 1000
)

// Amount 职位上的薪资数值。Valid 为 false 表示缺失或者无法解析，
// 这种记录在有薪资条件的时候一律不匹配。
type Amount struct {
	Value int64 `json:"value"`
	Valid bool  `json:"valid"`
}

func NewAmount(v int64) Amount {
	return Amount{Value: v, Valid: true}
}

// ParseAmount 解析职位上的薪资，失败返回 Valid 为 false 的 Amount
func ParseAmount(s string) Amount {
	v, ok := parseNumber(s, UnitBase)
	if !ok {
		return Amount{}
	}
	return NewAmount(v)
}

// ParseBound 解析过滤条件里的薪资边界，解析失败返回 nil，即不限制
func ParseBound(s string) *int64 {
	return ParseBoundIn(s, UnitBase)
}

// ParseBoundIn 按照 unit 把前端单位换算成基础单位
func ParseBoundIn(s string, unit int64) *int64 {
	v, ok := parseNumber(s, unit)
	if !ok {
		return nil
	}
	return &v
}

func parseNumber(s string, unit int64) (int64, bool) {
	if unit <= 0 {
		return 0, false
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v > math.MaxInt64/unit || v < math.MinInt64/unit {
			return 0, false
		}
		return v * unit, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	f = math.Round(f * float64(unit))
	// float64(math.MaxInt64) 实际等于 2^63，所以右边界用 >=
	if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// Ptr 给前端展示用，缺失的薪资返回 nil
func (a Amount) Ptr() *int64 {
	if !a.Valid {
		return nil
	}
	v := a.Value
	return &v
}
