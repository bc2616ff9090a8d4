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
	"strings"
	"unicode"
)

// TextKey 子串匹配字段（职位名称、地点）的归一化形式：
// 去掉首尾空白，转小写，并去掉所有空白和连字符、下划线。
// 入库时的 title_key/location_key 也用它计算，所以 SQL 和内存两条路径结果一致。
func TextKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.Is(unicode.Pd, r) || r == '_' {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// TypeKey 精确匹配字段（工作类型）的归一化形式，只忽略大小写和空白
func TypeKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
