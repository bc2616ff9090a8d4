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

package dao

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/search/internal/domain"
	"github.com/olivere/elastic/v7"
)

// Col Alias 是关键字里 "alias:keyword" 的前缀
type Col struct {
	Alias string
	Name  string
	Boost int
}

// buildCols 指定了列的关键字只在该列上匹配，其余的关键字在所有列上匹配
func buildCols(cols []Col, queryMetas []domain.QueryMeta) []elastic.Query {
	colMap := make(map[string][]string, len(cols))
	var all []string
	for _, meta := range queryMetas {
		idx := -1
		if !meta.IsAll {
			idx = slices.IndexFunc(cols, func(col Col) bool {
				return col.Alias == meta.Col
			})
		}
		if idx < 0 {
			all = append(all, meta.Keyword)
			continue
		}
		colMap[cols[idx].Name] = append(colMap[cols[idx].Name], meta.Keyword)
	}
	queries := make([]elastic.Query, 0, len(colMap)+1)
	if len(all) > 0 {
		fields := slice.Map(cols, func(idx int, src Col) string {
			return boosted(src)
		})
		queries = append(queries, elastic.NewMultiMatchQuery(strings.Join(all, " "), fields...))
	}
	for _, col := range cols {
		keywords, ok := colMap[col.Name]
		if !ok {
			continue
		}
		query := elastic.NewMatchQuery(col.Name, strings.Join(keywords, " "))
		if col.Boost != 0 {
			query = query.Boost(float64(col.Boost))
		}
		queries = append(queries, query)
	}
	return queries
}

func boosted(col Col) string {
	if col.Boost == 0 {
		return col.Name
	}
	return col.Name + "^" + strconv.Itoa(col.Boost)
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

// containsPattern 归一化之后的子串匹配
func containsPattern(key string) string {
	return "*" + wildcardEscaper.Replace(key) + "*"
}
