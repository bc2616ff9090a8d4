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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearchServer 按 search_after 翻页返回 total 个文档，id 从大到小
type fakeSearchServer struct {
	total int
	mu    sync.Mutex
	reqs  []map[string]any
}

func (f *fakeSearchServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var req map[string]any
	_ = json.Unmarshal(body, &req)
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	f.mu.Unlock()

	size := int(req["size"].(float64))
	start := f.total
	if after, ok := req["search_after"].([]any); ok {
		start = int(after[1].(float64)) - 1
	}
	hits := make([]map[string]any, 0, size)
	for id := start; id >= 1 && len(hits) < size; id-- {
		ctime := 1000 + id
		hits = append(hits, map[string]any{
			"_index":  JobIndexName,
			"_id":     fmt.Sprint(id),
			"_source": map[string]any{"id": id, "title": fmt.Sprintf("job %d", id), "ctime": ctime},
			"sort":    []any{ctime, id},
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"hits": map[string]any{
			"total": map[string]any{"value": f.total, "relation": "eq"},
			"hits":  hits,
		},
	})
}

func TestJobElasticDAO_SearchJob_ReadsAllPages(t *testing.T) {
	testCases := []struct {
		name     string
		total    int
		pageSize int
		wantReqs int
	}{
		{name: "超过一页", total: 450, pageSize: defaultPageSize, wantReqs: 3},
		{name: "刚好整页", total: 4, pageSize: 2, wantReqs: 3},
		{name: "不足一页", total: 3, pageSize: 5, wantReqs: 1},
		{name: "没有结果", total: 0, pageSize: 5, wantReqs: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := &fakeSearchServer{total: tc.total}
			server := httptest.NewServer(srv)
			defer server.Close()
			client, err := elastic.NewSimpleClient(elastic.SetURL(server.URL))
			require.NoError(t, err)
			d := NewJobElasticDAO(client).(*JobElasticDAO)
			d.pageSize = tc.pageSize

			jobs, err := d.SearchJob(context.Background(), nil, jobfilter.Criteria{})
			require.NoError(t, err)
			require.Len(t, jobs, tc.total)
			for i, job := range jobs {
				assert.Equal(t, int64(tc.total-i), job.ID)
			}

			require.Len(t, srv.reqs, tc.wantReqs)
			_, ok := srv.reqs[0]["search_after"]
			assert.False(t, ok)
			for _, req := range srv.reqs[1:] {
				assert.Contains(t, req, "search_after")
				assert.Equal(t, float64(tc.pageSize), req["size"])
			}
		})
	}
}
