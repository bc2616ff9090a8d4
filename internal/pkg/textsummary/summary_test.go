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

package textsummary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		maxRunes int
		want     string
	}{
		{
			name:     "纯文本",
			content:  "  build   and ship\nservices ",
			maxRunes: 100,
			want:     "build and ship services",
		},
		{
			name:     "HTML",
			content:  "<p>Build <b>APIs</b></p><ul><li>Go</li><li>MySQL</li></ul>",
			maxRunes: 100,
			want:     "Build APIs Go MySQL",
		},
		{
			name:     "实体",
			content:  "<p>R&amp;D&nbsp;team</p>",
			maxRunes: 100,
			want:     "R&D team",
		},
		{
			name:     "跳过脚本",
			content:  "<p>hello</p><script>alert(1)</script><style>p{}</style>world",
			maxRunes: 100,
			want:     "hello world",
		},
		{
			name:     "截断",
			content:  "A user-friendly interface lets you browse",
			maxRunes: 15,
			want:     "A user-friendly...",
		},
		{
			name:     "截断时去掉末尾空白",
			content:  "hello world again",
			maxRunes: 6,
			want:     "hello...",
		},
		{
			name:     "中文按字符截断",
			content:  "负责后端服务的设计与开发",
			maxRunes: 4,
			want:     "负责后端...",
		},
		{
			name:     "不限制长度",
			content:  "hello world",
			maxRunes: 0,
			want:     "hello world",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Summarize(tc.content, tc.maxRunes))
		})
	}
}
