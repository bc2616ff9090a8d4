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

// Package snowflake 职位 ID 生成器，ID 对外不透明，只保证唯一且大致递增
package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var ErrExceedNode = errors.New("node超出限制")

type Generator struct {
	node *snowflake.Node
}

func NewGenerator(nodeId int64) (*Generator, error) {
	// 默认 10 bit 的节点号
	maxNode := int64(1)<<snowflake.NodeBits - 1
	if nodeId < 0 || nodeId > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeId)
	}
	n, err := snowflake.NewNode(nodeId)
	if err != nil {
		return nil, err
	}
	return &Generator{node: n}, nil
}

func (g *Generator) Next() int64 {
	return g.node.Generate().Int64()
}

// NodeOf 解析 ID 是哪个节点生成的，排查问题用
func NodeOf(id int64) int64 {
	return snowflake.ID(id).Node()
}
