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

// FindComment 深度优先（先序）查找 id 对应的评论，找不到返回 nil
func FindComment(items []*Comment, id int64) *Comment {
	for _, c := range items {
		if c == nil {
			continue
		}
		if c.ID == id {
			return c
		}
		if found := FindComment(c.Replies, id); found != nil {
			return found
		}
	}
	return nil
}

// PatchReactions 在评论树里找到 id 对应的节点，用 state 覆盖它的 Reactions 和
// CurrentUserReactions。只改这一个节点：返回的切片就是 items 本身，
// 兄弟节点、祖先节点的指针和其它字段都不会变化。
// 第一个匹配的节点生效，找不到时 found 为 false，items 原样返回。
func PatchReactions(items []*Comment, id int64, state ReactionState) (tree []*Comment, found bool) {
	target := FindComment(items, id)
	if target == nil {
		return items, false
	}
	// 复制一份，避免缓存里的节点和调用方持有的 state 共享底层数据
	cp := state.clone()
	target.Reactions = cp.Reactions
	target.CurrentUserReactions = cp.CurrentUserReactions
	return items, true
}

// CountComments 统计评论树里的节点数量，包括所有层级的回复
func CountComments(items []*Comment) int {
	cnt := 0
	for _, c := range items {
		if c == nil {
			continue
		}
		cnt += 1 + CountComments(c.Replies)
	}
	return cnt
}
