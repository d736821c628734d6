// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avlmap

// Entry is a single node of the tree. It owns its two children; ownership
// is exclusive and never cyclic. The height of a leaf is 1 and the height
// of an absent child is 0.
type Entry[K, V any] struct {
	key    K
	value  V
	left   *Entry[K, V]
	right  *Entry[K, V]
	height int32
}

// NewEntry builds a detached entry holding the given pair. Allocator
// implementations use it to construct entries; the tree engine wires the
// entry in afterwards.
func NewEntry[K, V any](key K, value V) *Entry[K, V] {
	return &Entry[K, V]{key: key, value: value, height: 1}
}

// Key reads the key stored in the entry.
func (e *Entry[K, V]) Key() K {
	return e.key
}

// Value reads the value stored in the entry.
func (e *Entry[K, V]) Value() V {
	return e.value
}

// Height reports the cached height of the subtree rooted at the entry.
// An absent subtree (nil entry) has height 0.
func (e *Entry[K, V]) Height() int32 {
	if e == nil {
		return 0
	}
	return e.height
}

// internal: recompute the cached height from the children
func (e *Entry[K, V]) updateHeight() {
	e.height = 1 + max(e.left.Height(), e.right.Height())
}

// internal: height(left) - height(right)
func (e *Entry[K, V]) balanceFactor() int32 {
	return e.left.Height() - e.right.Height()
}
