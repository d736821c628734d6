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

// Iterator is a forward-only cursor over the map's in-order sequence. It
// does not own the entry it references; erasing that entry invalidates
// the iterator. A nil entry is the end sentinel.
type Iterator[K, V any] struct {
	m    *Map[K, V]
	curr *Entry[K, V]
}

// Begin returns an iterator positioned on the smallest key, or the end
// iterator when the map is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{m: m, curr: minEntry(m.root)}
}

// End returns the end sentinel iterator.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: m}
}

// Done is true once the iterator has passed the last entry.
func (it Iterator[K, V]) Done() bool {
	return it.curr == nil
}

// Next advances to the in-order successor. Advancing the end iterator is
// a no-op.
func (it *Iterator[K, V]) Next() {
	if it.curr != nil {
		it.curr = it.m.successor(it.curr)
	}
}

// Key reads the key at the iterator's position.
func (it Iterator[K, V]) Key() K {
	return it.curr.key
}

// Value reads the value at the iterator's position.
func (it Iterator[K, V]) Value() V {
	return it.curr.value
}

// SetValue overwrites the value at the iterator's position.
func (it Iterator[K, V]) SetValue(v V) {
	it.curr.value = v
}

// Entry exposes the underlying entry, nil at the end position.
func (it Iterator[K, V]) Entry() *Entry[K, V] {
	return it.curr
}

// internal: leftmost entry of a subtree, nil for an empty one
func minEntry[K, V any](e *Entry[K, V]) *Entry[K, V] {
	if e != nil {
		for e.left != nil {
			e = e.left
		}
	}
	return e
}

// successor finds the entry following e in key order. With a right
// subtree that is its leftmost entry. Otherwise the tree stores no parent
// pointers, so the successor is recovered by re-descending from the root
// and remembering the last ancestor the descent turned left at.
func (m *Map[K, V]) successor(e *Entry[K, V]) *Entry[K, V] {
	if e.right != nil {
		return minEntry(e.right)
	}
	var succ *Entry[K, V]
	iter := m.root
	for iter != nil {
		switch m.compare(iter.key, e.key) {
		case +1:
			succ = iter
			iter = iter.left
		case -1:
			iter = iter.right
		default:
			return succ
		}
	}
	return succ
}
