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

// Find locates the entry stored under key, returning the end iterator on
// a miss. A miss is a normal return, not an error.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	e := m.root
	for e != nil {
		switch m.compare(key, e.key) {
		case -1:
			e = e.left
		case +1:
			e = e.right
		default:
			return Iterator[K, V]{m: m, curr: e}
		}
	}
	return m.End()
}

// At returns a pointer to the value stored under key, inserting a zero
// value first when the key is absent. The pointer stays valid until the
// entry is erased or the map cleared; rotations relink entries without
// moving them, so structural edits elsewhere do not disturb it.
func (m *Map[K, V]) At(key K) *V {
	if it := m.Find(key); !it.Done() {
		return &it.curr.value
	}
	var zero V
	it, _ := m.Emplace(key, zero)
	return &it.curr.value
}

// Contains reports whether an entry is stored under key.
func (m *Map[K, V]) Contains(key K) bool {
	return !m.Find(key).Done()
}

// LowerBound returns an iterator to the first entry whose key is not less
// than the given key, or the end iterator when every key is less. The
// search is a descent from the root tracking the best candidate, O(log n).
func (m *Map[K, V]) LowerBound(key K) Iterator[K, V] {
	var candidate *Entry[K, V]
	e := m.root
	for e != nil {
		if m.less(e.key, key) {
			e = e.right
		} else {
			candidate = e
			e = e.left
		}
	}
	return Iterator[K, V]{m: m, curr: candidate}
}
