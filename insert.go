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

// Emplace stores value under key. If the key is absent a new entry is
// created and the tree rebalanced; if it is present the value is
// overwritten in place with no structural change. The returned iterator
// is positioned on the affected entry and the boolean reports whether an
// insertion happened.
func (m *Map[K, V]) Emplace(key K, value V) (Iterator[K, V], bool) {
	root, target, added := m.insertRecursive(m.root, key, value)
	m.root = root
	if added {
		m.size++
	}
	return Iterator[K, V]{m: m, curr: target}, added
}

// Insert is a convenience wrapper over Emplace for callers holding a pair.
func (m *Map[K, V]) Insert(p Pair[K, V]) (Iterator[K, V], bool) {
	return m.Emplace(p.Key, p.Value)
}

// insertRecursive descends to the key's position and returns the possibly
// rotated subtree root, the affected entry and whether an entry was
// added. Each level of the unwind after a structural insertion recomputes
// its height and rebalances using the inserted key to pick the rotation.
func (m *Map[K, V]) insertRecursive(e *Entry[K, V], key K, value V) (*Entry[K, V], *Entry[K, V], bool) {
	if e == nil {
		n := m.alloc.NewEntry(key, value)
		return n, n, true
	}
	switch m.compare(key, e.key) {
	case -1:
		child, target, added := m.insertRecursive(e.left, key, value)
		e.left = child
		if !added {
			return e, target, false
		}
		return m.rebalanceAfterInsertion(e, key), target, true
	case +1:
		child, target, added := m.insertRecursive(e.right, key, value)
		e.right = child
		if !added {
			return e, target, false
		}
		return m.rebalanceAfterInsertion(e, key), target, true
	default:
		e.value = value
		return e, e, false
	}
}

// rebalanceAfterInsertion restores the AVL balance of e after an
// insertion below it. The inserted key disambiguates which grandchild
// grew, selecting between the single and the double rotation.
func (m *Map[K, V]) rebalanceAfterInsertion(e *Entry[K, V], key K) *Entry[K, V] {
	e.updateHeight()
	balance := e.balanceFactor()
	if balance > 1 && m.compare(key, e.left.key) == -1 {
		return rotateRight(e)
	}
	if balance < -1 && m.compare(key, e.right.key) == +1 {
		return rotateLeft(e)
	}
	if balance > 1 && m.compare(key, e.left.key) == +1 {
		// left-right case
		e.left = rotateLeft(e.left)
		return rotateRight(e)
	}
	if balance < -1 && m.compare(key, e.right.key) == -1 {
		// right-left case
		e.right = rotateRight(e.right)
		return rotateLeft(e)
	}
	return e
}
