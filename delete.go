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

// Erase removes the entry stored under key and reports how many entries
// were removed (0 or 1). Erasing an absent key leaves the tree untouched.
func (m *Map[K, V]) Erase(key K) int {
	root, _, removed := m.removeRecursive(m.root, key)
	if !removed {
		return 0
	}
	m.root = root
	m.size--
	return 1
}

// EraseAt removes the entry the iterator is positioned on and returns an
// iterator to its in-order successor, so erase-and-continue loops work.
// The input iterator is invalid afterwards. Erasing at the end iterator
// is a no-op returning the end iterator.
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) Iterator[K, V] {
	if it.curr == nil {
		return m.End()
	}
	root, next, removed := m.removeRecursive(m.root, it.curr.key)
	if removed {
		m.root = root
		m.size--
	}
	return Iterator[K, V]{m: m, curr: next}
}

// removeRecursive locates key below e and removes it structurally,
// returning the possibly rotated subtree root, the entry now holding the
// in-order successor of the removed key, and whether a removal happened.
//
// An entry with at most one child is detached and freed; its child takes
// its slot. An entry with two children is not relocated: its payload is
// swapped with the leftmost entry of its right subtree and that entry's
// key (now the one being erased) is deleted from the right subtree, which
// collapses to one of the simpler cases. Every level of the unwind after
// a removal recomputes its height and rebalances.
func (m *Map[K, V]) removeRecursive(e *Entry[K, V], key K) (*Entry[K, V], *Entry[K, V], bool) {
	if e == nil {
		return nil, nil, false
	}
	switch m.compare(key, e.key) {
	case -1:
		child, next, removed := m.removeRecursive(e.left, key)
		e.left = child
		if !removed {
			return e, next, false
		}
		return m.rebalanceAfterDeletion(e), next, true
	case +1:
		child, next, removed := m.removeRecursive(e.right, key)
		e.right = child
		if !removed {
			return e, next, false
		}
		return m.rebalanceAfterDeletion(e), next, true
	default:
		next := m.successor(e)
		if e.left == nil {
			r := e.right
			m.alloc.FreeEntry(e)
			return r, next, true
		}
		if e.right == nil {
			l := e.left
			m.alloc.FreeEntry(e)
			return l, next, true
		}
		// two children: next is the leftmost entry of e.right; after the
		// payload swap it carries the key being erased and e carries the
		// successor payload, so e is the entry the caller continues at
		e.key, next.key = next.key, e.key
		e.value, next.value = next.value, e.value
		child, _, _ := m.removeRecursive(e.right, key)
		e.right = child
		return m.rebalanceAfterDeletion(e), e, true
	}
}

// rebalanceAfterDeletion restores the AVL balance of e after a removal
// below it. No single key identifies what shrank, so the grandchild
// balance picks between the single and the double rotation.
func (m *Map[K, V]) rebalanceAfterDeletion(e *Entry[K, V]) *Entry[K, V] {
	e.updateHeight()
	balance := e.balanceFactor()
	if balance > 1 {
		if e.left.balanceFactor() < 0 {
			e.left = rotateLeft(e.left)
		}
		return rotateRight(e)
	}
	if balance < -1 {
		if e.right.balanceFactor() > 0 {
			e.right = rotateRight(e.right)
		}
		return rotateLeft(e)
	}
	return e
}
