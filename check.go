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

import "fmt"

// Check walks the whole tree and verifies the structural invariants:
// cached heights, AVL balance at every entry, strictly increasing keys in
// order, and the entry count. It returns the first violation found. Meant
// for tests and debugging; it visits every entry.
func (m *Map[K, V]) Check() error {
	n, _, err := checkEntry(m.root)
	if err != nil {
		return err
	}
	if n != m.size {
		return fmt.Errorf("size is %d but %d entries are reachable", m.size, n)
	}

	var prev *Entry[K, V]
	for it := m.Begin(); !it.Done(); it.Next() {
		if prev != nil && m.compare(prev.key, it.curr.key) != -1 {
			return fmt.Errorf("keys out of order: %v before %v", prev.key, it.curr.key)
		}
		prev = it.curr
	}
	return nil
}

// internal: verify heights and balance, returning entry count and height
func checkEntry[K, V any](e *Entry[K, V]) (int, int32, error) {
	if e == nil {
		return 0, 0, nil
	}
	nl, hl, err := checkEntry(e.left)
	if err != nil {
		return 0, 0, err
	}
	nr, hr, err := checkEntry(e.right)
	if err != nil {
		return 0, 0, err
	}
	h := 1 + max(hl, hr)
	if e.height != h {
		return 0, 0, fmt.Errorf("entry %v caches height %d, actual %d", e.key, e.height, h)
	}
	if d := hl - hr; d < -1 || d > 1 {
		return 0, 0, fmt.Errorf("entry %v out of balance: %d", e.key, d)
	}
	return nl + nr + 1, h, nil
}
