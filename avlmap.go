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

import "cmp"

// LessFunc is the strict-weak-order predicate over keys. See the package
// documentation for the contract it must satisfy.
type LessFunc[K any] func(a, b K) bool

// Pair is a key-value pair, used by the Insert convenience wrapper.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered key-to-value container. The zero value is not usable;
// construct with New, NewOrdered or NewWithAllocator.
type Map[K, V any] struct {
	root  *Entry[K, V]
	size  int
	less  LessFunc[K]
	alloc Allocator[K, V]
}

// New creates an empty map ordered by the given predicate.
func New[K, V any](less LessFunc[K]) *Map[K, V] {
	return NewWithAllocator[K, V](less, heapAllocator[K, V]{})
}

// NewOrdered creates an empty map over a naturally ordered key type.
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	return New[K, V](func(a, b K) bool { return a < b })
}

// NewWithAllocator creates an empty map that obtains and releases its
// entries through the given allocator.
func NewWithAllocator[K, V any](less LessFunc[K], alloc Allocator[K, V]) *Map[K, V] {
	return &Map[K, V]{less: less, alloc: alloc}
}

// compare derives a three-way comparison from the less predicate:
// -1 if a < b, +1 if a > b, 0 when neither orders before the other.
// Costs two predicate calls; fine for cheap key comparisons.
func (m *Map[K, V]) compare(a, b K) int {
	if m.less(a, b) {
		return -1
	}
	if m.less(b, a) {
		return +1
	}
	return 0
}

// Len reports the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Empty is true when the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.root == nil
}

// Clear removes every entry, returning each to the allocator. It erases
// the first entry repeatedly rather than dropping the root, so a pooling
// allocator gets every entry back.
func (m *Map[K, V]) Clear() {
	it := m.Begin()
	for !m.Empty() {
		it = m.EraseAt(it)
	}
}

// Clone produces a deep copy by re-inserting the in-order sequence into a
// fresh map sharing the ordering and the allocator. The copy is fully
// independent of the original.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := NewWithAllocator[K, V](m.less, m.alloc)
	for it := m.Begin(); !it.Done(); it.Next() {
		out.Emplace(it.Key(), it.Value())
	}
	return out
}

// Take moves the contents of src into m in O(1), discarding whatever m
// held. src is left empty but usable; it keeps taking src's ordering and
// allocator so the adopted entries stay consistent.
func (m *Map[K, V]) Take(src *Map[K, V]) {
	if m == src {
		return
	}
	m.Clear()
	m.root = src.root
	m.size = src.size
	m.less = src.less
	m.alloc = src.alloc
	src.root = nil
	src.size = 0
}
