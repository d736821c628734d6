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

import "sync"

// Allocator is the node create/destroy capability consumed by the tree
// engine. The engine never recycles entries itself: every structural
// insertion requests a fresh entry and every structural removal hands the
// entry back. The default allocator leaves reclamation to the garbage
// collector; see PoolAllocator for a recycling variant.
type Allocator[K, V any] interface {
	NewEntry(key K, value V) *Entry[K, V]
	FreeEntry(e *Entry[K, V])
}

// heapAllocator allocates entries directly and lets the garbage collector
// reclaim freed ones.
type heapAllocator[K, V any] struct{}

func (heapAllocator[K, V]) NewEntry(key K, value V) *Entry[K, V] {
	return NewEntry(key, value)
}

func (heapAllocator[K, V]) FreeEntry(*Entry[K, V]) {}

// PoolAllocator keeps reclaimed entries on a free list and reuses them on
// the next insertion. The list threads through the entries' right
// pointers; payloads are zeroed on free so held keys and values do not
// outlive their map entry. One pool may back several maps; the free list
// is mutex-guarded so that much is safe even when the maps themselves are
// confined to different goroutines.
type PoolAllocator[K, V any] struct {
	m     sync.Mutex
	free  *Entry[K, V]
	total int
	idle  int
}

// NewPool creates an empty entry pool.
func NewPool[K, V any]() *PoolAllocator[K, V] {
	return &PoolAllocator[K, V]{}
}

// NewEntry reuses a reclaimed entry if one is available.
func (a *PoolAllocator[K, V]) NewEntry(key K, value V) *Entry[K, V] {
	a.m.Lock()
	if a.free == nil {
		if a.idle != 0 {
			panic("avlmap: entry pool corrupt")
		}
		a.total++
		a.m.Unlock()
		return NewEntry(key, value)
	}
	e := a.free
	a.free = e.right
	a.idle--
	a.m.Unlock()

	e.key = key
	e.value = value
	e.left = nil
	e.right = nil
	e.height = 1
	return e
}

// FreeEntry zeroes the entry and returns it to the pool.
func (a *PoolAllocator[K, V]) FreeEntry(e *Entry[K, V]) {
	var zeroK K
	var zeroV V
	e.key = zeroK
	e.value = zeroV
	e.left = nil
	e.height = 0

	a.m.Lock()
	e.right = a.free // free list link
	a.free = e
	a.idle++
	a.m.Unlock()
}

// Stats reports how many entries the pool has ever created and how many
// currently sit idle on the free list.
func (a *PoolAllocator[K, V]) Stats() (total, idle int) {
	a.m.Lock()
	total = a.total
	idle = a.idle
	a.m.Unlock()
	return total, idle
}
