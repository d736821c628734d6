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

// Package avlmap implements an ordered key-to-value map backed by a
// height-balanced binary search tree (AVL discipline). Lookup, insertion
// and deletion are O(log n) and iteration visits entries in key order.
//
// The ordering over keys is supplied as a strict-weak-order predicate
// bound once at construction; the map derives a three-way comparison from
// it. The predicate must be irreflexive, asymmetric and transitive, and
// its induced incomparability must be transitive too. A predicate that
// breaks this contract silently corrupts the tree.
//
// Entries carry no parent pointers, so an iterator finds its successor by
// re-descending from the root: advancing costs O(log n) and a full
// traversal O(n log n). The trade keeps entries small.
//
// Note: a map is not safe for concurrent use. Either confine it to a
// single goroutine or guard every call with a mutex. Iterators are
// non-owning views; erasing an entry invalidates iterators positioned on
// it, while iterators into untouched subtrees stay valid.
package avlmap
