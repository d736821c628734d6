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

// rotateLeft promotes e.right over e. The promoted entry's former left
// child becomes e's new right child. Heights are recomputed bottom-up,
// demoted entry first. Rotations relink entries, they never free them.
func rotateLeft[K, V any](e *Entry[K, V]) *Entry[K, V] {
	pivot := e.right
	e.right = pivot.left
	pivot.left = e

	e.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rotateRight is the mirror image of rotateLeft.
func rotateRight[K, V any](e *Entry[K, V]) *Entry[K, V] {
	pivot := e.left
	e.left = pivot.right
	pivot.right = e

	e.updateHeight()
	pivot.updateHeight()

	return pivot
}
