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

import (
	"fmt"
	"io"
)

// branch position of an entry relative to its parent, for the dump layout
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint writes an ASCII rendering of the tree shape to w, right subtrees
// above their parents, and returns the maximum depth. With values=false
// only keys and heights are shown.
func (m *Map[K, V]) Fprint(w io.Writer, values bool) int {
	return fprintEntry(w, m.root, "", rootBranch, values)
}

func fprintEntry[K, V any](w io.Writer, e *Entry[K, V], prefix string, br branch, values bool) int {
	if e == nil {
		return 0
	}
	rd := 0
	ld := 0
	if e.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = fprintEntry(w, e.right, prefix+t, rightBranch, values)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if values {
		fmt.Fprintf(w, "%v = %v h%d\n", e.key, e.value, e.height)
	} else {
		fmt.Fprintf(w, "%v h%d\n", e.key, e.height)
	}
	if e.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = fprintEntry(w, e.left, prefix+t, leftBranch, values)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
