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
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectKeys[K, V any](m *Map[K, V]) []K {
	var keys []K
	for it := m.Begin(); !it.Done(); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

func buildOrdered(t *testing.T, keys ...int) *Map[int, string] {
	t.Helper()
	m := NewOrdered[int, string]()
	for _, k := range keys {
		m.Emplace(k, "")
		require.NoError(t, m.Check())
	}
	return m
}

func TestMapOperations(t *testing.T) {
	testCases := []struct {
		Name          string
		InitialKeys   []int
		KeysToInsert  []int
		KeysToErase   []int
		ExpectedOrder []int
	}{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []int{2, 1, 3},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []int{1},
			KeysToInsert:  []int{2, 3, 4, 5},
			ExpectedOrder: []int{1, 2, 3, 4, 5},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialKeys:   []int{5, 4, 3, 2, 1},
			KeysToErase:   []int{5, 4},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []int{40, 20},
			KeysToInsert:  []int{60, 10},
			KeysToErase:   []int{20},
			ExpectedOrder: []int{10, 40, 60},
		},
		{
			Name:          "Erase Absent Key",
			InitialKeys:   []int{1, 2, 3},
			KeysToErase:   []int{9},
			ExpectedOrder: []int{1, 2, 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			m := NewOrdered[int, string]()
			for _, k := range tc.InitialKeys {
				m.Emplace(k, "")
			}
			for _, k := range tc.KeysToInsert {
				m.Emplace(k, "")
				require.NoError(t, m.Check())
			}
			for _, k := range tc.KeysToErase {
				m.Erase(k)
				require.NoError(t, m.Check())
			}
			assert.Equal(t, tc.ExpectedOrder, collectKeys(m))
			assert.Equal(t, len(tc.ExpectedOrder), m.Len())
		})
	}
}

// Inserting 1..7 in ascending order must stay balanced at every step and
// settle into the perfect tree: 7 entries, height 3, key 4 at the root.
func TestAscendingInsertStaysBalanced(t *testing.T) {
	m := buildOrdered(t, 1, 2, 3, 4, 5, 6, 7)

	assert.Equal(t, 7, m.Len())
	assert.Equal(t, int32(3), m.root.height)
	assert.Equal(t, 4, m.root.key)
}

// The third insertion into a right-heavy 10,20,30 sequence triggers a
// single left rotation promoting 20 over 10 and 30.
func TestSingleLeftRotation(t *testing.T) {
	m := buildOrdered(t, 10, 20, 30)

	require.NotNil(t, m.root)
	assert.Equal(t, 20, m.root.key)
	assert.Equal(t, 10, m.root.left.key)
	assert.Equal(t, 30, m.root.right.key)
	assert.Equal(t, int32(2), m.root.height)
}

func TestEraseRootOfThreeNodes(t *testing.T) {
	m := buildOrdered(t, 10, 20, 30)
	require.Equal(t, 20, m.root.key)

	assert.Equal(t, 1, m.Erase(20))
	require.NoError(t, m.Check())
	assert.Equal(t, []int{10, 30}, collectKeys(m))
}

func TestLowerBound(t *testing.T) {
	m := buildOrdered(t, 10, 20, 30)

	it := m.LowerBound(15)
	require.False(t, it.Done())
	assert.Equal(t, 20, it.Key())

	it = m.LowerBound(10)
	require.False(t, it.Done())
	assert.Equal(t, 10, it.Key())

	assert.True(t, m.LowerBound(35).Done())
	assert.True(t, NewOrdered[int, string]().LowerBound(0).Done())
}

// Erasing an absent key must leave the tree untouched: same size, same
// shape, no height churn.
func TestEraseMissLeavesTreeUntouched(t *testing.T) {
	m := buildOrdered(t, 8, 3, 11, 1, 5, 9, 13)

	var before strings.Builder
	m.Fprint(&before, true)

	assert.Equal(t, 0, m.Erase(7))

	var after strings.Builder
	m.Fprint(&after, true)
	assert.Equal(t, before.String(), after.String())
	assert.Equal(t, 7, m.Len())
	require.NoError(t, m.Check())
}

func TestEmplaceUpdatesInPlace(t *testing.T) {
	m := NewOrdered[string, int]()
	it, inserted := m.Emplace("pi", 3)
	require.True(t, inserted)
	first := it.Entry()

	var before strings.Builder
	m.Emplace("e", 2)
	m.Emplace("phi", 1)
	m.Fprint(&before, false)

	it, inserted = m.Emplace("pi", 314)
	assert.False(t, inserted)
	assert.Same(t, first, it.Entry())
	assert.Equal(t, 314, it.Value())
	assert.Equal(t, 3, m.Len())

	var after strings.Builder
	m.Fprint(&after, false)
	assert.Equal(t, before.String(), after.String())
}

func TestInsertPair(t *testing.T) {
	m := NewOrdered[string, int]()
	it, inserted := m.Insert(Pair[string, int]{Key: "a", Value: 1})
	require.True(t, inserted)
	assert.Equal(t, 1, it.Value())

	_, inserted = m.Insert(Pair[string, int]{Key: "a", Value: 2})
	assert.False(t, inserted)
	assert.Equal(t, 2, m.Find("a").Value())
}

func TestAtInsertsZeroValueOnMiss(t *testing.T) {
	m := NewOrdered[string, int]()
	p := m.At("hits")
	require.NotNil(t, p)
	assert.Equal(t, 0, *p)
	assert.Equal(t, 1, m.Len())

	*p++
	*p++
	assert.Equal(t, 2, m.Find("hits").Value())

	// an existing key hands back the live value, no second entry
	assert.Same(t, p, m.At("hits"))
	assert.Equal(t, 1, m.Len())
}

func TestFindMiss(t *testing.T) {
	m := buildOrdered(t, 2, 4, 6)
	assert.True(t, m.Find(3).Done())
	assert.False(t, m.Contains(3))
	assert.True(t, m.Contains(4))
}

func TestRoundTrip(t *testing.T) {
	const n = 500
	rnd := rand.New(rand.NewSource(42))

	m := NewOrdered[int, int]()
	keys := rnd.Perm(n)
	for _, k := range keys {
		m.Emplace(k, k*k)
	}
	require.Equal(t, n, m.Len())

	rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for _, k := range keys {
		require.Equal(t, 1, m.Erase(k))
	}
	assert.True(t, m.Empty())
	assert.Zero(t, m.Len())
	require.NoError(t, m.Check())
}

func TestCloneIsIndependent(t *testing.T) {
	a := NewOrdered[int, string]()
	for i := 0; i < 50; i++ {
		a.Emplace(i, "a")
	}

	b := a.Clone()
	require.Equal(t, a.Len(), b.Len())

	b.Erase(7)
	b.Emplace(3, "b")
	b.Emplace(100, "b")

	assert.True(t, a.Contains(7))
	assert.Equal(t, "a", a.Find(3).Value())
	assert.False(t, a.Contains(100))
	assert.Equal(t, 50, a.Len())
	require.NoError(t, a.Check())
	require.NoError(t, b.Check())
}

func TestTakeMovesContents(t *testing.T) {
	src := buildOrdered(t, 1, 2, 3)
	dst := buildOrdered(t, 9)

	dst.Take(src)
	assert.True(t, src.Empty())
	assert.Zero(t, src.Len())
	assert.Equal(t, []int{1, 2, 3}, collectKeys(dst))
	require.NoError(t, dst.Check())

	// the source stays usable after the move
	src.Emplace(5, "")
	assert.Equal(t, []int{5}, collectKeys(src))

	// self move is a no-op
	dst.Take(dst)
	assert.Equal(t, []int{1, 2, 3}, collectKeys(dst))
}

func TestClear(t *testing.T) {
	m := buildOrdered(t, 4, 2, 6, 1, 3, 5, 7)
	m.Clear()
	assert.True(t, m.Empty())
	assert.Zero(t, m.Len())
	require.NoError(t, m.Check())

	m.Emplace(1, "again")
	assert.Equal(t, 1, m.Len())
}

func TestCustomOrdering(t *testing.T) {
	m := New[int, string](func(a, b int) bool { return a > b })
	for _, k := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		m.Emplace(k, "")
		require.NoError(t, m.Check())
	}
	assert.Equal(t, []int{9, 6, 5, 4, 3, 2, 1}, collectKeys(m))
}

// Mixed random operations against a reference built-in map, verifying the
// structural invariants after every mutation.
func TestRandomSoak(t *testing.T) {
	const rounds = 3000
	rnd := rand.New(rand.NewSource(1337))

	m := NewOrdered[int, int]()
	ref := make(map[int]int)

	for i := 0; i < rounds; i++ {
		k := rnd.Intn(400)
		switch rnd.Intn(3) {
		case 0, 1:
			v := rnd.Int()
			_, inserted := m.Emplace(k, v)
			_, existed := ref[k]
			require.Equal(t, !existed, inserted, "round %d key %d", i, k)
			ref[k] = v
		case 2:
			removed := m.Erase(k)
			if _, existed := ref[k]; existed {
				require.Equal(t, 1, removed, "round %d key %d", i, k)
				delete(ref, k)
			} else {
				require.Zero(t, removed, "round %d key %d", i, k)
			}
		}
		require.NoError(t, m.Check(), "round %d", i)
		require.Equal(t, len(ref), m.Len(), "round %d", i)
	}

	for it := m.Begin(); !it.Done(); it.Next() {
		require.Equal(t, ref[it.Key()], it.Value())
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	m := buildOrdered(t, 1, 2, 3)
	require.NoError(t, m.Check())

	m.root.height = 9
	assert.Error(t, m.Check())
	m.root.updateHeight()
	require.NoError(t, m.Check())

	m.size = 5
	assert.Error(t, m.Check())
}
