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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlmap"
)

func TestExecCommand(t *testing.T) {
	m := avlmap.NewOrdered[string, string]()

	status, err := execCommand(m, `insert answer 42`)
	require.NoError(t, err)
	assert.Equal(t, `inserted "answer"`, status)
	assert.Equal(t, 1, m.Len())

	status, err = execCommand(m, `insert answer 43`)
	require.NoError(t, err)
	assert.Equal(t, `updated "answer"`, status)
	assert.Equal(t, 1, m.Len())

	status, err = execCommand(m, `find answer`)
	require.NoError(t, err)
	assert.Equal(t, `"answer" = "43"`, status)

	status, err = execCommand(m, `erase answer`)
	require.NoError(t, err)
	assert.Equal(t, `erased "answer"`, status)
	assert.True(t, m.Empty())
}

func TestExecCommandQuotedKeys(t *testing.T) {
	m := avlmap.NewOrdered[string, string]()

	_, err := execCommand(m, `insert "two words" "a value"`)
	require.NoError(t, err)
	assert.Equal(t, "a value", m.Find("two words").Value())
}

func TestExecCommandLowerBound(t *testing.T) {
	m := avlmap.NewOrdered[string, string]()
	for _, k := range []string{"apple", "cherry", "plum"} {
		_, err := execCommand(m, "insert "+k)
		require.NoError(t, err)
	}

	status, err := execCommand(m, "lower banana")
	require.NoError(t, err)
	assert.Contains(t, status, `"cherry"`)

	status, err = execCommand(m, "lower zucchini")
	require.NoError(t, err)
	assert.Equal(t, `no key at or above "zucchini"`, status)
}

func TestExecCommandErrors(t *testing.T) {
	m := avlmap.NewOrdered[string, string]()

	_, err := execCommand(m, "insert")
	assert.Error(t, err)

	_, err = execCommand(m, "frobnicate x")
	assert.Error(t, err)

	// unbalanced quote is a parse error, not a panic
	_, err = execCommand(m, `insert "oops`)
	assert.Error(t, err)

	status, err := execCommand(m, "")
	require.NoError(t, err)
	assert.Empty(t, status)
}

func TestExecCommandCheck(t *testing.T) {
	m := avlmap.NewOrdered[string, string]()
	for _, k := range []string{"d", "b", "f", "a", "c", "e", "g"} {
		_, err := execCommand(m, "insert "+k)
		require.NoError(t, err)
	}
	status, err := execCommand(m, "check")
	require.NoError(t, err)
	assert.Equal(t, "invariants OK (7 entries)", status)
}
