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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromLines(t *testing.T) {
	input := strings.Join([]string{
		"# sample data",
		"banana = yellow",
		"apple=red",
		"",
		"cherry",
		"apple = green",
	}, "\n")

	m, err := buildFromLines(strings.NewReader(input))
	require.NoError(t, err)
	require.NoError(t, m.Check())

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, "green", m.Find("apple").Value())
	assert.Equal(t, "yellow", m.Find("banana").Value())
	assert.Equal(t, "", m.Find("cherry").Value())

	var keys []string
	for it := m.Begin(); !it.Done(); it.Next() {
		keys = append(keys, it.Key())
	}
	assert.Equal(t, []string{"apple", "banana", "cherry"}, keys)
}
