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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cybrota/avlmap"
)

// buildFromLines fills a map from "key=value" lines. A line without '='
// stores the key with an empty value; blank lines and '#' comments are
// skipped.
func buildFromLines(r io.Reader) (*avlmap.Map[string, string], error) {
	m := avlmap.NewOrdered[string, string]()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, _ := strings.Cut(line, "=")
		m.Emplace(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %v", err)
	}
	return m, nil
}

func runDump(path string, check bool) error {
	var in io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %v", path, err)
		}
		defer f.Close()
		in = f
	}

	m, err := buildFromLines(in)
	if err != nil {
		return err
	}

	depth := m.Fprint(os.Stdout, true)
	fmt.Printf("\n%d entries, depth %d\n", m.Len(), depth)

	for it := m.Begin(); !it.Done(); it.Next() {
		fmt.Printf("  %s = %s\n", it.Key(), it.Value())
	}

	if check {
		if err := m.Check(); err != nil {
			return fmt.Errorf("invariant check failed: %v", err)
		}
		fmt.Printf("%sinvariants OK%s\n", Green, Reset)
	}
	return nil
}
