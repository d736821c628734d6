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
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	shellwords "github.com/mattn/go-shellwords"

	"github.com/cybrota/avlmap"
)

// execCommand applies one explorer command line to the map and returns a
// status message. Lines are tokenized with shell quoting rules, so keys
// and values may contain spaces when quoted.
func execCommand(m *avlmap.Map[string, string], line string) (string, error) {
	parts, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("cannot parse command: %v", err)
	}
	if len(parts) == 0 {
		return "", nil
	}

	verb := strings.ToLower(parts[0])
	args := parts[1:]

	switch verb {
	case "insert", "set":
		if len(args) == 0 {
			return "", fmt.Errorf("usage: insert <key> [value]")
		}
		value := ""
		if len(args) > 1 {
			value = args[1]
		}
		_, inserted := m.Emplace(args[0], value)
		if inserted {
			return fmt.Sprintf("inserted %q", args[0]), nil
		}
		return fmt.Sprintf("updated %q", args[0]), nil

	case "erase", "delete", "del":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: erase <key>")
		}
		if m.Erase(args[0]) == 0 {
			return fmt.Sprintf("%q not found", args[0]), nil
		}
		return fmt.Sprintf("erased %q", args[0]), nil

	case "find", "get":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: find <key>")
		}
		it := m.Find(args[0])
		if it.Done() {
			return fmt.Sprintf("%q not found", args[0]), nil
		}
		return fmt.Sprintf("%q = %q", it.Key(), it.Value()), nil

	case "lower":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: lower <key>")
		}
		it := m.LowerBound(args[0])
		if it.Done() {
			return fmt.Sprintf("no key at or above %q", args[0]), nil
		}
		return fmt.Sprintf("lower bound: %q = %q", it.Key(), it.Value()), nil

	case "copy":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: copy <key>")
		}
		it := m.Find(args[0])
		if it.Done() {
			return fmt.Sprintf("%q not found", args[0]), nil
		}
		if err := clipboard.WriteAll(fmt.Sprintf("%s=%s", it.Key(), it.Value())); err != nil {
			return "", fmt.Errorf("clipboard unavailable: %v", err)
		}
		return fmt.Sprintf("copied %q to clipboard", it.Key()), nil

	case "clear":
		n := m.Len()
		m.Clear()
		return fmt.Sprintf("cleared %d entries", n), nil

	case "check":
		if err := m.Check(); err != nil {
			return "", fmt.Errorf("invariant violated: %v", err)
		}
		return fmt.Sprintf("invariants OK (%d entries)", m.Len()), nil

	default:
		return "", fmt.Errorf("unknown command %q, try ? for help", verb)
	}
}
