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
	"runtime"
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/charmbracelet/glamour"
	"github.com/patrickmn/go-cache"
)

const (
	// Rendered help pages are cheap to rebuild, keep them briefly
	helpCacheExpiration = 30 * time.Minute
	helpCacheCleanup    = 5 * time.Minute
)

// NewHelpCache creates a cache for rendered help markdown, keyed by the
// wrap width the page was rendered at.
func NewHelpCache() *cache.Cache {
	return cache.New(helpCacheExpiration, helpCacheCleanup)
}

const explorerHelpMarkdown = `
# Explorer commands

* **insert** <key> [value] — store a pair; an existing key is updated in place
* **erase** <key> — remove a key
* **find** <key> — look a key up
* **lower** <key> — first key not less than the given one
* **copy** <key> — copy an entry to the clipboard
* **clear** — empty the map
* **check** — verify the tree's structural invariants

Quote keys or values that contain spaces: insert "two words" v

# Keys

* **enter** — run the typed command
* **?** — toggle this help
* **esc / ctrl+c** — quit

All operations are O(log n); the pane on the right shows the balanced
tree after every edit, right subtrees drawn above their parents.
`

// renderExplorerHelp renders the explorer help at the given wrap width,
// serving repeated requests from the cache.
func renderExplorerHelp(c *cache.Cache, width int) string {
	key := fmt.Sprintf("explorer-help:%d", width)
	if page, ok := c.Get(key); ok {
		return page.(string)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return explorerHelpMarkdown
	}
	page, err := renderer.Render(explorerHelpMarkdown)
	if err != nil {
		return explorerHelpMarkdown
	}
	c.Set(key, page, helpCacheExpiration)
	return page
}

func getUsageMessage() string {
	message := fmt.Sprintf(`

 **avlmap %s**

An ordered key-to-value map on a self-balancing AVL tree, with an
interactive explorer for poking at the balancing behaviour.

Built with Go %s

# 1. Commands
* explore — interactive session: insert, erase, find, watch the tree rebalance
* bench — timed insert/find/iterate/erase phases over a YAML scenario
* dump — build a tree from key=value lines and print its shape
* settings — show or create ~/.avlmap.yaml

# 2. Library
The CLI is a thin companion around the library:

    import "github.com/cybrota/avlmap"

    m := avlmap.NewOrdered[string, int]()
    m.Emplace("answer", 42)

# Please be aware
* A map is not safe for concurrent use; guard it externally when shared
* Copy to clipboard on Linux requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
