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
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/avlmap"
)

type phaseResult struct {
	name    string
	ops     int
	elapsed time.Duration
}

func (p phaseResult) opsPerSecond() float64 {
	if p.elapsed <= 0 {
		return 0
	}
	return float64(p.ops) / p.elapsed.Seconds()
}

// loadScenario reads the bench scenario from an explicit file, falling
// back to the regular configuration when no path is given.
func loadScenario(path string) (*BenchConfig, error) {
	if path == "" {
		config, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		return &config.Bench, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %v", path, err)
	}
	scenario := defaultConfig.Bench
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %v", path, err)
	}
	return &scenario, nil
}

func runBench(scenarioPath string) error {
	scenario, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}
	if scenario.Entries <= 0 || scenario.KeySpace <= 0 {
		return fmt.Errorf("scenario needs positive entries and key_space")
	}

	rnd := rand.New(rand.NewSource(scenario.Seed))
	value := strings.Repeat("x", scenario.ValueSize)

	keys := make([]int, scenario.Entries)
	for i := range keys {
		keys[i] = rnd.Intn(scenario.KeySpace)
	}

	m := avlmap.NewOrdered[int, string]()
	results := make([]phaseResult, 0, 4)

	// insert phase
	bar := progressbar.Default(int64(len(keys)), "insert")
	start := time.Now()
	for _, k := range keys {
		m.Emplace(k, value)
		bar.Add(1)
	}
	results = append(results, phaseResult{"insert", len(keys), time.Since(start)})

	// lookup phase
	bar = progressbar.Default(int64(scenario.Lookups), "find")
	start = time.Now()
	hits := 0
	for i := 0; i < scenario.Lookups; i++ {
		if !m.Find(rnd.Intn(scenario.KeySpace)).Done() {
			hits++
		}
		bar.Add(1)
	}
	results = append(results, phaseResult{"find", scenario.Lookups, time.Since(start)})

	// full in-order traversal
	start = time.Now()
	visited := 0
	for it := m.Begin(); !it.Done(); it.Next() {
		visited++
	}
	results = append(results, phaseResult{"iterate", visited, time.Since(start)})

	// erase phase
	bar = progressbar.Default(int64(len(keys)), "erase")
	start = time.Now()
	for _, k := range keys {
		m.Erase(k)
		bar.Add(1)
	}
	results = append(results, phaseResult{"erase", len(keys), time.Since(start)})

	if !m.Empty() {
		return fmt.Errorf("map not empty after erase phase: %d entries left", m.Len())
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Phase", "Ops", "Elapsed", "Ops/sec"})
	for _, r := range results {
		t.AppendRow(table.Row{
			r.name,
			humanize.Comma(int64(r.ops)),
			r.elapsed.Round(time.Millisecond),
			humanize.CommafWithDigits(r.opsPerSecond(), 0),
		})
	}
	t.AppendFooter(table.Row{"entries", humanize.Comma(int64(visited)), "hit rate",
		fmt.Sprintf("%.1f%%", 100*float64(hits)/float64(max(scenario.Lookups, 1)))})
	t.Render()

	return nil
}
