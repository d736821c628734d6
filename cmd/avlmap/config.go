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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type BenchConfig struct {
	Entries   int   `yaml:"entries"`
	Lookups   int   `yaml:"lookups"`
	KeySpace  int   `yaml:"key_space"`
	ValueSize int   `yaml:"value_size"`
	Seed      int64 `yaml:"seed"`
}

type ExplorerConfig struct {
	ShowValues bool `yaml:"show_values"`
}

type Config struct {
	Bench    BenchConfig    `yaml:"bench"`
	Explorer ExplorerConfig `yaml:"explorer"`
}

var defaultConfig = Config{
	Bench: BenchConfig{
		Entries:   100000,
		Lookups:   200000,
		KeySpace:  1 << 20,
		ValueSize: 16,
		Seed:      1,
	},
	Explorer: ExplorerConfig{
		ShowValues: true,
	},
}

func LoadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &defaultConfig, nil
	}

	configPath := filepath.Join(homeDir, ".avlmap.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	config := defaultConfig
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return &defaultConfig, nil
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".avlmap.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Avlmap Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")
	fmt.Printf("📍 Config file: %s\n", configPath)
	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("⏱  %sBenchmark:%s\n", Green, Reset)
	fmt.Printf("  • entries:    %d\n", config.Bench.Entries)
	fmt.Printf("  • lookups:    %d\n", config.Bench.Lookups)
	fmt.Printf("  • key_space:  %d\n", config.Bench.KeySpace)
	fmt.Printf("  • value_size: %d\n", config.Bench.ValueSize)
	fmt.Printf("  • seed:       %d\n\n", config.Bench.Seed)

	fmt.Printf("🌳 %sExplorer:%s\n", Green, Reset)
	fmt.Printf("  • show_values: %t\n\n", config.Explorer.ShowValues)

	fmt.Printf("💡 Edit %s to change these defaults.\n", configPath)
}
