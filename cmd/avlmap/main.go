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
	"log"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

const (
	Green = "\033[32m"
	Reset = "\033[0m"
)

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ███╗   ███╗ █████╗ ██████╗
██╔══██╗██║   ██║██║     ████╗ ████║██╔══██╗██╔══██╗
███████║╚██╗ ██╔╝██║     ██╔████╔██║███████║██████╔╝
██╔══██║ ╚████╔╝ ██║     ██║╚██╔╝██║██╔══██║██╔═══╝
██║  ██║  ╚██╔╝  ███████╗██║ ╚═╝ ██║██║  ██║██║
╚═╝  ╚═╝   ╚═╝   ╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝
Ordered map on a self-balancing AVL tree, with an interactive explorer [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Launches the interactive tree explorer UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens an interactive session for inserting, erasing and inspecting entries`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, err := LoadConfig()
			if err != nil {
				log.Printf("Failed to load configuration: %v. Using default settings.", err)
				config = &defaultConfig
			}
			if err := runExplorer(config); err != nil {
				log.Fatalf("Error running explorer: %v", err)
			}
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Runs a timed insert/find/iterate/erase scenario",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench runs the configured benchmark scenario and prints a result table`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			scenarioPath := cmd.Flag("scenario").Value.String()
			if err := runBench(scenarioPath); err != nil {
				log.Fatalf("Error running benchmark: %v", err)
			}
		},
	}
	cmdBench.Flags().String("scenario", "", "path to a YAML scenario file (defaults to ~/.avlmap.yaml)")

	var cmdDump = &cobra.Command{
		Use:   "dump [file]",
		Short: "Builds a map from key=value lines and prints the tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Dump reads key=value lines from a file or stdin and renders the balanced tree`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			check, _ := cmd.Flags().GetBool("check")
			if err := runDump(path, check); err != nil {
				log.Fatalf("Error dumping tree: %v", err)
			}
		},
	}
	cmdDump.Flags().Bool("check", false, "verify the structural invariants after building")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the avlmap usage guide",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getUsageMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show or create the avlmap configuration",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the avlmap version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlmap",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the explorer when no subcommand is provided
			config, err := LoadConfig()
			if err != nil {
				config = &defaultConfig
			}
			if err := runExplorer(config); err != nil {
				log.Fatalf("Error running explorer: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdExplore, cmdBench, cmdDump, cmdUsage, cmdSettings, cmdVersion)
	rootCmd.Execute()
}
