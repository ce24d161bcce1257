// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
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

	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-scout/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sirseer-scout",
		Short: "Generate public repository reports for GitHub user accounts",
		Long: `SirSeer Scout enumerates every public repository owned by a GitHub
user account, enriches each with its topic tags, and renders the result
as CSV, JSON, HTML, and plain-text reports. The retrieval layer rides
out GitHub rate limits: it waits for depleted windows to reset, honors
Retry-After hints, and backs off on secondary throttling.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(newFetchCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps run errors to the process exit code. Every
// failure exits 1; the distinction lives in the error text.
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
