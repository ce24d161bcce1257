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

// Package main implements the sirseer-scout command-line interface.
// This tool enumerates the public repositories of a GitHub user account,
// enriches each with its topic tags, and writes CSV, JSON, HTML, and
// plain-text reports.
//
// The CLI supports:
//   - Account identity as a handle, @handle, or full profile URL
//   - Optional token authentication via flag or environment variable
//   - Configurable output directory for the report files
//   - Rate-limit aware fetching that waits out depleted API windows
//   - Quiet and colorless console modes for scripting
//
// Usage:
//
//	sirseer-scout fetch <account> [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	sirseer-scout fetch octocat --output-dir reports
//
// Exit codes:
//   - 0: Success
//   - 1: Validation, fetch, or render failure
package main
