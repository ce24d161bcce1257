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

// Package github provides a client for the GitHub REST API surface this
// tool consumes: account profiles, paginated public-repository listings,
// and per-repository topic lists. It abstracts the resilient fetch loop
// behind a simple interface, with support for rate-limit detection,
// adaptive waiting, and bounded retries for transient failures.
//
// The package includes:
//   - A Client interface covering account lookup, enumeration, and topics
//   - A REST implementation built on resty
//   - Mock client for testing
//   - Handle normalization for the accepted account spellings
//
// Basic usage:
//
//	client := github.NewRESTClient(github.ClientOptions{
//	    Endpoint: "https://api.github.com",
//	    Token:    "your-github-token",
//	})
//	account, err := client.Account(ctx, "octocat")
//	if err != nil {
//	    // Handle error
//	}
//	repos, err := client.Repositories(ctx, account.Login, nil)
//	for _, repo := range repos {
//	    tags := client.Topics(ctx, account.Login, repo.Name)
//	    // Process repository
//	}
package github
