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

package github

import "context"

// Client defines the interface for interacting with GitHub's API.
// This interface allows for easy mocking in tests.
type Client interface {
	// Account retrieves the profile for the given handle. Returns
	// errors.ErrAccountNotFound for unknown handles and
	// errors.ErrNotUserAccount when the handle belongs to an
	// organization or other non-user account.
	Account(ctx context.Context, handle string) (*Account, error)

	// Repositories enumerates every public repository owned by handle,
	// page by page, preserving listing order. observe, when non-nil, is
	// invoked once per non-empty page as it arrives. A listing failure
	// mid-run ends the enumeration; repositories collected up to that
	// point are returned. The error is non-nil only when the context is
	// canceled.
	Repositories(ctx context.Context, handle string, observe PageFunc) ([]Repository, error)

	// Topics fetches the topic names of one repository. Any failure
	// degrades to an empty list; enumeration is never halted by a
	// missing topics payload.
	Topics(ctx context.Context, owner, repo string) []string
}
