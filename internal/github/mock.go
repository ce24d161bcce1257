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

import (
	"context"
	"fmt"
	"time"

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
type MockClient struct {
	// AccountData is returned from Account when no error is configured.
	AccountData *Account

	// Pages are served by Repositories in order, stopping at the first
	// empty page.
	Pages [][]Repository

	// TopicsByRepo maps "owner/repo" to the topic names returned for it.
	// Missing entries yield an empty list, like a degraded fetch.
	TopicsByRepo map[string][]string

	// AccountErr, when set, is returned from Account.
	AccountErr error

	// Track calls for verification
	AccountCalls int
	ListCalls    int
	TopicCalls   int
	LastHandle   string
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		AccountData:  defaultTestAccount(),
		Pages:        [][]Repository{defaultTestRepos()},
		TopicsByRepo: map[string][]string{"octocat/Hello-World": {"demo"}},
	}
}

// Account implements the Client interface
func (m *MockClient) Account(ctx context.Context, handle string) (*Account, error) {
	m.AccountCalls++
	m.LastHandle = handle

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.AccountErr != nil {
		return nil, m.AccountErr
	}
	if m.AccountData == nil {
		return nil, fmt.Errorf("account %q: %w", handle, scouterrors.ErrAccountNotFound)
	}
	if m.AccountData.Type != accountTypeUser {
		return nil, fmt.Errorf("%w: account %q has type %s", scouterrors.ErrNotUserAccount, handle, m.AccountData.Type)
	}
	return m.AccountData, nil
}

// Repositories implements the Client interface
func (m *MockClient) Repositories(ctx context.Context, handle string, observe PageFunc) ([]Repository, error) {
	m.ListCalls++
	m.LastHandle = handle

	var all []Repository
	for i, page := range m.Pages {
		select {
		case <-ctx.Done():
			return all, ctx.Err()
		default:
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		if observe != nil {
			observe(i+1, page)
		}
	}
	return all, nil
}

// Topics implements the Client interface
func (m *MockClient) Topics(ctx context.Context, owner, repo string) []string {
	m.TopicCalls++
	if names, ok := m.TopicsByRepo[owner+"/"+repo]; ok && names != nil {
		return names
	}
	return []string{}
}

// defaultTestAccount returns a user account suitable for most tests.
func defaultTestAccount() *Account {
	return &Account{
		Login:       "octocat",
		Type:        "User",
		Name:        "The Octocat",
		PublicRepos: 2,
	}
}

// defaultTestRepos creates sample repository data for testing
func defaultTestRepos() []Repository {
	created := time.Date(2011, 1, 26, 19, 1, 12, 0, time.UTC)

	return []Repository{
		{
			Name:        "Hello-World",
			HTMLURL:     "https://github.com/octocat/Hello-World",
			Description: "My first repository on GitHub!",
			Language:    "C",
			CreatedAt:   created,
			Owner:       Owner{Login: "octocat"},
		},
		{
			Name:      "Spoon-Knife",
			HTMLURL:   "https://github.com/octocat/Spoon-Knife",
			Language:  "HTML",
			CreatedAt: created.Add(24 * time.Hour),
			Owner:     Owner{Login: "octocat"},
		},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithAccount sets the account returned by Account
func WithAccount(account *Account) MockClientOption {
	return func(m *MockClient) {
		m.AccountData = account
	}
}

// WithPages sets the listing pages served by Repositories
func WithPages(pages ...[]Repository) MockClientOption {
	return func(m *MockClient) {
		m.Pages = pages
	}
}

// WithTopics sets the topics returned for an "owner/repo" key
func WithTopics(repo string, names []string) MockClientOption {
	return func(m *MockClient) {
		if m.TopicsByRepo == nil {
			m.TopicsByRepo = make(map[string][]string)
		}
		m.TopicsByRepo[repo] = names
	}
}

// WithAccountError makes Account return a specific error
func WithAccountError(err error) MockClientOption {
	return func(m *MockClient) {
		m.AccountErr = err
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
