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

import "time"

// accountTypeUser is the account kind accepted by the validation gate.
// Organizations and other kinds are rejected.
const accountTypeUser = "User"

// Account is the decoded profile of the surveyed account as returned by
// the /users endpoint. Fetched once at the start of a run and discarded
// after the gate check.
type Account struct {
	Login       string `json:"login"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	PublicRepos int    `json:"public_repos"`
}

// Repository is one unmodified entry of the repository listing endpoint.
// Only the fields the reports consume are decoded. Transient: owned by the
// enumerator until reduced to a Summary.
type Repository struct {
	Name        string    `json:"name"`
	HTMLURL     string    `json:"html_url"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Fork        bool      `json:"fork"`
	CreatedAt   time.Time `json:"created_at"`
	Owner       Owner     `json:"owner"`
}

// Owner identifies the account a repository belongs to.
type Owner struct {
	Login string `json:"login"`
}

// Summary is the durable record each repository is reduced to. The JSON
// field names are part of the report contract and must not change.
// Description and TopLanguage are empty strings when the API had nothing;
// Tags is ordered and possibly empty, never null.
type Summary struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	TopLanguage string   `json:"top_language"`
	Tags        []string `json:"tags"`
}

// NewSummary reduces a listing entry plus its fetched topics to the
// durable form. A nil tag list becomes an empty one so renderers never
// see null.
func NewSummary(repo Repository, tags []string) Summary {
	if tags == nil {
		tags = []string{}
	}
	return Summary{
		Name:        repo.Name,
		URL:         repo.HTMLURL,
		Description: repo.Description,
		TopLanguage: repo.Language,
		Tags:        tags,
	}
}

// topicsPayload is the body of the repository topics endpoint.
type topicsPayload struct {
	Names []string `json:"names"`
}

// PageFunc observes one fetched listing page: its 1-based page number and
// the entries it carried, in listing order.
type PageFunc func(page int, repos []Repository)
