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
	"encoding/json"
	"net/http"
	"strconv"
)

// Repositories pages through the public repository listing for handle in
// creation order until the API returns an empty page. Any listing failure
// mid-run is logged and treated as end-of-data: the repositories gathered
// so far are returned rather than discarded. Only context cancellation
// produces a non-nil error.
func (c *RESTClient) Repositories(ctx context.Context, handle string, observe PageFunc) ([]Repository, error) {
	var all []Repository
	path := "/users/" + handle + "/repos"

	for page := 1; ; page++ {
		query := map[string]string{
			"per_page":  strconv.Itoa(c.pageSize),
			"page":      strconv.Itoa(page),
			"type":      "public",
			"sort":      "created",
			"direction": "asc",
		}

		resp, err := c.do(ctx, path, query, nil)
		if err != nil {
			if ctx.Err() != nil {
				return all, ctx.Err()
			}
			c.reporter.Errorf("Failed to fetch repository page %d: %v", page, err)
			return all, nil
		}
		if resp.StatusCode() != http.StatusOK {
			c.reporter.Errorf("Failed to fetch repository page %d. Status: %d", page, resp.StatusCode())
			return all, nil
		}

		var repos []Repository
		if err := json.Unmarshal(resp.Body(), &repos); err != nil {
			c.reporter.Errorf("Failed to decode repository page %d: %v", page, err)
			return all, nil
		}
		if len(repos) == 0 {
			return all, nil
		}

		all = append(all, repos...)
		c.recorder.RecordPage(len(repos))
		c.reporter.Infof("Page %d: retrieved %d repositories", page, len(repos))
		if observe != nil {
			observe(page, repos)
		}

		if err := c.sleep(ctx, c.pageDelay); err != nil {
			return all, err
		}
	}
}
