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
)

// topicsAccept is the capability header the topics endpoint requires.
const topicsAccept = "application/vnd.github.mercy-preview+json"

// Topics fetches the topic names of one repository. A missing topics list
// is never a pipeline error: any failure degrades to an empty slice after
// a warning, and the degradation is recorded for the run summary.
func (c *RESTClient) Topics(ctx context.Context, owner, repo string) []string {
	headers := map[string]string{"Accept": topicsAccept}

	resp, err := c.do(ctx, "/repos/"+owner+"/"+repo+"/topics", nil, headers)
	if err != nil || resp.StatusCode() != http.StatusOK {
		c.recorder.RecordTopicFailure()
		c.reporter.Warnf("Topics unavailable for %s/%s", owner, repo)
		return []string{}
	}

	var payload topicsPayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		c.recorder.RecordTopicFailure()
		c.reporter.Warnf("Topics unreadable for %s/%s: %v", owner, repo, err)
		return []string{}
	}
	if payload.Names == nil {
		return []string{}
	}
	return payload.Names
}
