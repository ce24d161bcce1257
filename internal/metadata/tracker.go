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

// Package metadata tracks run statistics: HTTP requests issued, listing
// pages fetched, repositories enumerated, and topic fetches that degraded
// to an empty tag list. The fetch layer reports events through the
// Tracker as they happen; at completion the accumulated numbers become a
// RunStats record for the console summary.
package metadata

import "time"

// Tracker collects statistics during a run. Create one at run start and
// wire it into the fetch client; all counting happens through its record
// methods. A Tracker is owned by the run's single control flow and is
// not safe for concurrent use.
type Tracker struct {
	startedAt     time.Time
	apiCalls      int
	pages         int
	repositories  int
	topicFailures int
}

// New creates a tracker and starts its clock.
func New() *Tracker {
	return &Tracker{startedAt: time.Now()}
}

// RecordRequest notes one HTTP request issued, retries included.
func (t *Tracker) RecordRequest() {
	t.apiCalls++
}

// RecordPage notes one non-empty listing page and its entry count.
func (t *Tracker) RecordPage(count int) {
	t.pages++
	t.repositories += count
}

// RecordTopicFailure notes one topics fetch that degraded to empty.
func (t *Tracker) RecordTopicFailure() {
	t.topicFailures++
}

// Generate produces the run's accounting record as of completedAt.
func (t *Tracker) Generate(scoutVersion, handle string, completedAt time.Time) RunStats {
	return RunStats{
		ScoutVersion:  scoutVersion,
		Handle:        handle,
		StartedAt:     t.startedAt,
		CompletedAt:   completedAt,
		Duration:      completedAt.Sub(t.startedAt).Round(time.Millisecond).String(),
		APICalls:      t.apiCalls,
		Pages:         t.pages,
		Repositories:  t.repositories,
		TopicFailures: t.topicFailures,
	}
}
