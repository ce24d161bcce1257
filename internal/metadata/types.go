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

package metadata

import "time"

// RunStats is the complete accounting record for one run. It feeds the
// console summary printed at completion; nothing here is persisted, so
// the report outputs stay byte-stable across identical runs.
type RunStats struct {
	ScoutVersion  string    // version of sirseer-scout that produced the run
	Handle        string    // validated account handle
	StartedAt     time.Time // when tracking began
	CompletedAt   time.Time // when the run finished
	Duration      string    // human-readable elapsed time
	APICalls      int       // HTTP requests issued, retries included
	Pages         int       // non-empty listing pages fetched
	Repositories  int       // repositories enumerated
	TopicFailures int       // topic fetches that degraded to empty
}
