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

package report

import (
	"encoding/json"
	"io"

	"github.com/sirseerhq/sirseer-scout/internal/github"
)

// JSONRenderer writes the summaries as a pretty-printed array. HTML
// escaping is disabled so URLs and non-ASCII text appear literally.
type JSONRenderer struct{}

// Extension implements Renderer.
func (JSONRenderer) Extension() string { return "json" }

// Render implements Renderer.
func (JSONRenderer) Render(w io.Writer, rep *Report) error {
	repos := rep.Repositories
	if repos == nil {
		repos = []github.Summary{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(repos)
}
