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
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// utf8BOM makes spreadsheet tools detect the file as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"name", "url", "description", "top_language", "tags"}

// CSVRenderer writes one row per repository with the tag list flattened
// into a single comma-separated cell.
type CSVRenderer struct{}

// Extension implements Renderer.
func (CSVRenderer) Extension() string { return "csv" }

// Render implements Renderer.
func (CSVRenderer) Render(w io.Writer, rep *Report) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, repo := range rep.Repositories {
		record := []string{
			repo.Name,
			repo.URL,
			repo.Description,
			repo.TopLanguage,
			strings.Join(repo.Tags, ", "),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row for %s: %w", repo.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
