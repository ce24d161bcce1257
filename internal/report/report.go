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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirseerhq/sirseer-scout/internal/github"
)

// Report is a complete repository listing ready for rendering.
type Report struct {
	// Handle is the validated account handle the report covers.
	Handle string

	// Generated is when the report was produced. Only formats that carry
	// a timestamp use it; the others stay byte-stable across runs.
	Generated time.Time

	// Repositories holds one summary per public repository, in listing
	// order.
	Repositories []github.Summary
}

// Renderer defines the interface for writing a complete report in one
// format. Implementations must be deterministic for a given Report so
// that repeated runs stay diffable.
type Renderer interface {
	// Extension returns the report file extension, without the dot.
	Extension() string

	// Render writes the whole report to w.
	Render(w io.Writer, rep *Report) error
}

// Filename returns the report file name for a handle in the given
// format, e.g. "octocat_repos.csv".
func Filename(handle, ext string) string {
	return fmt.Sprintf("%s_repos.%s", handle, ext)
}

// WriteFile renders rep into dir using r, truncating any existing file.
// It returns the path of the written file.
func WriteFile(dir string, rep *Report, r Renderer) (string, error) {
	path := filepath.Join(dir, Filename(rep.Handle, r.Extension()))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	if err := r.Render(file, rep); err != nil {
		file.Close()
		return "", fmt.Errorf("render %s report: %w", r.Extension(), err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close report file: %w", err)
	}
	return path, nil
}
