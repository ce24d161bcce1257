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

// Package report renders a finished repository listing into the output
// artifacts of a run: CSV, JSON, and HTML files named {handle}_repos.{ext},
// plus an incremental plain-text log appended to while enumeration is
// still in flight.
//
// The batch formats implement Renderer and write a complete Report in a
// single pass. Renders are deterministic: the same Report produces
// byte-identical CSV and JSON output, which makes repeated runs against
// unchanged remote state diffable. Only the HTML report carries a
// generation timestamp.
//
// Example usage:
//
//	rep := &report.Report{
//	    Handle:       "octocat",
//	    Generated:    time.Now(),
//	    Repositories: summaries,
//	}
//
//	for _, r := range []report.Renderer{
//	    report.CSVRenderer{},
//	    report.JSONRenderer{},
//	    report.HTMLRenderer{},
//	} {
//	    path, err := report.WriteFile(outputDir, rep, r)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("Saved %s\n", path)
//	}
package report
