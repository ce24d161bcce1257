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

package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestReporterWritesToInjectedWriter(t *testing.T) {
	var buf bytes.Buffer
	r := New(Options{Writer: &buf, NoColor: true})

	r.Infof("fetching page %d", 3)
	r.Warnf("topics unavailable for %s", "octocat/Spoon-Knife")
	r.Successf("wrote %d reports", 4)
	r.Errorf("validation failed")

	out := buf.String()
	for _, want := range []string{
		"fetching page 3",
		"topics unavailable for octocat/Spoon-Knife",
		"wrote 4 reports",
		"validation failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestQuietSuppressesInfoButNotWarnings(t *testing.T) {
	var buf bytes.Buffer
	r := New(Options{Writer: &buf, NoColor: true, Quiet: true})

	r.Infof("page %d fetched", 1)
	r.Successf("done")
	r.Blank()
	r.Warnf("rate limit hit")
	r.Errorf("gave up")

	out := buf.String()
	if strings.Contains(out, "page 1 fetched") {
		t.Errorf("quiet mode leaked info output:\n%s", out)
	}
	if strings.Contains(out, "done") {
		t.Errorf("quiet mode leaked success output:\n%s", out)
	}
	if !strings.Contains(out, "rate limit hit") {
		t.Errorf("quiet mode dropped warning output:\n%s", out)
	}
	if !strings.Contains(out, "gave up") {
		t.Errorf("quiet mode dropped error output:\n%s", out)
	}
}

func TestTwoReportersDoNotShareState(t *testing.T) {
	var loud, quiet bytes.Buffer
	a := New(Options{Writer: &loud, NoColor: true})
	b := New(Options{Writer: &quiet, NoColor: true, Quiet: true})

	a.Infof("visible")
	b.Infof("hidden")

	if !strings.Contains(loud.String(), "visible") {
		t.Errorf("loud reporter lost its output: %q", loud.String())
	}
	if quiet.Len() != 0 {
		t.Errorf("quiet reporter wrote output: %q", quiet.String())
	}
}
