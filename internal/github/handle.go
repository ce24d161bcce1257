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
	"fmt"
	"regexp"
	"strings"
)

// handlePattern extracts the account segment from a github.com URL in any
// of its spellings (with or without scheme, trailing path, mixed case).
var handlePattern = regexp.MustCompile(`(?i)github\.com/([^/]+)`)

// NormalizeHandle reduces the accepted identity spellings to a bare
// handle: a plain name, an @-prefixed name, or a profile URL containing
// github.com/<name>. The result is guaranteed non-empty and free of path
// separators and scheme prefixes.
func NormalizeHandle(raw string) (string, error) {
	handle := strings.TrimSpace(raw)
	handle = strings.TrimPrefix(handle, "@")

	if m := handlePattern.FindStringSubmatch(handle); m != nil {
		handle = m[1]
	}
	handle = strings.TrimSpace(handle)

	if handle == "" {
		return "", fmt.Errorf("empty account identity %q", raw)
	}
	if strings.ContainsAny(handle, "/\\") || strings.Contains(handle, ":") {
		return "", fmt.Errorf("cannot extract an account handle from %q", raw)
	}
	return handle, nil
}
