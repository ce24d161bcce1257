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
	"fmt"
	"net/http"

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
)

// Account retrieves the profile for handle and applies the validation
// gate: the account must exist and be a personal user account. Callers
// must stop the whole pipeline on any error from here.
func (c *RESTClient) Account(ctx context.Context, handle string) (*Account, error) {
	resp, err := c.do(ctx, "/users/"+handle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("validate account %q: %w", handle, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("account %q: %w", handle, scouterrors.ErrAccountNotFound)
	}

	var account Account
	if err := json.Unmarshal(resp.Body(), &account); err != nil {
		return nil, fmt.Errorf("decode account %q: %w", handle, err)
	}
	if account.Type != accountTypeUser {
		return nil, fmt.Errorf("%w: account %q has type %s", scouterrors.ErrNotUserAccount, handle, account.Type)
	}

	return &account, nil
}
