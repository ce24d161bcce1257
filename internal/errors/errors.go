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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrAccountNotFound indicates the requested account does not exist on the
	// configured API endpoint. Maps to exit code 1.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNotUserAccount indicates the account exists but is not a personal user
	// account, for example an organization. Maps to exit code 1.
	ErrNotUserAccount = errors.New("account is not a user account")

	// ErrExhausted indicates a request kept failing after every retry attempt
	// was spent. Rate-limit pauses never produce this error; only genuine
	// failures consume attempts. Maps to exit code 1.
	ErrExhausted = errors.New("retry attempts exhausted")
)
