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

// Package main implements the lh-extract command-line interface.
// It pulls every ticket in one Lighthouse milestone and writes them to
// stdout as CSV, one row per ticket with a trailing Note column for each
// comment.
//
// Usage:
//
//	lh-extract -a <account> -t <token> -p <project id> -m '<milestone>'
//
// Example:
//
//	lh-extract -a acme -t 0123abcd -p 42 -m 'Iteration 7' > iteration7.csv
//
// Progress and diagnostics go to stderr. Nothing is written to stdout
// unless every ticket was fetched.
//
// Exit codes:
//   - 0: Success
//   - 1: Missing argument or general error
//   - 2: Authentication or not-found error
//   - 3: Network error or timeout
package main
