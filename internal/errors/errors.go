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
	// ErrInvalidToken indicates Lighthouse rejected the API token.
	// Maps to exit code 2.
	ErrInvalidToken = errors.New("invalid lighthouse token")

	// ErrProjectNotFound indicates the project id does not resolve for the account.
	// Maps to exit code 2.
	ErrProjectNotFound = errors.New("project not found")

	// ErrTicketNotFound indicates a ticket listed by search could not be loaded.
	// Maps to exit code 2.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrTimeout indicates a request did not complete within the client timeout.
	// Maps to exit code 3.
	ErrTimeout = errors.New("request timed out")
)

// UsageError reports a missing or malformed command-line argument.
// Message is printed verbatim on stdout and the process exits with code 1.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError returns a UsageError carrying msg.
func NewUsageError(msg string) error {
	return &UsageError{Message: msg}
}
