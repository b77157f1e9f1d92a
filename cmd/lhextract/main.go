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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	lherrors "github.com/sirseerhq/lh-extract/internal/errors"
	"github.com/sirseerhq/lh-extract/internal/lighthouse"
)

var version = "dev"

func main() {
	lighthouse.UserAgentVersion = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		var usage *lherrors.UsageError
		if errors.As(err, &usage) {
			fmt.Fprintln(os.Stdout, usage.Message)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, lherrors.ErrInvalidToken) ||
		errors.Is(err, lherrors.ErrProjectNotFound) ||
		errors.Is(err, lherrors.ErrTicketNotFound) {
		return 2 // Authentication/not found
	}

	if errors.Is(err, lherrors.ErrNetworkFailure) ||
		errors.Is(err, lherrors.ErrTimeout) {
		return 3 // Network errors
	}

	return 1 // General error
}
