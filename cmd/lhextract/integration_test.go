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
	"testing"

	"github.com/sirseerhq/lh-extract/test/testutil"
)

func TestCLI_MissingArguments(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary test in short mode")
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, "FAIL: Need an account\n"},
		{"no token", []string{"-a", "acme"}, "FAIL: Need a token\n"},
		{"no project", []string{"-a", "acme", "-t", "x"}, "FAIL: Need a project ID\n"},
		{"no milestone", []string{"-a", "acme", "-t", "x", "-p", "1"}, "FAIL: Need a milestone name (in quotes: 'Iteration 7')\n"},
		{"token without value", []string{"-a", "acme", "-t"}, "FAIL: Need a token\n"},
		{"long flags", []string{"--account", "acme", "--token", "x", "--project", "1"}, "FAIL: Need a milestone name (in quotes: 'Iteration 7')\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testutil.RunCLI(t, tt.args, nil)
			testutil.AssertExitCode(t, result, 1)
			if result.Stdout != tt.want {
				t.Errorf("stdout = %q, want %q", result.Stdout, tt.want)
			}
		})
	}
}

func TestCLI_Help(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary test in short mode")
	}

	result := testutil.RunCLI(t, []string{"-h"}, nil)
	testutil.AssertExitCode(t, result, 0)
	testutil.AssertContainsString(t, result.Stdout, "--milestone")
}

func TestCLI_Extract(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary test in short mode")
	}

	tickets := make([]*testutil.TicketBuilder, 0, 31)
	for i := 1; i <= 31; i++ {
		tickets = append(tickets, testutil.NewTicketBuilder(i))
	}
	tickets[4].WithComments("a", "b", "c")
	server := testutil.NewLighthouseServer(t, 7, tickets...)

	result := testutil.RunWithMockServer(t, server, "-a", "acme", "-t", testutil.TestToken, "-p", "7", "-m", "Iteration 7")
	testutil.AssertExitCode(t, result, 0)

	records := testutil.ParseCSV(t, result.Stdout)
	if len(records) != 32 {
		t.Fatalf("expected header and 31 rows, got %d records", len(records))
	}
	testutil.AssertHeader(t, records[0], 3)
	if len(records[5]) != 9 {
		t.Errorf("ticket 5 row has %d fields, want 9", len(records[5]))
	}
	if len(records[1]) != 6 {
		t.Errorf("ticket 1 row has %d fields, want 6", len(records[1]))
	}

	if got := server.SearchPages(); len(got) != 2 {
		t.Errorf("search pages = %v, want [1 2]", got)
	}
	if got := server.DetailCalls(); len(got) != 31 {
		t.Errorf("detail calls = %d, want 31", len(got))
	}
}

func TestCLI_ExitCodes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary test in short mode")
	}

	server := testutil.NewLighthouseServer(t, 7, testutil.NewTicketBuilder(1))

	t.Run("bad token", func(t *testing.T) {
		result := testutil.RunWithMockServer(t, server, "-a", "acme", "-t", "wrong", "-p", "7", "-m", "M")
		testutil.AssertExitCode(t, result, 2)
		if result.Stdout != "" {
			t.Errorf("expected empty stdout, got %q", result.Stdout)
		}
		testutil.AssertContainsString(t, result.Stderr, "Error:")
	})

	t.Run("unknown project", func(t *testing.T) {
		result := testutil.RunWithMockServer(t, server, "-a", "acme", "-t", testutil.TestToken, "-p", "8", "-m", "M")
		testutil.AssertExitCode(t, result, 2)
		testutil.AssertContainsString(t, result.Stderr, "no such project for 8 in acme")
	})

	t.Run("unreachable", func(t *testing.T) {
		dead := testutil.NewLighthouseServer(t, 7)
		url := dead.URL
		dead.Close()

		result := testutil.RunCLI(t, []string{"-a", "acme", "-t", "x", "-p", "7", "-m", "M"},
			map[string]string{"LIGHTHOUSE_ENDPOINT": url})
		testutil.AssertExitCode(t, result, 3)
	})
}
