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

package testutil

import (
	"encoding/csv"
	"strings"
	"testing"
)

// ParseCSV reads ragged CSV output into records, failing the test on malformed input.
func ParseCSV(t *testing.T, output string) [][]string {
	t.Helper()

	r := csv.NewReader(strings.NewReader(output))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v\n%s", err, output)
	}
	return records
}

// AssertHeader checks the header has the six fixed columns followed by notes extra Note columns.
func AssertHeader(t *testing.T, header []string, notes int) {
	t.Helper()

	want := []string{"Story", "Labels", "Owned By", "State", "Description", "Note"}
	for i := 0; i < notes; i++ {
		want = append(want, "Note")
	}
	if strings.Join(header, "|") != strings.Join(want, "|") {
		t.Errorf("Header mismatch:\ngot:  %q\nwant: %q", header, want)
	}
}

// AssertContainsString checks if a string contains a substring
func AssertContainsString(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("Expected string to contain %q, but it didn't.\nString: %s", needle, haystack)
	}
}

// AssertNotContainsString checks if a string does not contain a substring
func AssertNotContainsString(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Errorf("Expected string not to contain %q, but it did.\nString: %s", needle, haystack)
	}
}
