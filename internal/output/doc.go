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

// Package output writes collected tickets as CSV.
//
// The header is sized to the ticket with the most notes, while each body
// row keeps its own length: rows with fewer notes than the widest one end
// early instead of being padded with empty fields. Quoting follows RFC 4180
// through encoding/csv, so a comma-joined tag list lands in a single quoted
// field.
//
// Example usage:
//
//	w := output.NewWriter(os.Stdout, true)
//	if err := w.WriteHeader(result.MaxComments); err != nil {
//	    return err
//	}
//	for _, row := range result.Rows {
//	    if err := w.Write(row); err != nil {
//	        return err
//	    }
//	}
//	if err := w.Close(); err != nil {
//	    return err
//	}
//	fmt.Fprintf(os.Stderr, "Wrote %d rows\n", w.Count())
package output
