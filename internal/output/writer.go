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

package output

import (
	"encoding/csv"
	"fmt"
	"io"
)

// BaseHeader is the fixed part of every header. The trailing Note column
// belongs to the first comment.
var BaseHeader = []string{"Story", "Labels", "Owned By", "State", "Description", "Note"}

// Header returns the header for a run whose busiest ticket has maxComments
// notes. With dynamicNotes false only the base header is returned.
func Header(maxComments int, dynamicNotes bool) []string {
	if !dynamicNotes || maxComments < 0 {
		maxComments = 0
	}
	header := make([]string, 0, len(BaseHeader)+maxComments)
	header = append(header, BaseHeader...)
	for i := 0; i < maxComments; i++ {
		header = append(header, "Note")
	}
	return header
}

// Writer handles CSV output to an io.Writer. It is not safe for
// concurrent use.
type Writer struct {
	csv          *csv.Writer
	dynamicNotes bool
	count        int
}

// NewWriter creates a CSV writer that writes to w. With dynamicNotes false
// the header stops at the base columns whatever the comment count.
func NewWriter(w io.Writer, dynamicNotes bool) *Writer {
	return &Writer{csv: csv.NewWriter(w), dynamicNotes: dynamicNotes}
}

// WriteHeader writes the header row for maxComments notes. It does not
// count as a record.
func (w *Writer) WriteHeader(maxComments int) error {
	if err := w.csv.Write(Header(maxComments, w.dynamicNotes)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// Write writes a single row at its own length.
func (w *Writer) Write(record []string) error {
	if err := w.csv.Write(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of records written, excluding the header.
func (w *Writer) Count() int {
	return w.count
}

// Close flushes buffered rows. The underlying writer stays open.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
