// Copyright 2025 The polygon-go Authors

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package table renders rows of reference data as aligned text or CSV for
// the command line apps.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/stockparfait/errors"
)

// Table is an ordered collection of string rows under an optional header.
type Table struct {
	header []string
	rows   [][]string
}

// New creates a Table with the given column headers.
func New(header ...string) *Table {
	return &Table{header: header}
}

// Add appends one row. The number of cells must match the header when a
// header is present.
func (t *Table) Add(cells ...string) error {
	if len(t.header) > 0 && len(cells) != len(t.header) {
		return errors.Reason("row has %d cells, header has %d columns",
			len(cells), len(t.header))
	}
	t.rows = append(t.rows, cells)
	return nil
}

// NumRows returns the number of data rows added so far.
func (t *Table) NumRows() int { return len(t.rows) }

// WriteCSV writes the entire table to w in CSV format.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if len(t.header) > 0 {
		if err := cw.Write(t.header); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
	}
	for _, r := range t.rows {
		if err := cw.Write(r); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Annotate(err, "failed to flush written rows")
	}
	return nil
}

// WriteText writes the table as column-aligned text with a dashed line under
// the header.
func (t *Table) WriteText(w io.Writer) error {
	var widths []int
	grow := func(row []string) {
		for i, c := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}
	grow(t.header)
	for _, r := range t.rows {
		grow(r)
	}

	write := func(row []string) error {
		padded := make([]string, len(widths))
		for i := range widths {
			var c string
			if i < len(row) {
				c = row[i]
			}
			padded[i] = c + strings.Repeat(" ", widths[i]-len(c))
		}
		_, err := fmt.Fprintf(w, "%s\n", strings.TrimRight(strings.Join(padded, "  "), " "))
		return err
	}

	if len(t.header) > 0 {
		if err := write(t.header); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
		dashes := make([]string, len(widths))
		for i, n := range widths {
			dashes[i] = strings.Repeat("-", n)
		}
		if err := write(dashes); err != nil {
			return errors.Annotate(err, "failed to write header separator")
		}
	}
	for _, r := range t.rows {
		if err := write(r); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	return nil
}
