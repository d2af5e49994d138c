// Package table holds loosely-typed tabular input: a header row plus string cells.
package table

import "strings"

// Table is an uploaded sheet. Cells are untyped; the header is trimmed.
type Table struct {
	Header []string
	Rows   [][]string
}

// New builds a Table from raw records, taking the first record as the header.
// Header names are trimmed of surrounding whitespace; cell values are not.
func New(records [][]string) *Table {
	if len(records) == 0 {
		return &Table{}
	}
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	return &Table{Header: header, Rows: records[1:]}
}

// Index returns the position of column name in the header.
func (t *Table) Index(name string) (int, bool) {
	for i, h := range t.Header {
		if h == name {
			return i, true
		}
	}
	return -1, false
}

// Cell returns row[idx], or "" when the row is shorter than the header.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Records returns the header followed by all rows, the inverse of New.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, t.Header)
	return append(out, t.Rows...)
}
