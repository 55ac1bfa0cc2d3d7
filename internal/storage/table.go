package storage

import "strings"

// Table is the normalized spreadsheet: header plus data rows of equal width.
type Table struct {
	Header []string
	Rows   [][]string
	// Lines holds the 1-based sheet row of each entry in Rows.
	Lines []int
}

// Index returns the position of col in the header or -1.
func (t *Table) Index(col string) int {
	for i, h := range t.Header {
		if h == col {
			return i
		}
	}
	return -1
}

// Indexes resolves the columns present in the header, skipping missing ones.
func (t *Table) Indexes(cols []string) []int {
	var out []int
	for _, c := range cols {
		if i := t.Index(c); i >= 0 {
			out = append(out, i)
		}
	}
	return out
}

// Records maps every row onto an ActivityRecord keyed by header.
func (t *Table) Records() []ActivityRecord {
	out := make([]ActivityRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		fields := make(map[string]string, len(t.Header))
		for c, h := range t.Header {
			if c < len(row) {
				fields[h] = strings.TrimSpace(row[c])
			}
		}
		line := 0
		if i < len(t.Lines) {
			line = t.Lines[i]
		}
		out = append(out, NewActivityRecord(line, fields))
	}
	return out
}
