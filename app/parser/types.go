package parser

// RawTable is an uploaded table exactly as parsed: a header row plus string
// cells, one slice per input row. No typing or validation has happened yet.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named header, or -1 when absent.
func (t *RawTable) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Value returns the cell at (row, col), or "" when col is -1.
func (t *RawTable) Value(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
