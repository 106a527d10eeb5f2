package standings

import "strings"

// Provenance of a raw snapshot, reported to the UI so it can tell demo data
// from real data.
const (
	SourceRemote = "remote"
	SourceSample = "sample"
	SourceFile   = "file"
)

// Cell is a raw spreadsheet cell: either text or missing.
//
// Spreadsheet APIs hand back untyped values; everything is coerced to text
// once on ingestion, and dedicated cleaning functions take it from there.
// A missing cell stays missing through every cleaning step.
type Cell struct {
	text    string
	present bool
}

// Text returns a present cell holding the given text.
func Text(s string) Cell { return Cell{text: s, present: true} }

// Missing is the absent cell.
var Missing = Cell{}

// IsMissing returns true when the cell holds no value at all.
func (c Cell) IsMissing() bool { return !c.present }

// Value returns the raw cell text, "" when missing.
func (c Cell) Value() string { return c.text }

// Row maps a normalized column name to its raw cell.
type Row map[string]Cell

// Table is a raw tabular ledger snapshot, as handed over by a ledger
// source. Column names are normalized (lowercased, trimmed) on
// construction so schema detection and cell lookup are case-insensitive.
type Table struct {
	Source  string // provenance: SourceRemote, SourceSample or SourceFile
	columns []string
	rows    []Row
}

// NormalizeColumn maps a raw header cell to the canonical column key.
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewTable creates a Table from raw header names and row cells. Cells beyond
// the header width are dropped; short rows are padded with missing cells.
func NewTable(source string, headers []string, rows [][]Cell) *Table {
	t := &Table{Source: source}
	for _, h := range headers {
		t.columns = append(t.columns, NormalizeColumn(h))
	}
	for _, cells := range rows {
		row := make(Row, len(t.columns))
		for i, col := range t.columns {
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = Missing
			}
		}
		t.rows = append(t.rows, row)
	}
	return t
}

// Columns returns the normalized column names, in original order.
func (t *Table) Columns() []string { return t.columns }

// HasColumn returns true if the table has the given canonical column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Rows returns the raw rows.
func (t *Table) Rows() []Row { return t.rows }

// IsEmpty returns true for a table with no columns or no rows.
func (t *Table) IsEmpty() bool { return t == nil || len(t.columns) == 0 || len(t.rows) == 0 }
