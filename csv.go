package standings

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSVTable reads a raw ledger snapshot from CSV. The first line is the
// header row; ragged rows are tolerated (short rows are padded with
// missing cells by the Table constructor).
//
// No cleaning happens here: cells are carried verbatim into the Table and
// the normalizer does the rest.
func ReadCSVTable(r io.Reader, source string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // human-entered sheets are ragged
	cr.TrimLeadingSpace = true

	lines, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger csv: %w", err)
	}
	if len(lines) == 0 {
		return NewTable(source, nil, nil), nil
	}

	headers := lines[0]
	var rows [][]Cell
	for _, line := range lines[1:] {
		cells := make([]Cell, len(line))
		for i, v := range line {
			cells[i] = Text(v)
		}
		rows = append(rows, cells)
	}
	return NewTable(source, headers, rows), nil
}
