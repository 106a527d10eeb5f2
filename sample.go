package standings

import (
	_ "embed"
	"strings"
)

// The bundled demo ledger, used when no remote sheet is configured. It
// follows the buyin_cashout schema on purpose, with the kind of currency
// formatting a real sheet accumulates, so demo mode exercises the whole
// normalizer.
//
//go:embed sample.csv
var sampleCSV string

// SampleTable returns the bundled demo ledger snapshot.
func SampleTable() *Table {
	t, err := ReadCSVTable(strings.NewReader(sampleCSV), SourceSample)
	if err != nil {
		// The sample is embedded and covered by tests; it cannot fail to parse.
		panic(err)
	}
	return t
}
