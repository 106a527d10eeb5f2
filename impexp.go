package standings

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and easy to diff.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ImportSessions imports a canonical dataset from 'r' in the import/export
// format.
//
// The format is a JSONL file, where each line is a JSON object representing
// one session record: 'player' and 'date' as strings, 'net' as an object
// with 'amount' (number) and optional 'currency', plus optional 'group' and
// 'session_id'. Lines are re-sorted chronologically on import, so the file
// can be appended to by hand.
func ImportSessions(r io.Reader) (*Dataset, error) {
	var records []SessionRecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var rec SessionRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("cannot parse line for session import format: %q: %w", string(line), err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read session import format: %w", err)
	}
	return NewDataset(records...), nil
}

// ExportSessions exports the dataset to 'w' in the import/export format,
// one record per line in chronological order.
func ExportSessions(w io.Writer, d *Dataset) error {
	for _, rec := range d.Sessions() {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("cannot marshal session for %q on %s: %w", rec.Player, rec.Date, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write session format: %w", err)
		}
	}
	return nil
}
