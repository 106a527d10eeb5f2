package standings

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// This file implements the normalizer: the one-way pass from a raw Table to
// the canonical Dataset. It never fails on malformed data; rows either
// qualify or are silently dropped.

var (
	parenNegativeRE = regexp.MustCompile(`\(([^)]+)\)`)
	nonNumericRE    = regexp.MustCompile(`[^0-9.\-]`)
)

// cleanNumeric coerces a raw cell to a numeric value, handling currency
// symbols, thousand separators and accounting-style negatives.
//
// The order matters: parenthesized negatives must be rewritten before the
// currency strip, or "(25.50)" would lose its sign along with the parens.
// Any residue that still fails to parse yields a missing value, not an
// error; the row gate drops the record later.
func cleanNumeric(c Cell) (decimal.Decimal, bool) {
	if c.IsMissing() {
		return decimal.Decimal{}, false
	}
	text := strings.ReplaceAll(c.Value(), "\u00a0", "")
	text = strings.TrimSpace(text)
	text = parenNegativeRE.ReplaceAllString(text, "-$1")
	text = nonNumericRE.ReplaceAllString(text, "")
	if text == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// cleanText coerces a raw cell to trimmed text; "" counts as missing.
func cleanText(c Cell) (string, bool) {
	if c.IsMissing() {
		return "", false
	}
	s := strings.TrimSpace(c.Value())
	return s, s != ""
}

// netFunc computes the net for one row under a given schema.
type netFunc func(Row) (decimal.Decimal, bool)

// netStrategy binds the schema variant to its net computation once, at
// detection time, instead of re-branching on every row.
func netStrategy(s Schema) netFunc {
	switch s {
	case NetDirect:
		return func(r Row) (decimal.Decimal, bool) {
			return cleanNumeric(r[colNet])
		}
	case BuyinCashout:
		return func(r Row) (decimal.Decimal, bool) {
			buyIn, ok := cleanNumeric(r[colBuyIn])
			if !ok {
				return decimal.Decimal{}, false
			}
			cashOut, ok := cleanNumeric(r[colCashOut])
			if !ok {
				return decimal.Decimal{}, false
			}
			return cashOut.Sub(buyIn), true
		}
	default:
		return nil
	}
}

// Normalize transforms a raw ledger snapshot into the canonical Dataset.
//
// Every net is stamped with the given reporting currency (ledgers are
// single-currency by assumption; pass "" for plain numbers). Normalize
// always returns a Dataset: an unrecognized schema or an empty table
// degrades to an empty one, and rows with a missing player, unparseable
// date or non-numeric net are dropped without failing the pass.
func Normalize(t *Table, currency string) *Dataset {
	if t.IsEmpty() {
		return NewDataset()
	}
	net := netStrategy(DetectSchema(t))
	if net == nil {
		return NewDataset()
	}

	var records []SessionRecord
	for _, row := range t.Rows() {
		player, ok := cleanText(row[colPlayer])
		if !ok {
			continue
		}
		rawDate, ok := cleanText(row[colDate])
		if !ok {
			continue
		}
		day, err := ParseLedgerDate(rawDate)
		if err != nil {
			continue
		}
		amount, ok := net(row)
		if !ok {
			continue
		}

		rec := SessionRecord{
			Player: player,
			Date:   day,
			Net:    M(amount, currency),
		}
		// Optional columns: absent or blank is fine.
		rec.Group, _ = cleanText(row[colGroup])
		rec.SessionID, _ = cleanText(row[colSessionID])

		records = append(records, rec)
	}
	return NewDataset(records...)
}
