package standings

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// table is a test helper building a Table from a header row and cell texts.
func table(headers []string, rows ...[]string) *Table {
	var cells [][]Cell
	for _, row := range rows {
		line := make([]Cell, len(row))
		for i, v := range row {
			line[i] = Text(v)
		}
		cells = append(cells, line)
	}
	return NewTable(SourceFile, headers, cells)
}

func TestDetectSchema(t *testing.T) {
	testCases := []struct {
		name    string
		columns []string
		want    Schema
	}{
		{
			name:    "net direct",
			columns: []string{"player", "date", "net"},
			want:    NetDirect,
		},
		{
			name:    "net direct with mixed case and whitespace",
			columns: []string{" Player ", "DATE", "Net"},
			want:    NetDirect,
		},
		{
			name:    "net direct with extra columns",
			columns: []string{"season", "player", "date", "net", "venue"},
			want:    NetDirect,
		},
		{
			name:    "buyin cashout",
			columns: []string{"player", "date", "buy_in", "cash_out"},
			want:    BuyinCashout,
		},
		{
			name:    "net direct wins when both sets present",
			columns: []string{"player", "date", "net", "buy_in", "cash_out"},
			want:    NetDirect,
		},
		{
			name:    "unknown",
			columns: []string{"player", "date", "score"},
			want:    Unknown,
		},
		{
			name:    "no columns",
			columns: nil,
			want:    Unknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectSchema(table(tc.columns))
			if got != tc.want {
				t.Errorf("DetectSchema(%v) = %v, want %v", tc.columns, got, tc.want)
			}
		})
	}
}

func TestCleanNumeric(t *testing.T) {
	testCases := []struct {
		name    string
		input   Cell
		want    string
		missing bool
	}{
		{name: "plain number", input: Text("50"), want: "50"},
		{name: "decimal", input: Text("25.5"), want: "25.5"},
		{name: "negative", input: Text("-12.75"), want: "-12.75"},
		{name: "currency symbol", input: Text("$1,234.00"), want: "1234"},
		{name: "euro symbol", input: Text("€42.00"), want: "42"},
		{name: "accounting negative", input: Text("(25.50)"), want: "-25.5"},
		{name: "accounting negative with currency", input: Text("($1,000.00)"), want: "-1000"},
		{name: "non-breaking space", input: Text("1 234,"), want: "1234"},
		{name: "whitespace only", input: Text("   "), missing: true},
		{name: "empty", input: Text(""), missing: true},
		{name: "text residue", input: Text("abc"), missing: true},
		{name: "missing cell", input: Missing, missing: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := cleanNumeric(tc.input)
			if tc.missing {
				if ok {
					t.Fatalf("cleanNumeric(%q) = %v, want missing", tc.input.Value(), got)
				}
				return
			}
			if !ok {
				t.Fatalf("cleanNumeric(%q) is missing, want %s", tc.input.Value(), tc.want)
			}
			if want, _ := decimal.NewFromString(tc.want); !got.Equal(want) {
				t.Errorf("cleanNumeric(%q) = %s, want %s", tc.input.Value(), got, tc.want)
			}
		})
	}
}

func TestNormalizeNetDirect(t *testing.T) {
	in := table(
		[]string{"Player", "Date", "Net", "Group"},
		[]string{" Alice ", "03/04/2024", "$25.00", " Friday Game "},
		[]string{"Bob", "03/04/2024", "(25.00)", "Friday Game"},
	)

	ds := Normalize(in, "")
	if ds.Len() != 2 {
		t.Fatalf("Normalize() kept %d records, want 2", ds.Len())
	}

	var records []SessionRecord
	for _, rec := range ds.Sessions() {
		records = append(records, rec)
	}

	if records[0].Player != "Alice" {
		t.Errorf("player = %q, want trimmed %q", records[0].Player, "Alice")
	}
	if records[0].Group != "Friday Game" {
		t.Errorf("group = %q, want trimmed %q", records[0].Group, "Friday Game")
	}
	if want := NewDate(2024, time.April, 3); records[0].Date != want {
		t.Errorf("date = %v, want day-first %v", records[0].Date, want)
	}
	if !records[0].Net.Equal(M(25.0, "")) {
		t.Errorf("net = %v, want 25", records[0].Net)
	}
	if !records[1].Net.Equal(M(-25.0, "")) {
		t.Errorf("net = %v, want accounting negative -25", records[1].Net)
	}
}

func TestNormalizeBuyinCashout(t *testing.T) {
	in := table(
		[]string{"player", "date", "buy_in", "cash_out"},
		[]string{"Alice", "05/01/2024", "100", "150"},
		[]string{"Bob", "05/01/2024", "100", ""}, // missing cash_out drops the row
		[]string{"Carol", "05/01/2024", "", "80"}, // missing buy_in drops the row
	)

	ds := Normalize(in, "USD")
	if ds.Len() != 1 {
		t.Fatalf("Normalize() kept %d records, want 1", ds.Len())
	}
	for _, rec := range ds.Sessions() {
		if !rec.Net.Equal(M(50.0, "USD")) {
			t.Errorf("net = %v, want cash_out - buy_in = 50", rec.Net)
		}
	}
}

func TestNormalizeDropsDefectiveRows(t *testing.T) {
	in := table(
		[]string{"player", "date", "net"},
		[]string{"Alice", "05/01/2024", "10"},
		[]string{"Bob", "not-a-date", "10"}, // unparseable date
		[]string{"", "05/01/2024", "10"},    // missing player
		[]string{"Dmitri", "05/01/2024", "n/a"}, // non-numeric net
		[]string{"Eve", "06/01/2024", "-10"},
	)

	ds := Normalize(in, "")
	if ds.Len() != 2 {
		t.Fatalf("Normalize() kept %d records, want 2 (defective rows dropped silently)", ds.Len())
	}
	var players []string
	for p := range ds.Players() {
		players = append(players, p)
	}
	if len(players) != 2 || players[0] != "Alice" || players[1] != "Eve" {
		t.Errorf("players = %v, want [Alice Eve]", players)
	}
}

func TestNormalizeDegradesToEmpty(t *testing.T) {
	testCases := []struct {
		name string
		in   *Table
	}{
		{name: "nil table", in: nil},
		{name: "no columns", in: table(nil)},
		{name: "no rows", in: table([]string{"player", "date", "net"})},
		{
			name: "unknown schema",
			in: table(
				[]string{"player", "date", "score"},
				[]string{"Alice", "05/01/2024", "10"},
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ds := Normalize(tc.in, "")
			if !ds.IsEmpty() {
				t.Errorf("Normalize() = %d records, want empty dataset", ds.Len())
			}
		})
	}
}

func TestNormalizeSample(t *testing.T) {
	ds := Normalize(SampleTable(), "USD")
	if ds.IsEmpty() {
		t.Fatal("sample dataset is empty")
	}
	// Every sample row is well-formed.
	if ds.Len() != 21 {
		t.Errorf("sample dataset has %d records, want 21", ds.Len())
	}
	if DetectSchema(SampleTable()) != BuyinCashout {
		t.Errorf("sample schema = %v, want buyin_cashout", DetectSchema(SampleTable()))
	}
}
