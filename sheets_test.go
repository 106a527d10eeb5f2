package standings

import (
	"testing"
	"time"
)

// A trimmed-down gviz payload the way docs.google.com actually wraps it.
const gvizFixture = `/*O_o*/
google.visualization.Query.setResponse({"version":"0.6","reqId":"0","status":"ok","table":{
"cols":[{"id":"A","label":"Player","type":"string"},{"id":"B","label":"Date","type":"date"},{"id":"C","label":"Net","type":"number"}],
"rows":[
{"c":[{"v":"Alice"},{"v":"Date(2024,3,3)"},{"v":25.5,"f":"$25.50"}]},
{"c":[{"v":"Bob"},{"v":"Date(2024,3,3)"},{"v":-25.5,"f":"($25.50)"}]},
{"c":[{"v":"Carol"},null,{"v":10}]}
]}});`

func TestParseGvizTable(t *testing.T) {
	table, err := parseGvizTable([]byte(gvizFixture))
	if err != nil {
		t.Fatalf("parseGvizTable: %v", err)
	}

	if got, want := table.Columns(), []string{"player", "date", "net"}; len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("columns = %v, want %v", got, want)
	}
	if len(table.Rows()) != 3 {
		t.Fatalf("rows = %d, want 3", len(table.Rows()))
	}

	// The formatted value is preferred, so the normalizer sees what the
	// sheet displays.
	if got := table.Rows()[0]["net"].Value(); got != "$25.50" {
		t.Errorf("net cell = %q, want formatted %q", got, "$25.50")
	}

	// Everything survives normalization end to end.
	ds := Normalize(table, "USD")
	if ds.Len() != 2 {
		t.Fatalf("normalized %d records, want 2 (Carol has no date)", ds.Len())
	}
	for _, r := range ds.Sessions(ByPlayer("Alice")) {
		if want := NewDate(2024, time.April, 3); r.Date != want {
			t.Errorf("gviz date = %v, want %v (0-based month shifted)", r.Date, want)
		}
		if !r.Net.Equal(M(25.5, "USD")) {
			t.Errorf("net = %v, want 25.5", r.Net)
		}
	}
	for _, r := range ds.Sessions(ByPlayer("Bob")) {
		if !r.Net.Equal(M(-25.5, "USD")) {
			t.Errorf("accounting negative net = %v, want -25.5", r.Net)
		}
	}
}

const htmlFixture = `<html><body><table>
<tr><th>Player</th><th>Date</th><th>Buy_in</th><th>Cash_out</th></tr>
<tr><td>Alice</td><td>05/01/2024</td><td>100</td><td>150</td></tr>
<tr><td>Bob</td><td>05/01/2024</td><td>100</td><td></td></tr>
</table></body></html>`

func TestParseHTMLTable(t *testing.T) {
	table, err := parseHTMLTable([]byte(htmlFixture))
	if err != nil {
		t.Fatalf("parseHTMLTable: %v", err)
	}
	if len(table.Columns()) != 4 {
		t.Fatalf("columns = %v, want 4", table.Columns())
	}
	if DetectSchema(table) != BuyinCashout {
		t.Fatalf("schema = %v, want buyin_cashout", DetectSchema(table))
	}

	ds := Normalize(table, "")
	if ds.Len() != 1 {
		t.Fatalf("normalized %d records, want 1 (Bob's empty cash_out drops the row)", ds.Len())
	}
	for _, r := range ds.Sessions() {
		if !r.Net.Equal(M(50, "")) {
			t.Errorf("net = %v, want 50", r.Net)
		}
	}
}

func TestParseHTMLTableNoTable(t *testing.T) {
	table, err := parseHTMLTable([]byte("<html><body><p>nothing here</p></body></html>"))
	if err != nil {
		t.Fatalf("parseHTMLTable: %v", err)
	}
	if !table.IsEmpty() {
		t.Errorf("table = %v, want empty", table.Columns())
	}
	if !Normalize(table, "").IsEmpty() {
		t.Error("normalizing an empty table must yield an empty dataset")
	}
}
