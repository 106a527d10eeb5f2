package standings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/PuerkitoBio/goquery"
)

// Remote ledger sources. The group's sheet does not need an API key: a
// sheet shared as "anyone with the link" answers on its gviz endpoint, and
// a sheet published to the web answers as a plain HTML table. Both are
// snapshots: whatever the sheet holds at fetch time becomes the Table, and
// the core never writes back.

// FetchSheet fetches a worksheet snapshot from the Google Sheets gviz
// endpoint and returns it as a raw Table with SourceRemote provenance.
func FetchSheet(client *http.Client, spreadsheetID, worksheet string) (*Table, error) {
	addr := fmt.Sprintf(
		"https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:json&sheet=%s",
		url.PathEscape(spreadsheetID), url.QueryEscape(worksheet),
	)
	body, err := wget(client, addr)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch sheet %q: %w", worksheet, err)
	}
	return parseGvizTable(body)
}

// parseGvizTable decodes the JS-wrapped gviz response into a Table.
func parseGvizTable(body []byte) (*Table, error) {
	// The endpoint wraps JSON in a setResponse(...) javascript call.
	start := bytes.IndexByte(body, '{')
	end := bytes.LastIndexByte(body, '}')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("unexpected gviz response: no JSON object found")
	}

	var jobj any
	if err := json.Unmarshal(body[start:end+1], &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse gviz response: %w", err)
	}

	jlabels, err := jsonpath.Get("$.table.cols[*].label", jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot read gviz columns: %w", err)
	}
	var headers []string
	for _, l := range asList(jlabels) {
		label, _ := l.(string)
		headers = append(headers, label)
	}

	jrows, err := jsonpath.Get("$.table.rows[*].c", jobj)
	if err != nil {
		// A sheet with zero data rows has no $.table.rows entries at all.
		return NewTable(SourceRemote, headers, nil), nil
	}
	var rows [][]Cell
	for _, jrow := range asList(jrows) {
		var cells []Cell
		for _, jcell := range asList(jrow) {
			cells = append(cells, gvizCell(jcell))
		}
		rows = append(rows, cells)
	}

	// When the sheet has no frozen header, gviz leaves every label blank
	// and the header row arrives as the first data row.
	if allBlank(headers) && len(rows) > 0 {
		headers = headers[:0]
		for _, c := range rows[0] {
			headers = append(headers, c.Value())
		}
		rows = rows[1:]
	}

	return NewTable(SourceRemote, headers, rows), nil
}

// asList normalizes a jsonpath result: it is never clear about whether it
// returns a list of answers or a single one.
func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}

func allBlank(headers []string) bool {
	for _, h := range headers {
		if strings.TrimSpace(h) != "" {
			return false
		}
	}
	return len(headers) > 0
}

// gvizCell converts one gviz cell object to a raw Cell. The formatted
// value 'f' is preferred: it is what the human sees in the sheet, and the
// normalizer is built to clean exactly that.
func gvizCell(v any) Cell {
	obj, ok := v.(map[string]any)
	if !ok || obj == nil {
		return Missing
	}
	if f, ok := obj["f"].(string); ok {
		return Text(f)
	}
	switch val := obj["v"].(type) {
	case nil:
		return Missing
	case string:
		if d, ok := gvizDate(val); ok {
			return Text(d)
		}
		return Text(val)
	case float64:
		return Text(strconv.FormatFloat(val, 'f', -1, 64))
	case bool:
		return Text(strconv.FormatBool(val))
	default:
		return Missing
	}
}

// gvizDate rewrites the gviz "Date(2024,3,3)" literal (month is 0-based)
// as an ISO date string.
func gvizDate(v string) (string, bool) {
	var y, m, d int
	if _, err := fmt.Sscanf(v, "Date(%d,%d,%d)", &y, &m, &d); err != nil {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m+1, d), true
}

// FetchPublishedHTML fetches a sheet that was "published to the web" as an
// HTML table and returns it as a raw Table with SourceRemote provenance.
// The first table row is the header.
func FetchPublishedHTML(client *http.Client, addr string) (*Table, error) {
	body, err := wget(client, addr)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch published sheet: %w", err)
	}
	return parseHTMLTable(body)
}

func parseHTMLTable(body []byte) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cannot parse published sheet html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return NewTable(SourceRemote, nil, nil), nil
	}

	var headers []string
	var rows [][]Cell
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var values []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			values = append(values, strings.TrimSpace(cell.Text()))
		})
		if len(values) == 0 {
			return
		}
		if headers == nil {
			headers = values
			return
		}
		cells := make([]Cell, len(values))
		for j, v := range values {
			if v == "" {
				cells[j] = Missing
			} else {
				cells[j] = Text(v)
			}
		}
		rows = append(rows, cells)
	})

	return NewTable(SourceRemote, headers, rows), nil
}
