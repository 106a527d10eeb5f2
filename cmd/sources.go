package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/standings"
)

// sourceFlags selects where a raw ledger table comes from. Exactly one
// source is used; they are tried in flag order.
type sourceFlags struct {
	sheet     string
	worksheet string
	html      string
	csvFile   string
	sample    bool
}

func (c *sourceFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sheet, "sheet", "", "Google spreadsheet ID to fetch from.")
	f.StringVar(&c.worksheet, "worksheet", "", "Worksheet name inside the spreadsheet. Defaults to the first one.")
	f.StringVar(&c.html, "html", "", "URL of a published-to-the-web sheet to scrape.")
	f.StringVar(&c.csvFile, "csv", "", "Path to a local CSV export.")
	f.BoolVar(&c.sample, "sample", false, "Use the embedded sample ledger.")
}

// Load fetches or reads the selected table.
func (c *sourceFlags) Load() (*standings.Table, error) {
	switch {
	case c.sheet != "":
		client := standings.CachedClient(*cacheTTL)
		return standings.FetchSheet(client, c.sheet, c.worksheet)
	case c.html != "":
		client := standings.CachedClient(*cacheTTL)
		return standings.FetchPublishedHTML(client, c.html)
	case c.csvFile != "":
		f, err := os.Open(c.csvFile)
		if err != nil {
			return nil, fmt.Errorf("could not open csv file %q: %w", c.csvFile, err)
		}
		defer f.Close()
		return standings.ReadCSVTable(f, standings.SourceFile)
	case c.sample:
		return standings.SampleTable(), nil
	default:
		return nil, fmt.Errorf("no source selected, use one of -sheet, -html, -csv or -sample")
	}
}
