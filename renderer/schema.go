package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/standings"
)

// SchemaMarkdown describes a raw table before normalization: where it
// came from, which columns it exposes, and which schema was detected.
func SchemaMarkdown(t *standings.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Schema Report")

	if t.IsEmpty() {
		doc.PlainText("The table is empty, nothing to detect.")
		return doc.String()
	}

	schema := standings.DetectSchema(t)
	doc.PlainText(fmt.Sprintf("Source: %s", t.Source))
	doc.PlainText(fmt.Sprintf("Detected schema: **%s** over %d rows.", schema, len(t.Rows())))

	doc.H2("Columns")
	doc.BulletList(t.Columns()...)

	if schema == standings.Unknown {
		doc.H2("Diagnosis")
		doc.PlainText("No recognized column set. A normalizable table needs " +
			"`player` and `date`, and either `net` or both `buy_in` and `cash_out`.")
	}

	return doc.String()
}
