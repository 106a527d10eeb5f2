package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/standings"
)

// SessionsMarkdown generates the chronological session log. Each row
// carries the player's running cumulative net, so a profile's total can
// be traced session by session.
func SessionsMarkdown(d *standings.Dataset) string {
	r := &logRenderer{Builder: &strings.Builder{}}

	r.Printf("# Session Log, %s\n\n", logRange(d))

	if d.IsEmpty() {
		r.Printf("No sessions recorded.\n")
		return r.String()
	}

	running := make(map[string]standings.Money)

	r.Printf("| Date | Player | Net | Running | Group |\n")
	r.Printf("|:---|:---|---:|---:|:---|\n")
	for _, rec := range d.Sessions() {
		total := running[rec.Player].Add(rec.Net)
		running[rec.Player] = total
		r.Printf("| %s | %s | %s | %s | %s |\n",
			rec.Date, rec.Player, rec.Net.SignedString(), total.String(), rec.Group)
	}
	r.Printf("\n")

	return r.String()
}

func logRange(d *standings.Dataset) standings.Range {
	if d.IsEmpty() {
		return standings.Range{}
	}
	return standings.NewRange(d.OldestSessionDate(), d.NewestSessionDate())
}

// logRenderer formats the session log into a markdown string.
type logRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *logRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}
