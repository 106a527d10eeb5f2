// Package renderer turns reports into markdown strings, ready to be
// printed raw or through a terminal renderer.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/standings"
)

// OverviewMarkdown generates the group overview report: headline KPIs
// followed by the full standings table.
func OverviewMarkdown(s *standings.Standings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Standings, %s", s.Range))

	if len(s.Rows) == 0 {
		doc.PlainText("No sessions recorded.")
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("%d sessions played, %s total net.", s.KPI.TotalSessions, s.KPI.TotalNet.SignedString()))

	doc.H2("Highlights")
	doc.Table(md.TableSet{
		Header: []string{"", "Player", "Net"},
		Rows: [][]string{
			{"Top winner", s.KPI.TopWinner, s.KPI.TopWinnerNet.SignedString()},
			{"Biggest loser", s.KPI.BiggestLoser, s.KPI.BiggestLoserNet.SignedString()},
		},
	})

	doc.H2("Standings")
	doc.Table(md.TableSet{
		Header: []string{"#", "Player", "Sessions", "Total", "Avg", "Win Rate", "Best", "Worst"},
		Rows:   standingRows(s.Rows),
	})

	return doc.String()
}

// StandingsMarkdown generates the bare standings table without the KPI
// header.
func StandingsMarkdown(s *standings.Standings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Standings, %s", s.Range))
	if len(s.Rows) == 0 {
		doc.PlainText("No sessions recorded.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Player", "Sessions", "Total", "Avg", "Win Rate", "Best", "Worst"},
		Rows:   standingRows(s.Rows),
	})
	return doc.String()
}

func standingRows(rows []standings.StandingRow) [][]string {
	out := make([][]string, 0, len(rows))
	for i, r := range rows {
		out = append(out, []string{
			fmt.Sprintf("%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Sessions),
			r.TotalNet.SignedString(),
			r.AvgNet.SignedString(),
			r.WinRate.String(),
			r.BestNet.SignedString(),
			r.WorstNet.SignedString(),
		})
	}
	return out
}
