package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/standings"
)

// ProfileMarkdown generates a single player's report: lifetime metrics,
// streaks, and the most recent sessions.
func ProfileMarkdown(p *standings.PlayerProfile) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Profile: %s", p.Player))

	if p.GamesPlayed == 0 {
		doc.PlainText("No sessions recorded for this player.")
		return doc.String()
	}

	doc.H2("Metrics")
	doc.Table(md.TableSet{
		Header: []string{"Games", "Win Rate", "Avg", "Median", "Best", "Worst"},
		Rows: [][]string{{
			fmt.Sprintf("%d", p.GamesPlayed),
			p.WinRate.String(),
			p.AvgNet.SignedString(),
			p.MedianNet.SignedString(),
			p.BestNet.SignedString(),
			p.WorstNet.SignedString(),
		}},
	})

	doc.H2("Streaks")
	doc.Table(md.TableSet{
		Header: []string{"Current", "Longest Win", "Longest Loss"},
		Rows: [][]string{{
			p.Streaks.Current.Label(),
			fmt.Sprintf("%d", p.Streaks.LongestWin),
			fmt.Sprintf("%d", p.Streaks.LongestLoss),
		}},
	})

	if len(p.Recent) > 0 {
		doc.H2(fmt.Sprintf("Last %d Sessions", len(p.Recent)))
		rows := make([][]string, 0, len(p.Recent))
		for _, r := range p.Recent {
			rows = append(rows, []string{r.Date.String(), r.Net.SignedString(), r.Group})
		}
		doc.Table(md.TableSet{
			Header: []string{"Date", "Net", "Group"},
			Rows:   rows,
		})
	}

	return doc.String()
}
