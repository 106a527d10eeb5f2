package standings

import "sort"

// StandingRow aggregates one player's performance over a filtered dataset.
type StandingRow struct {
	Player   string
	Sessions int
	TotalNet Money
	AvgNet   Money
	WinRate  Percent
	BestNet  Money // best single-session net
	WorstNet Money // worst single-session net
}

// GroupKPI holds the group-wide figures displayed on top of the standings.
//
// TotalNet should be close to zero for a closed-table game, but that is
// not enforced: discrepancies are exactly what the dashboard exists to
// surface.
type GroupKPI struct {
	TotalSessions   int
	TotalNet        Money
	TopWinner       string // empty when there are no rows
	TopWinnerNet    Money
	BiggestLoser    string // empty when there are no rows
	BiggestLoserNet Money
}

// Standings is the group-wide report: one row per player plus KPIs.
type Standings struct {
	Range Range
	Rows  []StandingRow
	KPI   GroupKPI
}

// NewStandings computes the standings over a filtered dataset.
//
// Rows are aggregated in first-encountered chronological order, then
// stably sorted by total net descending; two players with the same total
// keep their first-encountered relative order. The KPI top winner and
// biggest loser use the same order as the tie-break: the first player to
// reach the extreme total wins the title. This makes every outcome
// deterministic for identical input.
//
// Players with zero qualifying sessions do not appear, and an empty
// dataset yields empty rows and zero KPIs, never an error.
func NewStandings(d *Dataset) *Standings {
	s := &Standings{}
	if d.IsEmpty() {
		return s
	}
	s.Range = NewRange(d.OldestSessionDate(), d.NewestSessionDate())

	type agg struct {
		row  StandingRow
		wins int
	}
	index := make(map[string]*agg)
	var order []string

	for _, rec := range d.Sessions() {
		a, ok := index[rec.Player]
		if !ok {
			a = &agg{row: StandingRow{
				Player:   rec.Player,
				BestNet:  rec.Net,
				WorstNet: rec.Net,
			}}
			index[rec.Player] = a
			order = append(order, rec.Player)
		}
		a.row.Sessions++
		a.row.TotalNet = a.row.TotalNet.Add(rec.Net)
		if rec.Net.IsPositive() {
			a.wins++
		}
		if rec.Net.GreaterThan(a.row.BestNet) {
			a.row.BestNet = rec.Net
		}
		if rec.Net.LessThan(a.row.WorstNet) {
			a.row.WorstNet = rec.Net
		}
		s.KPI.TotalSessions++
		s.KPI.TotalNet = s.KPI.TotalNet.Add(rec.Net)
	}

	for _, player := range order {
		a := index[player]
		a.row.AvgNet = a.row.TotalNet.DivInt(a.row.Sessions)
		a.row.WinRate = Percent(float64(a.wins) / float64(a.row.Sessions))
		s.Rows = append(s.Rows, a.row)
	}

	// Extremes before sorting: a strict comparison over first-encountered
	// order is the documented tie-break.
	s.KPI.TopWinner, s.KPI.TopWinnerNet = s.Rows[0].Player, s.Rows[0].TotalNet
	s.KPI.BiggestLoser, s.KPI.BiggestLoserNet = s.Rows[0].Player, s.Rows[0].TotalNet
	for _, row := range s.Rows[1:] {
		if row.TotalNet.GreaterThan(s.KPI.TopWinnerNet) {
			s.KPI.TopWinner, s.KPI.TopWinnerNet = row.Player, row.TotalNet
		}
		if row.TotalNet.LessThan(s.KPI.BiggestLoserNet) {
			s.KPI.BiggestLoser, s.KPI.BiggestLoserNet = row.Player, row.TotalNet
		}
	}

	sort.SliceStable(s.Rows, func(i, j int) bool {
		return s.Rows[i].TotalNet.GreaterThan(s.Rows[j].TotalNet)
	})
	return s
}
