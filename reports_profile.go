package standings

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultRecentLimit bounds the "recent sessions" suffix of a profile.
const DefaultRecentLimit = 10

// StreakKind classifies one session for streak purposes.
type StreakKind int

const (
	// Neutral is a session with net == 0 exactly. It neither extends nor
	// breaks a win/loss count; it hard-resets the current streak.
	Neutral StreakKind = iota
	Win                // net > 0
	Loss               // net < 0
)

func (k StreakKind) String() string {
	switch k {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "neutral"
	}
}

// classify maps a session net to its streak kind.
func classify(net Money) StreakKind {
	switch {
	case net.IsPositive():
		return Win
	case net.IsNegative():
		return Loss
	default:
		return Neutral
	}
}

// Streak is a run of consecutive same-kind sessions.
type Streak struct {
	Kind   StreakKind
	Length int
}

// Label returns the human form of a streak, e.g. "3 wins", "1 loss",
// "neutral".
func (s Streak) Label() string {
	if s.Kind == Neutral || s.Length == 0 {
		return "neutral"
	}
	label := fmt.Sprintf("%d %s", s.Length, s.Kind)
	if s.Length > 1 {
		if s.Kind == Win {
			label += "s"
		} else {
			label += "es"
		}
	}
	return label
}

// StreakState is a player's streak summary: the streak they are currently
// on and the longest runs ever reached on either side.
type StreakState struct {
	Current     Streak
	LongestWin  int
	LongestLoss int
}

// observe folds one session into the state. Sessions must be fed in
// ascending chronological order.
func (s *StreakState) observe(kind StreakKind) {
	switch {
	case kind == Neutral:
		s.Current = Streak{Kind: Neutral}
	case kind == s.Current.Kind:
		s.Current.Length++
	default:
		s.Current = Streak{Kind: kind, Length: 1}
	}
	if s.Current.Kind == Win && s.Current.Length > s.LongestWin {
		s.LongestWin = s.Current.Length
	}
	if s.Current.Kind == Loss && s.Current.Length > s.LongestLoss {
		s.LongestLoss = s.Current.Length
	}
}

// PlayerProfile is the derived, read-only view of one player's history
// over a filtered dataset.
type PlayerProfile struct {
	Player      string
	GamesPlayed int
	WinRate     Percent
	AvgNet      Money
	MedianNet   Money
	BestNet     Money
	WorstNet    Money
	Recent      []SessionRecord // bounded suffix by date, most-recent-first
	Streaks     StreakState
}

// NewPlayerProfile computes the profile of one player over a filtered
// dataset. recentLimit bounds the Recent slice; zero or negative falls
// back to DefaultRecentLimit.
//
// A player absent from the dataset (which the UI can legitimately reach
// through filtering) yields a zero profile with a neutral streak: all
// rates and averages are zero, never a division error.
func NewPlayerProfile(d *Dataset, player string, recentLimit int) *PlayerProfile {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	p := &PlayerProfile{Player: player}

	var wins int
	var total Money
	var nets []decimal.Decimal
	var sessions []SessionRecord

	// Single chronological pass: aggregates and the streak fold together.
	for _, rec := range d.PlayerSessions(player) {
		if p.GamesPlayed == 0 {
			p.BestNet, p.WorstNet = rec.Net, rec.Net
		}
		p.GamesPlayed++
		total = total.Add(rec.Net)
		nets = append(nets, rec.Net.Decimal())
		sessions = append(sessions, rec)
		if rec.Net.IsPositive() {
			wins++
		}
		if rec.Net.GreaterThan(p.BestNet) {
			p.BestNet = rec.Net
		}
		if rec.Net.LessThan(p.WorstNet) {
			p.WorstNet = rec.Net
		}
		p.Streaks.observe(classify(rec.Net))
	}

	if p.GamesPlayed == 0 {
		return p
	}

	currency := sessions[0].Net.Currency()
	p.WinRate = Percent(float64(wins) / float64(p.GamesPlayed))
	p.AvgNet = total.DivInt(p.GamesPlayed)
	p.MedianNet = M(median(nets), currency)

	// Chronologically last N, most-recent-first for display.
	start := len(sessions) - recentLimit
	if start < 0 {
		start = 0
	}
	for i := len(sessions) - 1; i >= start; i-- {
		p.Recent = append(p.Recent, sessions[i])
	}
	return p
}

// median returns the median of the values. The input slice is reordered.
func median(values []decimal.Decimal) decimal.Decimal {
	sort.Slice(values, func(i, j int) bool { return values[i].LessThan(values[j]) })
	n := len(values)
	if n%2 == 1 {
		return values[n/2]
	}
	two := decimal.NewFromInt(2)
	return values[n/2-1].Add(values[n/2]).Div(two)
}
