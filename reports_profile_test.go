package standings

import "testing"

func TestStreakFold(t *testing.T) {
	testCases := []struct {
		name        string
		nets        []float64
		wantLabel   string
		wantLongest [2]int // win, loss
	}{
		{
			name:        "spec walk-through",
			nets:        []float64{10, 5, -3, -1, 2},
			wantLabel:   "1 win",
			wantLongest: [2]int{2, 2},
		},
		{
			name:        "all wins",
			nets:        []float64{1, 2, 3},
			wantLabel:   "3 wins",
			wantLongest: [2]int{3, 0},
		},
		{
			name:        "ends on losses",
			nets:        []float64{5, -1, -2, -3},
			wantLabel:   "3 losses",
			wantLongest: [2]int{1, 3},
		},
		{
			name:        "neutral hard-resets the current streak",
			nets:        []float64{4, 6, 0, 2},
			wantLabel:   "1 win",
			wantLongest: [2]int{2, 0},
		},
		{
			name:        "neutral does not bridge a streak",
			nets:        []float64{4, 0, 6},
			wantLabel:   "1 win",
			wantLongest: [2]int{1, 0},
		},
		{
			name:        "ends neutral",
			nets:        []float64{4, -2, 0},
			wantLabel:   "neutral",
			wantLongest: [2]int{1, 1},
		},
		{
			name:        "no sessions",
			nets:        nil,
			wantLabel:   "neutral",
			wantLongest: [2]int{0, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var state StreakState
			for _, net := range tc.nets {
				state.observe(classify(M(net, "")))
			}
			if got := state.Current.Label(); got != tc.wantLabel {
				t.Errorf("current streak = %q, want %q", got, tc.wantLabel)
			}
			if state.LongestWin != tc.wantLongest[0] {
				t.Errorf("longest win = %d, want %d", state.LongestWin, tc.wantLongest[0])
			}
			if state.LongestLoss != tc.wantLongest[1] {
				t.Errorf("longest loss = %d, want %d", state.LongestLoss, tc.wantLongest[1])
			}
		})
	}
}

func TestNewPlayerProfile(t *testing.T) {
	ds := sessions(
		rec("Alice", "2024-01-05", 10),
		rec("Bob", "2024-01-05", -10),
		rec("Alice", "2024-01-12", 5),
		rec("Alice", "2024-01-19", -3),
		rec("Alice", "2024-01-26", -1),
		rec("Alice", "2024-02-02", 2),
	)

	p := NewPlayerProfile(ds, "Alice", 3)

	if p.GamesPlayed != 5 {
		t.Fatalf("games played = %d, want 5", p.GamesPlayed)
	}
	if p.WinRate != Percent(3.0/5.0) {
		t.Errorf("win rate = %v, want 3/5", p.WinRate)
	}
	if !p.AvgNet.Equal(M(2.6, "")) {
		t.Errorf("avg net = %v, want 2.6", p.AvgNet)
	}
	if !p.MedianNet.Equal(M(2, "")) {
		t.Errorf("median net = %v, want 2", p.MedianNet)
	}
	if !p.BestNet.Equal(M(10, "")) || !p.WorstNet.Equal(M(-3, "")) {
		t.Errorf("best/worst = %v/%v, want 10/-3", p.BestNet, p.WorstNet)
	}

	// Recent: chronologically last 3, most-recent-first.
	if len(p.Recent) != 3 {
		t.Fatalf("recent has %d sessions, want 3", len(p.Recent))
	}
	wantDates := []string{"2024-02-02", "2024-01-26", "2024-01-19"}
	for i, want := range wantDates {
		if got := p.Recent[i].Date.String(); got != want {
			t.Errorf("recent[%d] = %s, want %s", i, got, want)
		}
	}

	// Streaks from the chronological fold: +10 +5 -3 -1 +2.
	if got := p.Streaks.Current.Label(); got != "1 win" {
		t.Errorf("current streak = %q, want %q", got, "1 win")
	}
	if p.Streaks.LongestWin != 2 || p.Streaks.LongestLoss != 2 {
		t.Errorf("longest win/loss = %d/%d, want 2/2", p.Streaks.LongestWin, p.Streaks.LongestLoss)
	}
}

func TestNewPlayerProfileMedianEvenCount(t *testing.T) {
	ds := sessions(
		rec("Alice", "2024-01-05", 10),
		rec("Alice", "2024-01-12", 20),
		rec("Alice", "2024-01-19", 30),
		rec("Alice", "2024-01-26", 40),
	)
	p := NewPlayerProfile(ds, "Alice", 0)
	if !p.MedianNet.Equal(M(25, "")) {
		t.Errorf("median of [10 20 30 40] = %v, want 25", p.MedianNet)
	}
}

func TestNewPlayerProfileAbsentPlayer(t *testing.T) {
	ds := sessions(rec("Alice", "2024-01-05", 10))

	// A player filtered out of the dataset is a well-defined degenerate
	// profile, never a division error.
	p := NewPlayerProfile(ds, "Zoe", 0)

	if p.GamesPlayed != 0 {
		t.Errorf("games played = %d, want 0", p.GamesPlayed)
	}
	if p.WinRate != 0 {
		t.Errorf("win rate = %v, want 0", p.WinRate)
	}
	if !p.AvgNet.IsZero() || !p.MedianNet.IsZero() {
		t.Errorf("avg/median = %v/%v, want zeros", p.AvgNet, p.MedianNet)
	}
	if len(p.Recent) != 0 {
		t.Errorf("recent = %v, want empty", p.Recent)
	}
	if got := p.Streaks.Current.Label(); got != "neutral" {
		t.Errorf("current streak = %q, want neutral", got)
	}
	if p.Streaks.LongestWin != 0 || p.Streaks.LongestLoss != 0 {
		t.Errorf("longest win/loss = %d/%d, want 0/0", p.Streaks.LongestWin, p.Streaks.LongestLoss)
	}
}
