package standings

import (
	"iter"
	"maps"
	"slices"
	"sort"
)

// SessionRecord is one validated ledger entry: a player's net result for
// one session. Immutable once produced by the normalizer.
type SessionRecord struct {
	Player    string `json:"player"`
	Date      Date   `json:"date"`
	Net       Money  `json:"net"`
	Group     string `json:"group,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// Dataset is an ordered collection of session records.
//
// In a Dataset records are always in chronological order. A Dataset is
// rebuilt wholesale on every normalization pass and never mutated in
// place, so it is safe to share across report computations.
type Dataset struct {
	records []SessionRecord
}

// NewDataset creates a dataset from records, sorting them chronologically.
// The sort is stable: records on the same day keep their ledger order.
func NewDataset(records ...SessionRecord) *Dataset {
	d := &Dataset{records: records}
	d.stableSort()
	return d
}

func (d *Dataset) stableSort() {
	sort.SliceStable(d.records, func(i, j int) bool {
		return d.records[i].Date.Before(d.records[j].Date)
	})
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// IsEmpty returns true when the dataset holds no records. An empty dataset
// is a first-class, expected state (empty source, unknown schema, or a
// filter that matches nothing).
func (d *Dataset) IsEmpty() bool { return d == nil || len(d.records) == 0 }

// Sessions returns an iterator over records in chronological order. With
// predicates, a record must satisfy all of them; with none, every record
// is yielded.
func (d *Dataset) Sessions(predicates ...func(SessionRecord) bool) iter.Seq2[int, SessionRecord] {
	return func(yield func(int, SessionRecord) bool) {
		for i, rec := range d.records {
			accept := true
			for _, p := range predicates {
				if !p(rec) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, rec) {
				return
			}
		}
	}
}

// PlayerSessions returns an iterator over one player's records in
// chronological order.
func (d *Dataset) PlayerSessions(player string) iter.Seq2[int, SessionRecord] {
	return d.Sessions(ByPlayer(player))
}

// Players iterates over the distinct player names, sorted.
func (d *Dataset) Players() iter.Seq[string] {
	return d.distinct(func(r SessionRecord) string { return r.Player })
}

// Groups iterates over the distinct non-empty group names, sorted.
func (d *Dataset) Groups() iter.Seq[string] {
	return d.distinct(func(r SessionRecord) string { return r.Group })
}

func (d *Dataset) distinct(key func(SessionRecord) string) iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, rec := range d.records {
			if k := key(rec); k != "" {
				visited[k] = struct{}{}
			}
		}
		keys := slices.Collect(maps.Keys(visited))
		slices.Sort(keys)
		for _, k := range keys {
			if !yield(k) {
				return
			}
		}
	}
}

// OldestSessionDate returns the date of the earliest record, zero when the
// dataset is empty.
func (d *Dataset) OldestSessionDate() Date {
	if len(d.records) == 0 {
		return Date{}
	}
	return d.records[0].Date
}

// NewestSessionDate returns the date of the latest record, zero when the
// dataset is empty.
func (d *Dataset) NewestSessionDate() Date {
	if len(d.records) == 0 {
		return Date{}
	}
	return d.records[len(d.records)-1].Date
}

// Select returns a new dataset containing exactly the records matching the
// filter. The receiver is left untouched, and selecting twice with the
// same filter returns the same records as selecting once.
func (d *Dataset) Select(f Filter) *Dataset {
	var kept []SessionRecord
	for _, rec := range d.records {
		if f.Matches(rec) {
			kept = append(kept, rec)
		}
	}
	// Records are appended in chronological order, no re-sort needed.
	return &Dataset{records: kept}
}

// ByPlayer returns a predicate that keeps one player's records.
func ByPlayer(player string) func(SessionRecord) bool {
	return func(r SessionRecord) bool { return r.Player == player }
}

// ByRange returns a predicate that keeps records within the date range.
func ByRange(r Range) func(SessionRecord) bool {
	return func(rec SessionRecord) bool { return r.Contains(rec.Date) }
}
