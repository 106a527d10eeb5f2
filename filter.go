package standings

// Filter is the restriction handed over by the presentation layer: a
// date range plus multi-select dimensions.
//
// Convention, relied upon by every caller: an empty selection on a
// dimension means "no restriction on that dimension"; the UI defaults to
// all players, so the zero Filter matches every record. Dimensions are
// ANDed together; within one dimension any selected value matches (OR).
type Filter struct {
	Range    Range    // inclusive on both ends; open sides unrestricted
	Players  []string // any of these players, empty for all
	Groups   []string // any of these groups, empty for all
	Sessions []string // any of these session ids, empty for all
}

// Matches reports whether a record satisfies every active dimension.
func (f Filter) Matches(r SessionRecord) bool {
	if !f.Range.Contains(r.Date) {
		return false
	}
	if !matchesAny(f.Players, r.Player) {
		return false
	}
	if !matchesAny(f.Groups, r.Group) {
		return false
	}
	return matchesAny(f.Sessions, r.SessionID)
}

// matchesAny implements the per-dimension OR; an empty selection matches
// everything.
func matchesAny(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}
