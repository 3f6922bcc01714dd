package lobby

// FilterKind discriminates the three stake filters the lobby view offers.
type FilterKind string

const (
	FilterAll     FilterKind = "all"
	FilterRange   FilterKind = "range"
	FilterMinOnly FilterKind = "min_only"
)

// Filter selects a subset of the canonical list by stake. Exactly one filter
// is active at a time; it is owned by the view layer and only read here.
type Filter struct {
	Kind      FilterKind
	Min       float64 // FilterRange: inclusive lower bound
	Max       float64 // FilterRange: inclusive upper bound
	Threshold float64 // FilterMinOnly: stake >= Threshold
}

// All matches every game.
func All() Filter {
	return Filter{Kind: FilterAll}
}

// Range matches games with min <= stake <= max.
func Range(min, max float64) Filter {
	return Filter{Kind: FilterRange, Min: min, Max: max}
}

// MinOnly matches games with stake >= threshold.
func MinOnly(threshold float64) Filter {
	return Filter{Kind: FilterMinOnly, Threshold: threshold}
}

// Matches reports whether the game passes the filter.
func (f Filter) Matches(g Game) bool {
	switch f.Kind {
	case FilterRange:
		return g.Stake >= f.Min && g.Stake <= f.Max
	case FilterMinOnly:
		return g.Stake >= f.Threshold
	default:
		return true
	}
}

// Project returns the games that pass the filter, preserving canonical
// order. The input slice is never mutated.
func Project(games []Game, f Filter) []Game {
	if f.Kind == FilterAll || f.Kind == "" {
		out := make([]Game, len(games))
		copy(out, games)
		return out
	}

	out := make([]Game, 0, len(games))
	for _, g := range games {
		if f.Matches(g) {
			out = append(out, g)
		}
	}
	return out
}
