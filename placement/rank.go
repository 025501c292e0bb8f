package placement

// Better reports whether a strictly beats b: more peaks, then a higher
// observed altitude sum, then a lower placed altitude sum.
// Outcomes equal on all three are not better than each other.
func Better(a, b Outcome) bool {
	if a.Peaks != b.Peaks {
		return a.Peaks > b.Peaks
	}
	if a.AltitudeSum != b.AltitudeSum {
		return a.AltitudeSum > b.AltitudeSum
	}

	return a.PlacedAltitude < b.PlacedAltitude
}

// Best folds outcomes with Better and returns the maximum.
// ok is false when outcomes is empty.
func Best(outcomes []Outcome) (best Outcome, ok bool) {
	for i, o := range outcomes {
		if i == 0 || Better(o, best) {
			best = o
		}
	}

	return best, len(outcomes) > 0
}
