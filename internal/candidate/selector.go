// Package candidate selects the bounded lecture pool fed to the BQM
// compiler: every mandatory lecture plus a random fill up to max_candidates.
package candidate

import (
	"math/rand"

	"timetable-optimizer/internal/catalog"
	"timetable-optimizer/internal/preferences"
)

// ErrNoCandidates is returned when the selected pool would be empty.
type ErrNoCandidates struct{}

func (ErrNoCandidates) Error() string { return "no candidates resolved from catalog" }

// Select partitions the catalog into mandatory and rest, shuffles the rest
// with rng, and returns mandatory followed by a prefix of the shuffled rest
// sized to max(0, max_candidates - len(mandatory)). The mandatory floor
// wins: if mandatory alone exceeds max_candidates, all of it is returned.
func Select(lectures []catalog.Lecture, prefs preferences.Preferences, rng *rand.Rand) ([]catalog.Lecture, error) {
	var mandatory, rest []catalog.Lecture
	for _, lec := range lectures {
		if prefs.MandatoryIDs[lec.ID] {
			mandatory = append(mandatory, lec)
		} else {
			rest = append(rest, lec)
		}
	}

	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	room := prefs.MaxCandidates - len(mandatory)
	if room < 0 {
		room = 0
	}
	if room > len(rest) {
		room = len(rest)
	}

	pool := make([]catalog.Lecture, 0, len(mandatory)+room)
	pool = append(pool, mandatory...)
	pool = append(pool, rest[:room]...)

	if len(pool) == 0 {
		return nil, ErrNoCandidates{}
	}
	return pool, nil
}
