// Package interval implements the overlap and gap predicates shared by the
// BQM compiler and the decoder's oracle scorer.
package interval

import "timetable-optimizer/internal/timeparse"

// Overlap reports whether any interval in a shares a day with, and crosses
// in time with, any interval in b. Touching boundaries do not overlap.
func Overlap(a, b []timeparse.Interval) bool {
	for _, x := range a {
		for _, y := range b {
			if x.Day != y.Day {
				continue
			}
			if max(x.Start, y.Start) < min(x.End, y.End) {
				return true
			}
		}
	}
	return false
}

// Gap returns the minimum same-day idle time between a and b, in minutes.
// It returns 0 if no pair shares a day, or if every same-day pair overlaps.
func Gap(a, b []timeparse.Interval) int {
	minGap := -1

	for _, x := range a {
		for _, y := range b {
			if x.Day != y.Day {
				continue
			}

			var g int
			switch {
			case x.End <= y.Start:
				g = y.Start - x.End
			case y.End <= x.Start:
				g = x.Start - y.End
			default:
				continue // overlapping pair contributes no gap
			}

			if minGap == -1 || g < minGap {
				minGap = g
			}
		}
	}

	if minGap == -1 {
		return 0
	}
	return minGap
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
