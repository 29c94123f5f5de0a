package bqm

import (
	"math"

	"timetable-optimizer/internal/catalog"
	"timetable-optimizer/internal/interval"
	"timetable-optimizer/internal/preferences"
	"timetable-optimizer/internal/timeparse"
)

// weekdays lists every recognized day in a fixed iteration order so that
// Compile is deterministic across runs given identical inputs.
var weekdays = []string{"월", "화", "수", "목", "금", "토", "일"}

const (
	earlyClassCutoff = 9*60 + 30 // 09:30
	lunchStart       = 720       // 12:00
	lunchEnd         = 780       // 13:00
)

// ProgressFunc receives a named milestone and an advisory percent-complete.
type ProgressFunc func(milestone string, percent int)

func noopProgress(string, int) {}

// Compile translates the candidate pool and weight vector into a BQM per
// spec §4.4. Compile is deterministic: identical lectures and preferences
// always produce an identical (L, Q).
func Compile(lectures []catalog.Lecture, prefs preferences.Preferences, progress ProgressFunc) *BQM {
	if progress == nil {
		progress = noopProgress
	}

	b := New()
	w := prefs.Weights

	progress("Analyzing lectures and linear biases...", 0)
	for _, lec := range lectures {
		v := Var(lec.ID)
		c := lec.Credit

		b.AddLinear(v, w.TargetCredit*(c*c-2*prefs.TargetCredits*c))

		if prefs.MandatoryIDs[lec.ID] {
			b.AddLinear(v, w.Mandatory)
		}

		for _, iv := range lec.ParsedTime {
			if iv.Start <= earlyClassCutoff {
				b.AddLinear(v, w.FirstClass)
			}
			if max(iv.Start, lunchStart) < min(iv.End, lunchEnd) {
				b.AddLinear(v, w.LunchOverlap)
			}
		}

		h := float64(timeparse.TotalMinutes(lec.ParsedTime)) / 60
		if h > c {
			b.AddLinear(v, w.TimeCreditRatio*(h-c))
		}
	}

	dayLectures := groupByDay(lectures)
	for _, day := range weekdays {
		if len(dayLectures[day]) == 0 {
			continue
		}
		b.AddLinear(FreeDayVar(day), -w.FreeDayReward)
	}

	progress("Calculating credit interaction terms...", 25)
	for i := 0; i < len(lectures); i++ {
		for j := i + 1; j < len(lectures); j++ {
			a, bb := lectures[i], lectures[j]
			b.AddQuadratic(Var(a.ID), Var(bb.ID), w.TargetCredit*2*a.Credit*bb.Credit)
		}
	}

	progress("Checking time overlaps and tension models...", 50)
	for dayIdx, day := range weekdays {
		dayLecs := dayLectures[day]
		if len(dayLecs) == 0 {
			continue
		}
		progress(progressDayLabel(day), 50+dayIdx*5)

		for i := 0; i < len(dayLecs); i++ {
			for j := i + 1; j < len(dayLecs); j++ {
				li, lj := dayLecs[i], dayLecs[j]
				if li.ID == lj.ID {
					continue // same-lecture self-pair guard
				}

				ivi := onDay(li.ParsedTime, day)
				ivj := onDay(lj.ParsedTime, day)

				if interval.Overlap(ivi, ivj) {
					b.AddQuadratic(Var(li.ID), Var(lj.ID), w.HardOverlap)
					continue
				}

				g := interval.Gap(ivi, ivj)
				switch {
				case g > 0 && g <= 60:
					b.AddQuadratic(Var(li.ID), Var(lj.ID), w.ContiguousReward)
				case g > 60 && g <= 180:
					b.AddQuadratic(Var(li.ID), Var(lj.ID), w.TensionBase*math.Sqrt(float64(g)))
				}
			}
		}

		yd := FreeDayVar(day)
		for _, lec := range dayLecs {
			b.AddQuadratic(Var(lec.ID), yd, w.FreeDayBreak)
		}
	}

	progress("Finalizing BQM...", 100)
	return b
}

func progressDayLabel(day string) string {
	return "Analyzing day " + day + " (pairwise interactions)"
}

func groupByDay(lectures []catalog.Lecture) map[string][]catalog.Lecture {
	out := make(map[string][]catalog.Lecture)
	for _, lec := range lectures {
		seen := map[string]bool{}
		for _, iv := range lec.ParsedTime {
			if seen[iv.Day] {
				continue
			}
			seen[iv.Day] = true
			out[iv.Day] = append(out[iv.Day], lec)
		}
	}
	return out
}

func onDay(intervals []timeparse.Interval, day string) []timeparse.Interval {
	var out []timeparse.Interval
	for _, iv := range intervals {
		if iv.Day == day {
			out = append(out, iv)
		}
	}
	return out
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
