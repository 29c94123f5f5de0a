// Package decoder projects annealer samples into a ranked, deduplicated
// list of schedules, each with an independently recomputed energy
// breakdown.
package decoder

import (
	"math"
	"sort"
	"strings"

	"timetable-optimizer/internal/bqm"
	"timetable-optimizer/internal/catalog"
	"timetable-optimizer/internal/interval"
	"timetable-optimizer/internal/preferences"
	"timetable-optimizer/internal/sampler"
	"timetable-optimizer/internal/timeparse"
)

const maxSchedules = 5

const (
	earlyClassCutoff = 9*60 + 30
	lunchStart       = 720
	lunchEnd         = 780
)

var weekdays = []string{"월", "화", "수", "목", "금", "토", "일"}

// Breakdown is the decoder's independent re-scoring of a schedule, named
// per §4.6. It agrees with the BQM energy up to a constant offset carrying
// no selection information (see §9 design notes), with one exception: the
// free-day term charges the break penalty once per free day that has any
// selected class, while the model charges it once per selected lecture on
// that day, so the two differ when a free day carries two or more.
type Breakdown struct {
	CreditPenalty             float64 `json:"credit_penalty"`
	MandatoryReward           float64 `json:"mandatory_reward"`
	FirstPeriodPenalty        float64 `json:"1st_period_penalty"`
	LunchOverlapPenalty       float64 `json:"lunch_overlap_penalty"`
	TimeCreditMismatchPenalty float64 `json:"time_credit_mismatch_penalty"`
	FreeDayReward             float64 `json:"free_day_reward"`
	OverlapPenalty            float64 `json:"overlap_penalty"`
	ContiguousReward          float64 `json:"contiguous_reward"`
	TensionPenalty            float64 `json:"tension_penalty"`
}

// Sum totals every breakdown term; compared against sample.Energy it
// differs only by a constant depending on preferences (§8.7, §9), except in
// the free-day case described on Breakdown.
func (b Breakdown) Sum() float64 {
	return b.CreditPenalty + b.MandatoryReward + b.FirstPeriodPenalty + b.LunchOverlapPenalty +
		b.TimeCreditMismatchPenalty + b.FreeDayReward + b.OverlapPenalty + b.ContiguousReward + b.TensionPenalty
}

// Schedule is a decoded, scored sample: a subset of lectures plus the
// values of the free-day auxiliaries, an energy, and the breakdown.
type Schedule struct {
	Lectures     []catalog.Lecture
	FreeDays     []string
	Energy       float64
	TotalCredits float64
	Breakdown    Breakdown
}

// Decode iterates samples in energy-ascending order, deduplicating by the
// set of selected lecture ids and stopping once maxSchedules unique
// schedules have been collected or the stream is exhausted.
func Decode(samples sampler.SampleSet, lectures []catalog.Lecture, prefs preferences.Preferences) []Schedule {
	byID := make(map[string]catalog.Lecture, len(lectures))
	for _, lec := range lectures {
		byID[lec.ID] = lec
	}

	seen := map[string]bool{}
	var out []Schedule

	for _, s := range samples {
		if len(out) >= maxSchedules {
			break
		}

		var selected []catalog.Lecture
		var ids []string
		for _, lec := range lectures {
			if s.Assignment[bqm.Var(lec.ID)] == 1 {
				selected = append(selected, lec)
				ids = append(ids, lec.ID)
			}
		}
		if len(selected) == 0 {
			continue
		}

		sort.Strings(ids)
		signature := strings.Join(ids, "\x00")
		if seen[signature] {
			continue
		}
		seen[signature] = true

		var freeDays []string
		for _, day := range weekdays {
			if s.Assignment[bqm.FreeDayVar(day)] == 1 {
				freeDays = append(freeDays, day)
			}
		}

		breakdown := score(selected, freeDays, prefs)
		totalCredits := 0.0
		for _, lec := range selected {
			totalCredits += lec.Credit
		}

		out = append(out, Schedule{
			Lectures:     selected,
			FreeDays:     freeDays,
			Energy:       s.Energy,
			TotalCredits: totalCredits,
			Breakdown:    breakdown,
		})
	}

	return out
}

// score computes the independent breakdown per §4.6.
func score(selected []catalog.Lecture, freeDays []string, prefs preferences.Preferences) Breakdown {
	w := prefs.Weights
	var b Breakdown

	totalCredits := 0.0
	for _, lec := range selected {
		totalCredits += lec.Credit
	}
	b.CreditPenalty = w.TargetCredit * (totalCredits - prefs.TargetCredits) * (totalCredits - prefs.TargetCredits)

	for _, lec := range selected {
		if prefs.MandatoryIDs[lec.ID] {
			b.MandatoryReward += w.Mandatory
		}
		for _, iv := range lec.ParsedTime {
			if iv.Start <= earlyClassCutoff {
				b.FirstPeriodPenalty += w.FirstClass
			}
			if max(iv.Start, lunchStart) < min(iv.End, lunchEnd) {
				b.LunchOverlapPenalty += w.LunchOverlap
			}
		}
		h := float64(timeparse.TotalMinutes(lec.ParsedTime)) / 60
		if h > lec.Credit {
			b.TimeCreditMismatchPenalty += w.TimeCreditRatio * (h - lec.Credit)
		}
	}

	selectedByDay := make(map[string][]catalog.Lecture)
	for _, lec := range selected {
		seenDay := map[string]bool{}
		for _, iv := range lec.ParsedTime {
			if seenDay[iv.Day] {
				continue
			}
			seenDay[iv.Day] = true
			selectedByDay[iv.Day] = append(selectedByDay[iv.Day], lec)
		}
	}

	freeSet := make(map[string]bool, len(freeDays))
	for _, d := range freeDays {
		freeSet[d] = true
	}
	for _, d := range freeDays {
		b.FreeDayReward -= w.FreeDayReward
		if len(selectedByDay[d]) > 0 {
			b.FreeDayReward += w.FreeDayBreak
		}
	}

	for _, day := range weekdays {
		dayLecs := selectedByDay[day]
		for i := 0; i < len(dayLecs); i++ {
			for j := i + 1; j < len(dayLecs); j++ {
				li, lj := dayLecs[i], dayLecs[j]
				if li.ID == lj.ID {
					continue
				}
				ivi := onDay(li.ParsedTime, day)
				ivj := onDay(lj.ParsedTime, day)

				if interval.Overlap(ivi, ivj) {
					b.OverlapPenalty += w.HardOverlap
					continue
				}

				g := interval.Gap(ivi, ivj)
				switch {
				case g > 0 && g <= 60:
					b.ContiguousReward += w.ContiguousReward
				case g > 60 && g <= 180:
					b.TensionPenalty += w.TensionBase * math.Sqrt(float64(g))
				}
			}
		}
	}

	return b
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
