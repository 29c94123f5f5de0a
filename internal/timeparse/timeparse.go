// Package timeparse converts the raw schedule strings recorded on a lecture
// into typed time intervals.
package timeparse

import (
	"regexp"
	"strconv"
)

// Interval is a half-open time range within a single weekday, measured in
// minutes from midnight (0 <= Start < End <= 24*60).
type Interval struct {
	Day   string
	Start int
	End   int
}

var weekdays = map[string]bool{
	"월": true, "화": true, "수": true, "목": true, "금": true, "토": true, "일": true,
}

// durationPattern matches "<day> HH:MM(<minutes>)", e.g. "화 16:30(75)".
var durationPattern = regexp.MustCompile(`([월화수목금토일])\s*(\d{2}):(\d{2})\((\d+)\)`)

// rangePattern matches "<day> HH:MM-HH:MM", e.g. "수 13:30-16:30".
var rangePattern = regexp.MustCompile(`([월화수목금토일])\s*(\d{2}):(\d{2})-(\d{2}):(\d{2})`)

// Parse extracts every duration-form and range-form fragment from sched,
// ignoring any surrounding text that does not match. Order follows source
// occurrence within each pattern but carries no semantic meaning.
func Parse(sched string) []Interval {
	if sched == "" {
		return nil
	}

	var intervals []Interval

	for _, m := range durationPattern.FindAllStringSubmatch(sched, -1) {
		day := m[1]
		if !weekdays[day] {
			continue
		}
		hour, _ := strconv.Atoi(m[2])
		minute, _ := strconv.Atoi(m[3])
		dur, _ := strconv.Atoi(m[4])
		start := hour*60 + minute
		intervals = append(intervals, Interval{Day: day, Start: start, End: start + dur})
	}

	for _, m := range rangePattern.FindAllStringSubmatch(sched, -1) {
		day := m[1]
		if !weekdays[day] {
			continue
		}
		startHour, _ := strconv.Atoi(m[2])
		startMinute, _ := strconv.Atoi(m[3])
		endHour, _ := strconv.Atoi(m[4])
		endMinute, _ := strconv.Atoi(m[5])
		intervals = append(intervals, Interval{
			Day:   day,
			Start: startHour*60 + startMinute,
			End:   endHour*60 + endMinute,
		})
	}

	return intervals
}

// TotalMinutes sums the duration of every interval, used by the BQM compiler
// to sanity-check class-hours against credit load.
func TotalMinutes(intervals []Interval) int {
	total := 0
	for _, iv := range intervals {
		total += iv.End - iv.Start
	}
	return total
}
