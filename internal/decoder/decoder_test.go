package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable-optimizer/internal/bqm"
	"timetable-optimizer/internal/catalog"
	"timetable-optimizer/internal/preferences"
	"timetable-optimizer/internal/sampler"
	"timetable-optimizer/internal/timeparse"
)

func lecture(id string, credit float64, sched string) catalog.Lecture {
	return catalog.Lecture{ID: id, Credit: credit, ParsedTime: timeparse.Parse(sched)}
}

func TestDecode_DedupesBySignature(t *testing.T) {
	lectures := []catalog.Lecture{lecture("A-1", 3, "월 09:00-10:30")}
	samples := sampler.SampleSet{
		{Assignment: map[bqm.Var]int{"A-1": 1}, Energy: -100},
		{Assignment: map[bqm.Var]int{"A-1": 1}, Energy: -90}, // same signature, skipped
	}

	schedules := Decode(samples, lectures, preferences.Default())
	assert.Len(t, schedules, 1)
	assert.Equal(t, -100.0, schedules[0].Energy)
}

func TestDecode_SkipsEmptySelection(t *testing.T) {
	lectures := []catalog.Lecture{lecture("A-1", 3, "월 09:00-10:30")}
	samples := sampler.SampleSet{{Assignment: map[bqm.Var]int{"A-1": 0}, Energy: 0}}

	schedules := Decode(samples, lectures, preferences.Default())
	assert.Empty(t, schedules)
}

func TestDecode_StopsAtFive(t *testing.T) {
	lectures := []catalog.Lecture{
		lecture("A-1", 3, "월 09:00-10:30"),
		lecture("B-1", 3, "화 09:00-10:30"),
		lecture("C-1", 3, "수 09:00-10:30"),
	}
	var samples sampler.SampleSet
	// 8 distinct subsets possible from 3 lectures (minus the empty one = 7).
	for mask := 1; mask < 8; mask++ {
		a := map[bqm.Var]int{}
		for i, lec := range lectures {
			if mask&(1<<i) != 0 {
				a[bqm.Var(lec.ID)] = 1
			} else {
				a[bqm.Var(lec.ID)] = 0
			}
		}
		samples = append(samples, sampler.Sample{Assignment: a, Energy: float64(mask)})
	}

	schedules := Decode(samples, lectures, preferences.Default())
	assert.Len(t, schedules, 5)
}

func TestDecode_RankingAscendingAndDistinctSignatures(t *testing.T) {
	lectures := []catalog.Lecture{
		lecture("A-1", 3, "월 09:00-10:30"),
		lecture("B-1", 3, "화 09:00-10:30"),
	}
	samples := sampler.SampleSet{
		{Assignment: map[bqm.Var]int{"A-1": 1, "B-1": 0}, Energy: -50},
		{Assignment: map[bqm.Var]int{"A-1": 0, "B-1": 1}, Energy: -10},
		{Assignment: map[bqm.Var]int{"A-1": 1, "B-1": 1}, Energy: 20},
	}

	schedules := Decode(samples, lectures, preferences.Default())
	require.Len(t, schedules, 3)
	for i := 1; i < len(schedules); i++ {
		assert.LessOrEqual(t, schedules[i-1].Energy, schedules[i].Energy)
	}
}

func TestScorerCompilerAgreement(t *testing.T) {
	lectures := []catalog.Lecture{
		lecture("A-1", 3, "월 09:00-10:30"),
		lecture("B-1", 3, "화 13:00-14:30"),
		lecture("C-1", 4, "수 10:00-12:00"),
	}
	prefs := preferences.Default()
	model := bqm.Compile(lectures, prefs, nil)

	assignments := []map[bqm.Var]int{
		{"A-1": 1, "B-1": 0, "C-1": 0},
		{"A-1": 1, "B-1": 1, "C-1": 0},
		{"A-1": 0, "B-1": 1, "C-1": 1},
		{"A-1": 1, "B-1": 1, "C-1": 1},
	}

	var offsets []float64
	for _, a := range assignments {
		energy := model.Energy(a)
		var selected []catalog.Lecture
		for _, lec := range lectures {
			if a[bqm.Var(lec.ID)] == 1 {
				selected = append(selected, lec)
			}
		}
		b := score(selected, nil, prefs)
		offsets = append(offsets, energy-b.Sum())
	}

	for i := 1; i < len(offsets); i++ {
		assert.InDelta(t, offsets[0], offsets[i], 1e-6)
	}
}
