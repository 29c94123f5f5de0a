package bqm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timetable-optimizer/internal/catalog"
	"timetable-optimizer/internal/preferences"
	"timetable-optimizer/internal/timeparse"
)

func lecture(id string, credit float64, sched string) catalog.Lecture {
	return catalog.Lecture{ID: id, Credit: credit, ParsedTime: timeparse.Parse(sched)}
}

func TestCompile_Deterministic(t *testing.T) {
	lectures := []catalog.Lecture{
		lecture("A-1", 3, "월 09:00-10:30"),
		lecture("B-1", 3, "월 10:30-12:00"),
	}
	prefs := preferences.Default()

	b1 := Compile(lectures, prefs, nil)
	b2 := Compile(lectures, prefs, nil)

	assert.Equal(t, b1.Linear, b2.Linear)
	assert.Equal(t, b1.Quadratic, b2.Quadratic)
}

func TestCompile_MandatoryAddsNegativeBias(t *testing.T) {
	lectures := []catalog.Lecture{lecture("A-1", 3, "월 09:00-10:30")}
	prefs := preferences.Default().WithMandatory([]string{"A-1"})

	b := Compile(lectures, prefs, nil)
	assert.Contains(t, b.Linear, Var("A-1"))
	// Linear bias includes w_mandatory (-10000) plus the target-credit diagonal.
	assert.Less(t, b.Linear[Var("A-1")], -9000.0)
}

func TestCompile_OverlapAddsHardPenalty(t *testing.T) {
	lectures := []catalog.Lecture{
		lecture("A-1", 3, "월 10:00-11:30"),
		lecture("B-1", 3, "월 10:30-12:00"),
	}
	prefs := preferences.Default()

	b := Compile(lectures, prefs, nil)
	assert.Equal(t, prefs.Weights.HardOverlap, b.QuadraticBias(Var("A-1"), Var("B-1"))-
		prefs.Weights.TargetCredit*2*3*3)
}

func TestCompile_ContiguousVsTensionEnergy(t *testing.T) {
	contiguous := []catalog.Lecture{
		lecture("A-1", 3, "월 09:00-10:00"),
		lecture("A-2", 3, "월 10:30-11:30"), // 30 min gap
	}
	tense := []catalog.Lecture{
		lecture("B-1", 3, "월 09:00-10:00"),
		lecture("B-2", 3, "월 12:30-13:30"), // 150 min gap
	}
	prefs := preferences.Default()
	prefs.Weights.Mandatory = 0

	bc := Compile(contiguous, prefs, nil)
	bt := Compile(tense, prefs, nil)

	assignAll := func(lecs []catalog.Lecture) map[Var]int {
		a := map[Var]int{}
		for _, lec := range lecs {
			a[Var(lec.ID)] = 1
		}
		return a
	}

	assert.Less(t, bc.Energy(assignAll(contiguous)), bt.Energy(assignAll(tense)))
}

func TestCompile_FreeDayOnlyForTouchedDays(t *testing.T) {
	lectures := []catalog.Lecture{lecture("A-1", 3, "월 09:00-10:30")}
	b := Compile(lectures, preferences.Default(), nil)

	assert.Contains(t, b.Linear, FreeDayVar("월"))
	assert.NotContains(t, b.Linear, FreeDayVar("화"))
}

func TestCompile_NoSelfPairOnSameDayRepeatedLecture(t *testing.T) {
	lectures := []catalog.Lecture{
		lecture("A-1", 3, "월 09:00-10:00 월 11:00-12:00"),
	}
	b := Compile(lectures, preferences.Default(), nil)
	assert.NotContains(t, b.Quadratic, pair{Var("A-1"), Var("A-1")})
}

func TestCompile_ProgressReportsMilestones(t *testing.T) {
	lectures := []catalog.Lecture{lecture("A-1", 3, "월 09:00-10:30")}
	var milestones []string
	Compile(lectures, preferences.Default(), func(m string, _ int) {
		milestones = append(milestones, m)
	})

	assert.Contains(t, milestones, "Analyzing lectures and linear biases...")
	assert.Contains(t, milestones, "Calculating credit interaction terms...")
	assert.Contains(t, milestones, "Checking time overlaps and tension models...")
	assert.Contains(t, milestones, "Finalizing BQM...")
}
