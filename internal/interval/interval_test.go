package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"timetable-optimizer/internal/timeparse"
)

func mon(s, e int) timeparse.Interval { return timeparse.Interval{Day: "월", Start: s, End: e} }
func tue(s, e int) timeparse.Interval { return timeparse.Interval{Day: "화", Start: s, End: e} }

func TestOverlap_DifferentDays(t *testing.T) {
	a := []timeparse.Interval{mon(600, 720)}
	b := []timeparse.Interval{tue(600, 720)}
	assert.False(t, Overlap(a, b))
}

func TestOverlap_SameDayCrossing(t *testing.T) {
	a := []timeparse.Interval{mon(600, 720)}
	b := []timeparse.Interval{mon(700, 800)}
	assert.True(t, Overlap(a, b))
}

func TestOverlap_TouchingBoundaryIsNotOverlap(t *testing.T) {
	a := []timeparse.Interval{mon(600, 700)}
	b := []timeparse.Interval{mon(700, 800)}
	assert.False(t, Overlap(a, b))
}

func TestOverlap_Symmetry(t *testing.T) {
	a := []timeparse.Interval{mon(600, 720), tue(800, 900)}
	b := []timeparse.Interval{mon(700, 750)}
	assert.Equal(t, Overlap(a, b), Overlap(b, a))
}

func TestOverlap_SelfOverlapIffNonEmpty(t *testing.T) {
	a := []timeparse.Interval{mon(600, 720)}
	assert.Equal(t, len(a) != 0, Overlap(a, a))
	assert.False(t, Overlap(nil, nil))
}

func TestGap_NoSharedDay(t *testing.T) {
	a := []timeparse.Interval{mon(600, 720)}
	b := []timeparse.Interval{tue(600, 720)}
	assert.Equal(t, 0, Gap(a, b))
}

func TestGap_NonOverlappingSameDay(t *testing.T) {
	a := []timeparse.Interval{mon(600, 660)}
	b := []timeparse.Interval{mon(720, 780)}
	assert.Equal(t, 60, Gap(a, b))
}

func TestGap_AllSameDayPairsOverlap(t *testing.T) {
	a := []timeparse.Interval{mon(600, 720)}
	b := []timeparse.Interval{mon(650, 700)}
	assert.Equal(t, 0, Gap(a, b))
}

func TestGap_SymmetryAndNonNegativity(t *testing.T) {
	a := []timeparse.Interval{mon(600, 660), tue(500, 540)}
	b := []timeparse.Interval{mon(720, 780)}
	g1, g2 := Gap(a, b), Gap(b, a)
	assert.Equal(t, g1, g2)
	assert.GreaterOrEqual(t, g1, 0)
}

func TestGap_TakesMinimumAcrossPairs(t *testing.T) {
	a := []timeparse.Interval{mon(0, 60), mon(500, 540)}
	b := []timeparse.Interval{mon(600, 700)}
	// pair1 gap = 600-60 = 540, pair2 gap = 600-540 = 60
	assert.Equal(t, 60, Gap(a, b))
}
