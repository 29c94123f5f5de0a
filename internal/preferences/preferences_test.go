package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, 21.0, p.TargetCredits)
	assert.Equal(t, 300, p.MaxCandidates)
	assert.Equal(t, 100, p.TotalReads)
	assert.Equal(t, 100, p.BatchSize)
	assert.Empty(t, p.MandatoryIDs)
	assert.Equal(t, DefaultWeights(), p.Weights)
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 10000.0, w.HardOverlap)
	assert.Equal(t, 100.0, w.TargetCredit)
	assert.Equal(t, -10000.0, w.Mandatory)
	assert.Equal(t, 50.0, w.FirstClass)
	assert.Equal(t, 30.0, w.LunchOverlap)
	assert.Equal(t, 100.0, w.FreeDayReward)
	assert.Equal(t, 500.0, w.FreeDayBreak)
	assert.Equal(t, -20.0, w.ContiguousReward)
	assert.Equal(t, 5.0, w.TensionBase)
	assert.Equal(t, 50.0, w.TimeCreditRatio)
}

func TestWithMandatory(t *testing.T) {
	p := Default().WithMandatory([]string{"A-1", "B-2"})
	assert.True(t, p.MandatoryIDs["A-1"])
	assert.True(t, p.MandatoryIDs["B-2"])
	assert.False(t, p.MandatoryIDs["C-3"])
}
