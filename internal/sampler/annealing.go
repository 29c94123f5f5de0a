// Package sampler draws low-energy variable assignments from a BQM via
// classical simulated annealing.
package sampler

import (
	"context"
	"math"
	"math/rand"
	"sort"

	"timetable-optimizer/internal/bqm"
)

// Sample is one total assignment of every BQM variable together with its
// energy under that model.
type Sample struct {
	Assignment map[bqm.Var]int
	Energy     float64
}

// SampleSet is an energy-ascending collection of Samples.
type SampleSet []Sample

// Driver runs simulated annealing in batches of independent reads, summing
// batch results and sorting the whole set by ascending energy.
type Driver struct {
	TotalReads int
	BatchSize  int

	// Sweeps is the number of single-spin Metropolis updates per read.
	// Defaults to 1000 when zero.
	Sweeps int

	// InitialTemp and CoolingRate define the geometric temperature
	// schedule: temperature *= CoolingRate after every sweep, starting
	// from InitialTemp. Defaults of 10.0 and 0.995 are used when zero.
	InitialTemp float64
	CoolingRate float64
}

// ErrCancelled is returned when the task cancellation flag is observed
// between batches.
type ErrCancelled struct{}

func (ErrCancelled) Error() string { return "cancelled" }

// Sample runs enough batches to cover at least TotalReads reads (rounding
// up to a whole number of batches, minimum one), checking cancelled
// between batches. Every read's chain draws from rng in turn, so a task that
// passes its own rng shares no random state with concurrent tasks.
func (d Driver) Sample(ctx context.Context, model *bqm.BQM, rng *rand.Rand, cancelled func() bool) (SampleSet, error) {
	sweeps := d.Sweeps
	if sweeps == 0 {
		sweeps = 1000
	}
	initialTemp := d.InitialTemp
	if initialTemp == 0 {
		initialTemp = 10.0
	}
	coolingRate := d.CoolingRate
	if coolingRate == 0 {
		coolingRate = 0.995
	}

	batchSize := d.BatchSize
	if batchSize <= 0 {
		batchSize = 1
	}
	batches := (d.TotalReads + batchSize - 1) / batchSize
	if batches < 1 {
		batches = 1
	}

	vars := model.Vars()
	adjacency := model.Adjacency()

	var all SampleSet
	for batch := 0; batch < batches; batch++ {
		if cancelled != nil && cancelled() {
			return nil, ErrCancelled{}
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for read := 0; read < batchSize; read++ {
			all = append(all, anneal(model, vars, adjacency, rng, sweeps, initialTemp, coolingRate))
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Energy < all[j].Energy })
	return all, nil
}

// anneal runs one independent chain: random initial assignment, then
// single-spin-flip Metropolis updates under a geometrically cooling
// temperature schedule.
func anneal(model *bqm.BQM, vars []bqm.Var, adjacency map[bqm.Var]map[bqm.Var]float64, rng *rand.Rand, sweeps int, initialTemp, coolingRate float64) Sample {
	assignment := make(map[bqm.Var]int, len(vars))
	for _, v := range vars {
		assignment[v] = rng.Intn(2)
	}

	if len(vars) == 0 {
		return Sample{Assignment: assignment, Energy: 0}
	}

	energy := model.Energy(assignment)
	temperature := initialTemp

	for s := 0; s < sweeps; s++ {
		v := vars[rng.Intn(len(vars))]

		delta := flipDelta(model, assignment, adjacency, v)

		accept := delta < 0
		if !accept {
			probability := math.Exp(-delta / temperature)
			accept = rng.Float64() < probability
		}

		if accept {
			assignment[v] = 1 - assignment[v]
			energy += delta
		}

		temperature *= coolingRate
	}

	return Sample{Assignment: cloneAssignment(assignment), Energy: energy}
}

// flipDelta computes the energy change of flipping variable v, without
// recomputing the full energy.
func flipDelta(model *bqm.BQM, assignment map[bqm.Var]int, adjacency map[bqm.Var]map[bqm.Var]float64, v bqm.Var) float64 {
	current := assignment[v]
	diff := float64(1 - 2*current) // flipping 0->1 is +1, 1->0 is -1

	delta := model.Linear[v] * diff
	for neighbor, bias := range adjacency[v] {
		delta += bias * float64(assignment[neighbor]) * diff
	}
	return delta
}

func cloneAssignment(a map[bqm.Var]int) map[bqm.Var]int {
	out := make(map[bqm.Var]int, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
