// Package bqm implements the binary quadratic model compiled from a
// candidate lecture pool and sampled by the annealer.
package bqm

// Var identifies a binary variable: either a lecture id or a free-day
// auxiliary named "free_<day>".
type Var string

// FreeDayVar returns the auxiliary variable name for a weekday.
func FreeDayVar(day string) Var {
	return Var("free_" + day)
}

// pair is an unordered key into the quadratic-bias map.
type pair struct{ a, b Var }

func newPair(a, b Var) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// BQM is the pair (L, Q): linear biases keyed by variable, quadratic biases
// keyed by unordered variable pairs.
type BQM struct {
	Linear    map[Var]float64
	Quadratic map[pair]float64
}

// New returns an empty BQM ready for bias accumulation.
func New() *BQM {
	return &BQM{
		Linear:    map[Var]float64{},
		Quadratic: map[pair]float64{},
	}
}

// AddLinear accumulates bias onto variable v.
func (b *BQM) AddLinear(v Var, bias float64) {
	b.Linear[v] += bias
}

// AddQuadratic accumulates bias onto the unordered pair (a, b). Self-pairs
// are undefined and ignored.
func (b *BQM) AddQuadratic(a, v Var, bias float64) {
	if a == v {
		return
	}
	b.Quadratic[newPair(a, v)] += bias
}

// QuadraticBias returns the accumulated bias of the unordered pair (a, v).
// The sampler reads couplings through Adjacency instead.
func (b *BQM) QuadraticBias(a, v Var) float64 {
	return b.Quadratic[newPair(a, v)]
}

// Vars returns every variable touched by the model, order unspecified.
func (b *BQM) Vars() []Var {
	seen := map[Var]bool{}
	var out []Var
	for v := range b.Linear {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for p := range b.Quadratic {
		for _, v := range [2]Var{p.a, p.b} {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// Adjacency returns, for every variable touched by a quadratic term, the
// map of neighbor variable to coupling bias. Used by the sampler to compute
// single-spin-flip energy deltas without rescanning every quadratic term.
func (b *BQM) Adjacency() map[Var]map[Var]float64 {
	adj := make(map[Var]map[Var]float64)
	for p, bias := range b.Quadratic {
		if adj[p.a] == nil {
			adj[p.a] = map[Var]float64{}
		}
		if adj[p.b] == nil {
			adj[p.b] = map[Var]float64{}
		}
		adj[p.a][p.b] += bias
		adj[p.b][p.a] += bias
	}
	return adj
}

// Energy computes E(x) = sum(L_i x_i) + sum(Q_ij x_i x_j) for a total
// assignment. Variables absent from assignment are treated as 0.
func (b *BQM) Energy(assignment map[Var]int) float64 {
	var e float64
	for v, bias := range b.Linear {
		e += bias * float64(assignment[v])
	}
	for p, bias := range b.Quadratic {
		e += bias * float64(assignment[p.a]) * float64(assignment[p.b])
	}
	return e
}
