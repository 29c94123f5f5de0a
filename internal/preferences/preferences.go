// Package preferences holds the tunable knobs that shape the BQM: credit
// target, mandatory lectures, sampling budget, and the weight vector.
package preferences

// Weights collects every weight constant §4.4 of the compiler reads.
type Weights struct {
	HardOverlap      float64 `json:"w_hard_overlap"`
	TargetCredit     float64 `json:"w_target_credit"`
	Mandatory        float64 `json:"w_mandatory"`
	FirstClass       float64 `json:"w_first_class"`
	LunchOverlap     float64 `json:"w_lunch_overlap"`
	FreeDayReward    float64 `json:"r_free_day"`
	FreeDayBreak     float64 `json:"p_free_day_break"`
	ContiguousReward float64 `json:"w_contiguous_reward"`
	TensionBase      float64 `json:"w_tension_base"`
	TimeCreditRatio  float64 `json:"w_time_credit_ratio"`
}

// DefaultWeights returns the weight constants named in spec §3.
func DefaultWeights() Weights {
	return Weights{
		HardOverlap:      10000,
		TargetCredit:     100,
		Mandatory:        -10000,
		FirstClass:       50,
		LunchOverlap:     30,
		FreeDayReward:    100,
		FreeDayBreak:     500,
		ContiguousReward: -20,
		TensionBase:      5,
		TimeCreditRatio:  50,
	}
}

// Preferences configures one optimization run.
type Preferences struct {
	TargetCredits float64         `json:"target_credits"`
	MandatoryIDs  map[string]bool `json:"-"`
	MaxCandidates int             `json:"max_candidates"`
	TotalReads    int             `json:"total_reads"`
	BatchSize     int             `json:"batch_size"`
	Weights       Weights         `json:"weights"`
}

// Default returns the preferences defaults named in spec §3: target_credits
// 21.0, max_candidates 300, total_reads/batch_size 100, no mandatory ids.
func Default() Preferences {
	return Preferences{
		TargetCredits: 21.0,
		MandatoryIDs:  map[string]bool{},
		MaxCandidates: 300,
		TotalReads:    100,
		BatchSize:     100,
		Weights:       DefaultWeights(),
	}
}

// WithMandatory returns a copy of p with MandatoryIDs set to the given ids.
func (p Preferences) WithMandatory(ids []string) Preferences {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	p.MandatoryIDs = set
	return p
}
