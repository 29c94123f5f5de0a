package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"timetable-optimizer/internal/preferences"
)

// presetFile is the on-disk shape of presets.toml: named bundles of
// Preferences fields that an OptimizationRequest may reference instead of
// repeating every weight override.
type presetFile struct {
	Preset map[string]presetEntry `toml:"preset"`
}

// presetEntry fields are pointers so a preset author can tell "not set,
// fall back to the default" (nil) apart from "explicitly set to zero"
// (non-nil pointing at 0), the way OptimizationRequest already does for
// HTTP overrides.
type presetEntry struct {
	TargetCredits *float64 `toml:"target_credits"`
	MaxCandidates *int     `toml:"max_candidates"`
	TotalReads    *int     `toml:"total_reads"`
	BatchSize     *int     `toml:"batch_size"`
	Weights       struct {
		HardOverlap      *float64 `toml:"w_hard_overlap"`
		TargetCredit     *float64 `toml:"w_target_credit"`
		Mandatory        *float64 `toml:"w_mandatory"`
		FirstClass       *float64 `toml:"w_first_class"`
		LunchOverlap     *float64 `toml:"w_lunch_overlap"`
		FreeDayReward    *float64 `toml:"r_free_day"`
		FreeDayBreak     *float64 `toml:"p_free_day_break"`
		ContiguousReward *float64 `toml:"w_contiguous_reward"`
		TensionBase      *float64 `toml:"w_tension_base"`
		TimeCreditRatio  *float64 `toml:"w_time_credit_ratio"`
	} `toml:"weights"`
}

// Presets is the process-wide named-preset table, empty until LoadPresets
// succeeds.
var Presets = map[string]preferences.Preferences{}

// PresetsPath is the default on-disk location of the named presets file.
const PresetsPath = "./presets.toml"

// LoadPresets reads presets.toml into Presets, starting from the package
// default weights so a preset entry only needs to name the fields it
// overrides. A missing or unparsable file returns an error and leaves
// Presets as it was (empty at startup); this is optional infrastructure,
// not the mandatory catalog data.
func LoadPresets(path string) error {
	var pf presetFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return errors.Wrap(err, "reading presets file")
	}

	loaded := make(map[string]preferences.Preferences, len(pf.Preset))
	for name, entry := range pf.Preset {
		p := preferences.Default()
		if entry.TargetCredits != nil {
			p.TargetCredits = *entry.TargetCredits
		}
		if entry.MaxCandidates != nil {
			p.MaxCandidates = *entry.MaxCandidates
		}
		if entry.TotalReads != nil {
			p.TotalReads = *entry.TotalReads
		}
		if entry.BatchSize != nil {
			p.BatchSize = *entry.BatchSize
		}
		w := entry.Weights
		if w.HardOverlap != nil {
			p.Weights.HardOverlap = *w.HardOverlap
		}
		if w.TargetCredit != nil {
			p.Weights.TargetCredit = *w.TargetCredit
		}
		if w.Mandatory != nil {
			p.Weights.Mandatory = *w.Mandatory
		}
		if w.FirstClass != nil {
			p.Weights.FirstClass = *w.FirstClass
		}
		if w.LunchOverlap != nil {
			p.Weights.LunchOverlap = *w.LunchOverlap
		}
		if w.FreeDayReward != nil {
			p.Weights.FreeDayReward = *w.FreeDayReward
		}
		if w.FreeDayBreak != nil {
			p.Weights.FreeDayBreak = *w.FreeDayBreak
		}
		if w.ContiguousReward != nil {
			p.Weights.ContiguousReward = *w.ContiguousReward
		}
		if w.TensionBase != nil {
			p.Weights.TensionBase = *w.TensionBase
		}
		if w.TimeCreditRatio != nil {
			p.Weights.TimeCreditRatio = *w.TimeCreditRatio
		}
		loaded[name] = p
	}

	Presets = loaded
	log.Info().Int("count", len(loaded)).Str("path", path).Msg("loaded preference presets")
	return nil
}
