// Package usecases implements the optimizer module's application logic:
// translating HTTP requests into orchestrator submissions and catalog
// reads.
package usecases

import (
	"github.com/google/uuid"

	"timetable-optimizer/config"
	"timetable-optimizer/internal/catalog"
	"timetable-optimizer/internal/orchestrator"
	"timetable-optimizer/internal/preferences"
	"timetable-optimizer/internal/sampler"
)

// OptimizationRequest mirrors the wire schema of §6: selected_lecture_ids
// required non-empty, plus every Preferences field as an optional
// override. preset names a bundle from config.Presets (§10.4) used as the
// base preferences before the override fields below are overlaid; absent
// or empty, the package default is the base. use_quantum_annealing and
// dwave_token are accepted on the wire (§12 supplemented features): a
// request with use_quantum_annealing=true is rejected, and dwave_token is
// not read. They keep the sampler-swap-in seam visible at the API boundary
// without implementing real hardware dispatch.
type OptimizationRequest struct {
	SelectedLectureIDs []string `json:"selected_lecture_ids" validate:"required,min=1"`

	Preset *string `json:"preset,omitempty"`

	TargetCredits *float64 `json:"target_credits,omitempty"`
	MaxCandidates *int     `json:"max_candidates,omitempty"`
	TotalReads    *int     `json:"total_reads,omitempty"`
	BatchSize     *int     `json:"batch_size,omitempty"`

	WHardOverlap      *float64 `json:"w_hard_overlap,omitempty"`
	WTargetCredit     *float64 `json:"w_target_credit,omitempty"`
	WMandatory        *float64 `json:"w_mandatory,omitempty"`
	WFirstClass       *float64 `json:"w_first_class,omitempty"`
	WLunchOverlap     *float64 `json:"w_lunch_overlap,omitempty"`
	RFreeDay          *float64 `json:"r_free_day,omitempty"`
	PFreeDayBreak     *float64 `json:"p_free_day_break,omitempty"`
	WContiguousReward *float64 `json:"w_contiguous_reward,omitempty"`
	WTensionBase      *float64 `json:"w_tension_base,omitempty"`
	WTimeCreditRatio  *float64 `json:"w_time_credit_ratio,omitempty"`

	UseQuantumAnnealing bool   `json:"use_quantum_annealing,omitempty"`
	DwaveToken          string `json:"dwave_token,omitempty"`
}

// ToPreferences overlays the request's optional fields onto base.
func (r OptimizationRequest) ToPreferences(base preferences.Preferences) preferences.Preferences {
	p := base
	p = p.WithMandatory(r.SelectedLectureIDs)

	if r.TargetCredits != nil {
		p.TargetCredits = *r.TargetCredits
	}
	if r.MaxCandidates != nil {
		p.MaxCandidates = *r.MaxCandidates
	}
	if r.TotalReads != nil {
		p.TotalReads = *r.TotalReads
	}
	if r.BatchSize != nil {
		p.BatchSize = *r.BatchSize
	}
	if r.WHardOverlap != nil {
		p.Weights.HardOverlap = *r.WHardOverlap
	}
	if r.WTargetCredit != nil {
		p.Weights.TargetCredit = *r.WTargetCredit
	}
	if r.WMandatory != nil {
		p.Weights.Mandatory = *r.WMandatory
	}
	if r.WFirstClass != nil {
		p.Weights.FirstClass = *r.WFirstClass
	}
	if r.WLunchOverlap != nil {
		p.Weights.LunchOverlap = *r.WLunchOverlap
	}
	if r.RFreeDay != nil {
		p.Weights.FreeDayReward = *r.RFreeDay
	}
	if r.PFreeDayBreak != nil {
		p.Weights.FreeDayBreak = *r.PFreeDayBreak
	}
	if r.WContiguousReward != nil {
		p.Weights.ContiguousReward = *r.WContiguousReward
	}
	if r.WTensionBase != nil {
		p.Weights.TensionBase = *r.WTensionBase
	}
	if r.WTimeCreditRatio != nil {
		p.Weights.TimeCreditRatio = *r.WTimeCreditRatio
	}

	return p
}

// OptimizeUseCase wires the catalog store and task orchestrator together.
type OptimizeUseCase struct {
	store   catalog.Store
	manager *orchestrator.Manager
}

func NewOptimizeUseCase(store catalog.Store, manager *orchestrator.Manager) *OptimizeUseCase {
	return &OptimizeUseCase{store: store, manager: manager}
}

// ListLectures returns the catalog snapshot, or CatalogUnloaded if empty.
func (uc *OptimizeUseCase) ListLectures() ([]catalog.Lecture, error) {
	if !uc.store.Loaded() {
		return nil, NewCatalogUnloadedError()
	}
	return uc.store.Lectures(), nil
}

// Submit validates the request, creates a task, and spawns its worker.
func (uc *OptimizeUseCase) Submit(req OptimizationRequest) (uuid.UUID, error) {
	if len(req.SelectedLectureIDs) == 0 {
		return uuid.UUID{}, NewEmptySelectionError()
	}
	if req.UseQuantumAnnealing {
		return uuid.UUID{}, NewUnsupportedBackendError("quantum annealing")
	}
	if !uc.store.Loaded() {
		return uuid.UUID{}, NewCatalogUnloadedError()
	}

	base := preferences.Default()
	if req.Preset != nil && *req.Preset != "" {
		named, ok := config.Presets[*req.Preset]
		if !ok {
			return uuid.UUID{}, NewUnknownPresetError(*req.Preset)
		}
		base = named
	}

	prefs := req.ToPreferences(base)
	taskID := uc.manager.Create(prefs)

	driver := sampler.Driver{TotalReads: prefs.TotalReads, BatchSize: prefs.BatchSize}
	orchestrator.Submit(uc.manager, taskID, uc.store.Lectures(), prefs, driver)

	return taskID, nil
}

// Status returns the current status view, or UnknownTask if id is unknown.
func (uc *OptimizeUseCase) Status(taskID uuid.UUID) (orchestrator.StatusView, error) {
	view := uc.manager.Get(taskID)
	if !view.Found {
		return orchestrator.StatusView{}, NewUnknownTaskError(taskID.String())
	}
	return view, nil
}
