package usecases

// OptimizerError is the optimizer module's typed error, modeled on the
// academic module's enrollment error taxonomy: a stable Type, a
// human-readable Message, and a Details map for structured context.
type OptimizerError struct {
	Type    OptimizerErrorType
	Message string
	Details map[string]interface{}
}

func (e *OptimizerError) Error() string {
	return e.Message
}

// OptimizerErrorType enumerates the error taxonomy of §7.
type OptimizerErrorType string

const (
	ErrEmptySelection     OptimizerErrorType = "EMPTY_SELECTION"
	ErrUnknownTask        OptimizerErrorType = "UNKNOWN_TASK"
	ErrCatalogUnloaded    OptimizerErrorType = "CATALOG_UNLOADED"
	ErrNoCandidates       OptimizerErrorType = "NO_CANDIDATES"
	ErrUnsupportedBackend OptimizerErrorType = "UNSUPPORTED_BACKEND"
	ErrUnknownPreset      OptimizerErrorType = "UNKNOWN_PRESET"
)

// NewEmptySelectionError reports a request with no selected lecture ids.
func NewEmptySelectionError() *OptimizerError {
	return &OptimizerError{
		Type:    ErrEmptySelection,
		Message: "selected_lecture_ids must be non-empty",
	}
}

// NewUnknownTaskError reports a poll against a task id that does not exist.
func NewUnknownTaskError(taskID string) *OptimizerError {
	return &OptimizerError{
		Type:    ErrUnknownTask,
		Message: "task not found",
		Details: map[string]interface{}{"task_id": taskID},
	}
}

// NewCatalogUnloadedError reports an empty catalog store.
func NewCatalogUnloadedError() *OptimizerError {
	return &OptimizerError{
		Type:    ErrCatalogUnloaded,
		Message: "lecture catalog is not loaded",
	}
}

// NewUnsupportedBackendError reports a request asking for a sampler
// backend this deployment does not provide (§12 supplemented features).
func NewUnsupportedBackendError(backend string) *OptimizerError {
	return &OptimizerError{
		Type:    ErrUnsupportedBackend,
		Message: "unsupported: " + backend + " backend not configured",
		Details: map[string]interface{}{"backend": backend},
	}
}

// NewUnknownPresetError reports a preset name not found in config.Presets.
func NewUnknownPresetError(name string) *OptimizerError {
	return &OptimizerError{
		Type:    ErrUnknownPreset,
		Message: "unknown preset",
		Details: map[string]interface{}{"preset": name},
	}
}

// IsOptimizerError reports whether err is an *OptimizerError.
func IsOptimizerError(err error) (*OptimizerError, bool) {
	oe, ok := err.(*OptimizerError)
	return oe, ok
}
