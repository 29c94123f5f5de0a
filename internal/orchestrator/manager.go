package orchestrator

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"timetable-optimizer/internal/preferences"
)

// StatusView is the read-only projection returned by Get.
type StatusView struct {
	Status      Status
	Summary     string
	Result      *Result
	Err         string
	Found       bool
}

// Manager is the sole mutator of the task table: a mutex-guarded map, per
// §5's concurrency model. create/get/update only ever hold the lock long
// enough to read or write the map entry.
type Manager struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*Task
}

// NewManager returns an empty task table.
func NewManager() *Manager {
	return &Manager{tasks: map[uuid.UUID]*Task{}}
}

// Create allocates a fresh task id, records status PENDING, and returns
// immediately; it never blocks on the work itself.
func (m *Manager) Create(prefs preferences.Preferences) uuid.UUID {
	id := uuid.New()
	task := &Task{
		ID:          id,
		Status:      StatusPending,
		Preferences: prefs,
		createdAt:   time.Now(),
	}

	m.mu.Lock()
	m.tasks[id] = task
	m.mu.Unlock()

	log.Info().Str("task_id", id.String()).Str("status", string(StatusPending)).Msg("task created")
	return id
}

// Get returns a point-in-time status view; Found is false if id is unknown.
func (m *Manager) Get(id uuid.UUID) StatusView {
	m.mu.RLock()
	defer m.mu.RUnlock()

	task, ok := m.tasks[id]
	if !ok {
		return StatusView{Found: false}
	}
	return StatusView{
		Status:  task.Status,
		Summary: task.Summary,
		Result:  task.Result,
		Err:     task.Err,
		Found:   true,
	}
}

// UpdateProgress sets a task's summary and marks it PROCESSING. Legal from
// PENDING (promoting it to PROCESSING) or from PROCESSING; a no-op on a
// terminal or unknown task.
func (m *Manager) UpdateProgress(id uuid.UUID, summary string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok || isTerminal(task.Status) {
		return
	}
	task.Status = StatusProcessing
	task.Summary = summary
}

// Succeed transitions a task to SUCCESS with its result. Terminal states
// are frozen, so a task already SUCCESS/FAILURE is left untouched.
func (m *Manager) Succeed(id uuid.UUID, result *Result) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok || isTerminal(task.Status) {
		return
	}
	task.Status = StatusSuccess
	task.Result = result

	log.Info().Str("task_id", id.String()).Str("status", string(StatusSuccess)).Msg("task finished")
}

// Fail transitions a task to FAILURE with a human-readable error.
func (m *Manager) Fail(id uuid.UUID, errMsg string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok || isTerminal(task.Status) {
		return
	}
	task.Status = StatusFailure
	task.Err = errMsg

	log.Warn().Str("task_id", id.String()).Str("status", string(StatusFailure)).Str("error", errMsg).Msg("task failed")
}

// Cancel sets a task's cancellation flag; observed by the worker between
// sampler batches per §5.
func (m *Manager) Cancel(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if task, ok := m.tasks[id]; ok {
		task.cancelled = true
	}
}

// isCancelled reports whether id has been marked for cancellation. Handed
// to the sampler as a closure rather than a public method to keep the
// cancellation surface internal to this package.
func (m *Manager) isCancelled(id uuid.UUID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	task, ok := m.tasks[id]
	return ok && task.cancelled
}

func isTerminal(s Status) bool {
	return s == StatusSuccess || s == StatusFailure
}
