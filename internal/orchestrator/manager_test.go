package orchestrator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"timetable-optimizer/internal/preferences"
)

func TestCreate_StartsPending(t *testing.T) {
	mgr := NewManager()
	id := mgr.Create(preferences.Default())

	view := mgr.Get(id)
	assert.True(t, view.Found)
	assert.Equal(t, StatusPending, view.Status)
}

func TestGet_UnknownTaskNotFound(t *testing.T) {
	mgr := NewManager()
	view := mgr.Get(uuid.New())
	assert.False(t, view.Found)
}

func TestUpdateProgress_PromotesToProcessing(t *testing.T) {
	mgr := NewManager()
	id := mgr.Create(preferences.Default())

	mgr.UpdateProgress(id, "selecting candidates")
	view := mgr.Get(id)
	assert.Equal(t, StatusProcessing, view.Status)
	assert.Equal(t, "selecting candidates", view.Summary)
}

func TestSucceed_IsTerminalAndFrozen(t *testing.T) {
	mgr := NewManager()
	id := mgr.Create(preferences.Default())
	mgr.UpdateProgress(id, "working")

	result := &Result{Schedule: []string{"A-1"}}
	mgr.Succeed(id, result)

	mgr.Fail(id, "too late") // must be ignored: terminal

	view := mgr.Get(id)
	assert.Equal(t, StatusSuccess, view.Status)
	assert.Equal(t, result, view.Result)
	assert.Empty(t, view.Err)
}

func TestFail_IsTerminal(t *testing.T) {
	mgr := NewManager()
	id := mgr.Create(preferences.Default())
	mgr.Fail(id, "no candidates resolved from catalog")

	view := mgr.Get(id)
	assert.Equal(t, StatusFailure, view.Status)
	assert.Equal(t, "no candidates resolved from catalog", view.Err)
}

func TestCancel_ObservedByIsCancelled(t *testing.T) {
	mgr := NewManager()
	id := mgr.Create(preferences.Default())

	assert.False(t, mgr.isCancelled(id))
	mgr.Cancel(id)
	assert.True(t, mgr.isCancelled(id))
}
