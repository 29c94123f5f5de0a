// Package orchestrator owns the in-memory task table: it accepts
// optimization requests, spawns workers, and answers non-blocking status
// polls.
package orchestrator

import (
	"time"

	"github.com/google/uuid"

	"timetable-optimizer/internal/decoder"
	"timetable-optimizer/internal/preferences"
)

// Status is one of the task lifecycle states named in §3.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusSuccess    Status = "SUCCESS"
	StatusFailure    Status = "FAILURE"
)

// TopSchedule is one entry of Result.TopSchedules: a decoded schedule
// flattened to the lecture-id shape the HTTP layer returns.
type TopSchedule struct {
	Schedule     []string           `json:"schedule"`
	Energy       float64            `json:"energy"`
	TotalCredits float64            `json:"total_credits"`
	Breakdown    decoder.Breakdown  `json:"breakdown"`
}

// Result is the SUCCESS payload: the best schedule plus the ranked list it
// was drawn from.
type Result struct {
	Schedule     []string          `json:"schedule"`
	Energy       float64           `json:"energy"`
	TotalCredits float64           `json:"total_credits"`
	Breakdown    decoder.Breakdown `json:"breakdown"`
	TopSchedules []TopSchedule     `json:"top_schedules"`
}

// Task is one submitted optimization run. Once Status is SUCCESS or
// FAILURE it is terminal: Result is set iff SUCCESS, Err iff FAILURE.
type Task struct {
	ID          uuid.UUID
	Status      Status
	Summary     string
	Preferences preferences.Preferences
	Result      *Result
	Err         string

	createdAt time.Time
	cancelled bool
}
