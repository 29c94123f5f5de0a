package orchestrator

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"timetable-optimizer/internal/bqm"
	"timetable-optimizer/internal/candidate"
	"timetable-optimizer/internal/catalog"
	"timetable-optimizer/internal/decoder"
	"timetable-optimizer/internal/metrics"
	"timetable-optimizer/internal/preferences"
	"timetable-optimizer/internal/sampler"
)

// Submit spawns a worker goroutine that runs the candidate selector, BQM
// compiler, sampler driver and decoder for task id, reporting progress and
// final state through mgr. It never blocks the caller.
func Submit(mgr *Manager, id uuid.UUID, lectures []catalog.Lecture, prefs preferences.Preferences, driver sampler.Driver) {
	go run(mgr, id, lectures, prefs, driver)
}

func run(mgr *Manager, id uuid.UUID, lectures []catalog.Lecture, prefs preferences.Preferences, driver sampler.Driver) {
	start := time.Now()
	mgr.UpdateProgress(id, "selecting candidate lectures")

	rng := rand.New(rand.NewSource(time.Now().UnixNano() ^ int64(hashUUID(id))))

	pool, err := candidate.Select(lectures, prefs, rng)
	if err != nil {
		mgr.Fail(id, err.Error())
		metrics.TaskFinished(string(StatusFailure))
		return
	}

	metrics.TaskProcessingStarted()
	defer metrics.TaskProcessingFinished()

	model := bqm.Compile(pool, prefs, func(milestone string, _ int) {
		mgr.UpdateProgress(id, milestone)
		log.Debug().Str("task_id", id.String()).Str("milestone", milestone).Msg("compiling BQM")
	})

	batchStart := time.Now()
	samples, err := driver.Sample(context.Background(), model, rng, func() bool { return mgr.isCancelled(id) })
	metrics.SamplerBatchDuration(time.Since(batchStart).Seconds())
	if err != nil {
		mgr.Fail(id, err.Error())
		metrics.TaskFinished(string(StatusFailure))
		return
	}

	schedules := decoder.Decode(samples, pool, prefs)
	if len(schedules) == 0 {
		mgr.Fail(id, candidate.ErrNoCandidates{}.Error())
		metrics.TaskFinished(string(StatusFailure))
		return
	}

	top := make([]TopSchedule, len(schedules))
	for i, s := range schedules {
		top[i] = TopSchedule{
			Schedule:     lectureIDs(s.Lectures),
			Energy:       s.Energy,
			TotalCredits: s.TotalCredits,
			Breakdown:    s.Breakdown,
		}
	}

	result := &Result{
		Schedule:     top[0].Schedule,
		Energy:       top[0].Energy,
		TotalCredits: top[0].TotalCredits,
		Breakdown:    top[0].Breakdown,
		TopSchedules: top,
	}

	mgr.Succeed(id, result)
	metrics.TaskFinished(string(StatusSuccess))

	log.Info().
		Str("task_id", id.String()).
		Dur("elapsed", time.Since(start)).
		Int("schedules", len(schedules)).
		Msg("optimization complete")
}

func lectureIDs(lectures []catalog.Lecture) []string {
	out := make([]string, len(lectures))
	for i, lec := range lectures {
		out[i] = lec.ID
	}
	return out
}

func hashUUID(id uuid.UUID) uint32 {
	var h uint32
	for _, b := range id {
		h = h*31 + uint32(b)
	}
	return h
}
