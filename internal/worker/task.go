package worker

import (
	"time"

	"github.com/google/uuid"

	"github.com/tesseract/screenflow/internal/model"
)

// downloadSteps is the number of progress reports after the initial one;
// with 4 steps a download reports 0, 25, 50, 75, 100.
const downloadSteps = 4

// ProgressFunc receives a monotonically non-decreasing percentage in
// [0, 100]. It is invoked from a worker goroutine, never from the main
// dispatch loop.
type ProgressFunc func(percent int)

// Task is a unit of background work executed exactly once by exactly one
// worker. The report callback is bound by the pool at enqueue time, not by
// the task's creator.
type Task interface {
	ID() string
	Run(report ProgressFunc) error
}

// DownloadTask simulates fetching a file: it sleeps through its configured
// duration and reports progress in fixed steps.
type DownloadTask struct {
	id       string
	URL      string
	Duration time.Duration
	Status   model.JobStatus
}

// NewDownloadTask creates a download task for the given URL spreading its
// simulated work over the given duration.
func NewDownloadTask(url string, duration time.Duration) *DownloadTask {
	return &DownloadTask{
		id:       uuid.NewString(),
		URL:      url,
		Duration: duration,
		Status:   model.JobStatusPending,
	}
}

// ID returns the unique task identity.
func (t *DownloadTask) ID() string { return t.id }

// Run executes the simulated download synchronously within the calling
// worker.
func (t *DownloadTask) Run(report ProgressFunc) error {
	if report == nil {
		report = func(int) {}
	}

	t.Status = model.JobStatusRunning
	report(0)

	step := t.Duration / downloadSteps
	for i := 1; i <= downloadSteps; i++ {
		time.Sleep(step)
		report(i * 100 / downloadSteps)
	}

	t.Status = model.JobStatusCompleted
	return nil
}

// SleepTask is a generic timed background task: it sleeps for its duration
// and reports only start and completion.
type SleepTask struct {
	id       string
	Duration time.Duration
	Status   model.JobStatus
}

// NewSleepTask creates a sleep task of the given duration.
func NewSleepTask(duration time.Duration) *SleepTask {
	return &SleepTask{
		id:       uuid.NewString(),
		Duration: duration,
		Status:   model.JobStatusPending,
	}
}

// ID returns the unique task identity.
func (t *SleepTask) ID() string { return t.id }

// Run sleeps for the configured duration.
func (t *SleepTask) Run(report ProgressFunc) error {
	if report == nil {
		report = func(int) {}
	}

	t.Status = model.JobStatusRunning
	report(0)
	time.Sleep(t.Duration)
	report(100)
	t.Status = model.JobStatusCompleted
	return nil
}
