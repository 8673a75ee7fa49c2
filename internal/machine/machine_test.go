package machine

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesseract/screenflow/internal/gui"
	"github.com/tesseract/screenflow/internal/model"
	"github.com/tesseract/screenflow/internal/state"
	"github.com/tesseract/screenflow/internal/worker"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordedTask counts its executions.
type recordedTask struct {
	runs *atomic.Int32
}

func (t recordedTask) ID() string { return "recorded" }

func (t recordedTask) Run(worker.ProgressFunc) error {
	t.runs.Add(1)
	return nil
}

// badScreen returns a transition target that is not registered.
type badScreen struct{}

func (badScreen) Name() string { return "bad" }

func (badScreen) Layout() model.Layout {
	return model.Layout{Title: "bad", Rows: []model.Row{{model.Label("bad")}}}
}

func (badScreen) Transition(model.Event) model.Transition {
	return model.GoTo("no_such_state")
}

// harness bundles a machine wired to a headless platform.
type harness struct {
	platform *gui.Headless
	machine  *Machine
	pool     *worker.Pool
	done     chan error
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()

	if cfg.PollTimeout == 0 {
		cfg.PollTimeout = 10 * time.Millisecond
	}

	platform := gui.NewHeadless()
	pool := worker.NewPool(1, testLogger())
	m := New(platform, pool, testLogger(), cfg)

	m.AddScreen(state.NewInitialScreen(m, testLogger()))
	m.AddScreen(state.NewScreenA())
	m.AddScreen(state.NewScreenB())
	m.AddSecondaryScreen(state.NewScreenC())
	require.NoError(t, m.SetInitial(state.NameInitial))

	return &harness{platform: platform, machine: m, pool: pool, done: make(chan error, 1)}
}

func (h *harness) start(ctx context.Context) {
	h.pool.Start()
	go func() { h.done <- h.machine.Run(ctx) }()
}

func (h *harness) stop(t *testing.T) error {
	t.Helper()

	h.platform.PostEvent(model.Event{Window: h.machine.Current(), Key: model.EventExit})
	select {
	case err := <-h.done:
		return err
	case <-time.After(waitFor):
		t.Fatal("machine did not terminate")
		return nil
	}
}

func (h *harness) waitOpen(t *testing.T, id string, open bool) {
	t.Helper()
	require.Eventually(t, func() bool { return h.platform.IsOpen(id) == open }, waitFor, tick,
		"window %q open=%v", id, open)
}

func TestMachine_PrimaryNavigation(t *testing.T) {
	h := newHarness(t, Config{})
	h.start(context.Background())
	h.waitOpen(t, state.NameInitial, true)

	// initial -> state_a: former window closes, new one opens.
	h.platform.PostEvent(model.Event{Window: state.NameInitial, Key: state.EventGoToStateA, Values: model.Values{}})
	h.waitOpen(t, state.NameStateA, true)
	h.waitOpen(t, state.NameInitial, false)

	// state_a -> initial.
	h.platform.PostEvent(model.Event{Window: state.NameStateA, Key: state.EventGoToInitial, Values: model.Values{}})
	h.waitOpen(t, state.NameInitial, true)
	h.waitOpen(t, state.NameStateA, false)

	require.NoError(t, h.stop(t))
	assert.Equal(t, state.NameInitial, h.machine.Current())
	assert.False(t, h.platform.IsOpen(state.NameInitial), "all windows must close on termination")
}

func TestMachine_SecondaryWindow(t *testing.T) {
	h := newHarness(t, Config{})
	h.start(context.Background())
	h.waitOpen(t, state.NameInitial, true)

	// Opening the secondary leaves the primary untouched.
	h.platform.PostEvent(model.Event{Window: state.NameInitial, Key: state.EventGoToStateC, Values: model.Values{}})
	h.waitOpen(t, state.NameStateC, true)
	assert.True(t, h.platform.IsOpen(state.NameInitial))

	// Closing it removes it from the secondary set.
	h.platform.PostEvent(model.Event{Window: state.NameStateC, Key: state.EventCloseStateC, Values: model.Values{}})
	h.waitOpen(t, state.NameStateC, false)
	assert.True(t, h.platform.IsOpen(state.NameInitial))

	// It can be reopened afterwards.
	h.platform.PostEvent(model.Event{Window: state.NameInitial, Key: state.EventGoToStateC, Values: model.Values{}})
	h.waitOpen(t, state.NameStateC, true)

	require.NoError(t, h.stop(t))
}

func TestMachine_DownloadEnqueuesTask(t *testing.T) {
	var runs atomic.Int32
	h := newHarness(t, Config{
		BuildTask: func(payload string) worker.Task { return recordedTask{runs: &runs} },
	})
	h.start(context.Background())
	h.waitOpen(t, state.NameInitial, true)

	h.platform.PostEvent(model.Event{
		Window: state.NameInitial,
		Key:    state.EventDownload,
		Values: model.Values{state.ValueFileURL: "http://example.com/file"},
	})
	require.Eventually(t, func() bool { return runs.Load() == 1 }, waitFor, tick)

	// An empty URL is a stay, not a job.
	h.platform.PostEvent(model.Event{
		Window: state.NameInitial,
		Key:    state.EventDownload,
		Values: model.Values{state.ValueFileURL: ""},
	})

	require.NoError(t, h.stop(t))
	assert.Equal(t, int32(1), runs.Load())
}

func TestMachine_ProgressRouting(t *testing.T) {
	h := newHarness(t, Config{})
	h.start(context.Background())
	h.waitOpen(t, state.NameInitial, true)

	progress := func(t *testing.T) (model.ProgressValue, bool) {
		t.Helper()
		v, ok := h.platform.WidgetValue(state.NameInitial, state.KeyDownloadProgress)
		if !ok {
			return model.ProgressValue{}, false
		}
		return v.(model.ProgressValue), true
	}

	// First report shows the indicator.
	h.platform.PostEvent(model.ProgressEvent("", 25))
	require.Eventually(t, func() bool {
		pv, ok := progress(t)
		return ok && pv.Visible && pv.Percent == 25
	}, waitFor, tick)

	// A report of 100 hides and resets it.
	h.platform.PostEvent(model.ProgressEvent("", 100))
	require.Eventually(t, func() bool {
		pv, ok := progress(t)
		return ok && !pv.Visible && pv.Percent == 0
	}, waitFor, tick)

	// The primary screen is unchanged throughout.
	assert.True(t, h.platform.IsOpen(state.NameInitial))

	require.NoError(t, h.stop(t))
}

func TestMachine_WorkerProgressReachesIndicator(t *testing.T) {
	h := newHarness(t, Config{DownloadDuration: 20 * time.Millisecond})
	h.start(context.Background())
	h.waitOpen(t, state.NameInitial, true)

	h.platform.PostEvent(model.Event{
		Window: state.NameInitial,
		Key:    state.EventDownload,
		Values: model.Values{state.ValueFileURL: "http://example.com/file"},
	})

	// The simulated download ends at 100, which resets the indicator.
	require.Eventually(t, func() bool {
		v, ok := h.platform.WidgetValue(state.NameInitial, state.KeyDownloadProgress)
		if !ok {
			return false
		}
		pv := v.(model.ProgressValue)
		return !pv.Visible && pv.Percent == 0
	}, waitFor, tick)

	require.NoError(t, h.stop(t))
}

func TestMachine_UnknownTargetFailsFast(t *testing.T) {
	platform := gui.NewHeadless()
	pool := worker.NewPool(1, testLogger())
	pool.Start()

	m := New(platform, pool, testLogger(), Config{PollTimeout: 10 * time.Millisecond})
	m.AddScreen(badScreen{})
	require.NoError(t, m.SetInitial("bad"))

	done := make(chan error, 1)
	go func() { done <- m.Run(context.Background()) }()

	platform.PostEvent(model.Event{Window: "bad", Key: "-anything-", Values: model.Values{}})

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrUnknownState)
	case <-time.After(waitFor):
		t.Fatal("machine did not fail fast on an unknown transition target")
	}
}

func TestMachine_ShutdownDrainsPool(t *testing.T) {
	h := newHarness(t, Config{})
	h.start(context.Background())
	h.waitOpen(t, state.NameInitial, true)

	require.NoError(t, h.stop(t))

	// Workers are gone: new tasks are rejected.
	err := h.pool.Enqueue(worker.NewSleepTask(time.Millisecond))
	assert.ErrorIs(t, err, worker.ErrPoolClosed)
	assert.Zero(t, h.pool.Pending())
}

func TestMachine_ContextCancellation(t *testing.T) {
	h := newHarness(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	h.start(ctx)
	h.waitOpen(t, state.NameInitial, true)

	cancel()
	select {
	case err := <-h.done:
		require.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("machine did not observe cancellation")
	}
}

func TestMachine_RunWithoutInitial(t *testing.T) {
	platform := gui.NewHeadless()
	pool := worker.NewPool(1, testLogger())
	m := New(platform, pool, testLogger(), Config{})

	err := m.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoInitialScreen)
}

func TestMachine_SetInitialUnknown(t *testing.T) {
	platform := gui.NewHeadless()
	pool := worker.NewPool(1, testLogger())
	m := New(platform, pool, testLogger(), Config{})

	err := m.SetInitial("missing")
	assert.ErrorIs(t, err, ErrUnknownState)
}
