package machine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tesseract/screenflow/internal/gui"
	"github.com/tesseract/screenflow/internal/model"
	"github.com/tesseract/screenflow/internal/state"
	"github.com/tesseract/screenflow/internal/worker"
)

var (
	// ErrUnknownState means a transition target named a screen that is not
	// registered. This is a configuration defect: the registry and the
	// transition tables are inconsistent, so the loop fails fast.
	ErrUnknownState = errors.New("unknown state")

	// ErrNoInitialScreen means Run was called before SetInitial.
	ErrNoInitialScreen = errors.New("no initial screen set")
)

// Default loop parameters.
const (
	DefaultPollTimeout      = 100 * time.Millisecond
	DefaultDownloadDuration = 5 * time.Second
)

// Config tunes the dispatch loop and the background jobs it creates.
type Config struct {
	// PollTimeout bounds each wait for the next event so termination
	// conditions are re-checked even when no events arrive.
	PollTimeout time.Duration

	// DownloadDuration is the simulated duration of a download job.
	DownloadDuration time.Duration

	// BuildTask constructs the background task for a download transition
	// payload. Defaults to a simulated download over DownloadDuration.
	BuildTask func(payload string) worker.Task
}

// Machine owns the screen registry and runs the main dispatch loop.
type Machine struct {
	platform gui.Platform
	pool     *worker.Pool
	logger   *slog.Logger
	cfg      Config

	screens     map[string]state.Screen
	secondary   map[string]bool
	current     state.Screen
	secondaries []state.Screen // open secondary screens, insertion order
	open        map[string]bool
}

// New creates a machine over the given platform and pool. The pool's
// progress callback is bound here: workers hand percentages off through
// the platform's event stream, never by mutating UI state directly.
func New(platform gui.Platform, pool *worker.Pool, logger *slog.Logger, cfg Config) *Machine {
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = DefaultPollTimeout
	}
	if cfg.DownloadDuration <= 0 {
		cfg.DownloadDuration = DefaultDownloadDuration
	}

	m := &Machine{
		platform:  platform,
		pool:      pool,
		logger:    logger,
		cfg:       cfg,
		screens:   make(map[string]state.Screen),
		secondary: make(map[string]bool),
		open:      make(map[string]bool),
	}

	if m.cfg.BuildTask == nil {
		m.cfg.BuildTask = func(payload string) worker.Task {
			return worker.NewDownloadTask(payload, m.cfg.DownloadDuration)
		}
	}

	pool.SetProgressFunc(func(percent int) {
		platform.PostEvent(model.ProgressEvent("", percent))
	})

	return m
}

// AddScreen registers a primary screen. Screen names must be unique.
func (m *Machine) AddScreen(s state.Screen) {
	m.screens[s.Name()] = s
}

// AddSecondaryScreen registers a screen that opens as a secondary window
// layered atop the primary one.
func (m *Machine) AddSecondaryScreen(s state.Screen) {
	m.screens[s.Name()] = s
	m.secondary[s.Name()] = true
}

// SetInitial selects the screen the machine starts in.
func (m *Machine) SetInitial(name string) error {
	s, ok := m.screens[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, name)
	}
	m.current = s
	return nil
}

// Current returns the name of the active primary screen.
func (m *Machine) Current() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// OpenSecondary opens the named secondary screen's window and appends it
// to the open secondary set. Part of the state.Host contract.
func (m *Machine) OpenSecondary(name string) error {
	s, ok := m.screens[name]
	if !ok || !m.secondary[name] {
		return fmt.Errorf("%w: secondary %q", ErrUnknownState, name)
	}

	if err := m.openWindow(s); err != nil {
		return err
	}

	for _, open := range m.secondaries {
		if open.Name() == name {
			return nil
		}
	}
	m.secondaries = append(m.secondaries, s)
	return nil
}

// UpdateWidget pushes a widget value through to the platform. Part of the
// state.Host contract.
func (m *Machine) UpdateWidget(windowID, widgetKey string, value any) error {
	return m.platform.UpdateWidget(windowID, widgetKey, value)
}

// Run opens the initial window and drives the dispatch loop until an exit
// event, a fatal transition error, or context cancellation. On return the
// worker pool has been shut down and drained and all windows closed.
func (m *Machine) Run(ctx context.Context) error {
	if m.current == nil {
		return ErrNoInitialScreen
	}
	if err := m.openWindow(m.current); err != nil {
		return err
	}

	err := m.loop(ctx)

	m.pool.Shutdown()
	m.pool.Wait()
	m.closeAll()

	return err
}

// loop reads one event at a time and handles it fully before reading the
// next. Poll timeouts let termination conditions be re-checked with no
// external events.
func (m *Machine) loop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			m.logger.Info("dispatch loop cancelled")
			return nil
		}

		ev, ok := m.platform.Poll(m.cfg.PollTimeout)
		if !ok {
			continue
		}

		if ev.Key == model.EventProgress {
			// Progress updates route to the indicator owner and never
			// cause a transition.
			m.current.Transition(ev)
			continue
		}

		if ev.Window == m.current.Name() {
			if ev.Key == model.EventExit || ev.Key == model.EventClosed {
				m.logger.Info("exit requested", "screen", m.current.Name())
				return nil
			}
			if err := m.applyPrimary(m.current.Transition(ev)); err != nil {
				return err
			}
			continue
		}

		m.routeSecondary(ev)
	}
}

// applyPrimary interprets a transition returned by the primary screen.
func (m *Machine) applyPrimary(tr model.Transition) error {
	switch {
	case tr.Next == model.TargetDownload:
		task := m.cfg.BuildTask(tr.Payload)
		if err := m.pool.Enqueue(task); err != nil {
			m.logger.Error("task rejected", "payload", tr.Payload, "error", err)
			return nil
		}
		m.logger.Info("background task enqueued", "task", task.ID(), "payload", tr.Payload)

	case tr.Next == model.TargetNone:
		// pass

	case tr.Next == m.current.Name():
		// stay

	case m.secondary[tr.Next]:
		return m.OpenSecondary(tr.Next)

	default:
		next, ok := m.screens[tr.Next]
		if !ok {
			return fmt.Errorf("%w: transition target %q from %q", ErrUnknownState, tr.Next, m.current.Name())
		}
		// Open before close: some toolkits treat the last window closing
		// as application exit.
		prev := m.current
		if err := m.openWindow(next); err != nil {
			return err
		}
		m.current = next
		m.logger.Info("primary screen switched", "screen", next.Name())
		return m.closeWindow(prev)
	}
	return nil
}

// routeSecondary forwards an event to the owning secondary screen. The set
// is snapshotted first so removal during iteration cannot skip entries.
func (m *Machine) routeSecondary(ev model.Event) {
	snapshot := make([]state.Screen, len(m.secondaries))
	copy(snapshot, m.secondaries)

	for _, s := range snapshot {
		if ev.Window != s.Name() {
			continue
		}

		if ev.Key == model.EventClosed {
			m.removeSecondary(s)
			return
		}

		if tr := s.Transition(ev); tr.Next == model.TargetNone {
			m.removeSecondary(s)
		}
		return
	}

	m.logger.Debug("event from unknown window ignored", "window", ev.Window, "event", ev.Key)
}

// removeSecondary closes a secondary window and drops it from the set.
func (m *Machine) removeSecondary(s state.Screen) {
	if err := m.closeWindow(s); err != nil {
		m.logger.Error("close secondary window", "window", s.Name(), "error", err)
	}
	for i, open := range m.secondaries {
		if open.Name() == s.Name() {
			m.secondaries = append(m.secondaries[:i], m.secondaries[i+1:]...)
			return
		}
	}
}

// openWindow opens a screen's window. Opening an already-open window is a
// no-op.
func (m *Machine) openWindow(s state.Screen) error {
	if m.open[s.Name()] {
		return nil
	}
	if err := m.platform.OpenWindow(s.Name(), s.Layout()); err != nil {
		return fmt.Errorf("open window %q: %w", s.Name(), err)
	}
	m.open[s.Name()] = true
	return nil
}

// closeWindow closes a screen's window. Closing an unopened window is a
// no-op.
func (m *Machine) closeWindow(s state.Screen) error {
	if !m.open[s.Name()] {
		return nil
	}
	if err := m.platform.CloseWindow(s.Name()); err != nil {
		return fmt.Errorf("close window %q: %w", s.Name(), err)
	}
	delete(m.open, s.Name())
	return nil
}

// closeAll tears down every window the machine holds open.
func (m *Machine) closeAll() {
	for _, s := range m.secondaries {
		if err := m.closeWindow(s); err != nil {
			m.logger.Error("close window", "window", s.Name(), "error", err)
		}
	}
	m.secondaries = nil

	if m.current != nil {
		if err := m.closeWindow(m.current); err != nil {
			m.logger.Error("close window", "window", m.current.Name(), "error", err)
		}
	}
}
