package gui

import (
	"fmt"
	"sync"
	"time"

	"github.com/tesseract/screenflow/internal/model"
)

// headlessBuffer bounds the pending event channel of the headless driver.
const headlessBuffer = 64

// Headless is an in-memory Platform: windows are bookkeeping entries and
// events are fed through a channel. It backs tests and headless runs.
type Headless struct {
	mu      sync.Mutex
	windows map[string]model.Layout
	widgets map[string]map[string]any
	events  chan model.Event
}

// NewHeadless creates a headless platform driver.
func NewHeadless() *Headless {
	return &Headless{
		windows: make(map[string]model.Layout),
		widgets: make(map[string]map[string]any),
		events:  make(chan model.Event, headlessBuffer),
	}
}

// OpenWindow records the window as open.
func (h *Headless) OpenWindow(id string, layout model.Layout) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.windows[id] = layout
	h.widgets[id] = make(map[string]any)
	return nil
}

// CloseWindow removes the window.
func (h *Headless) CloseWindow(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.windows[id]; !ok {
		return fmt.Errorf("close window: %q is not open", id)
	}
	delete(h.windows, id)
	delete(h.widgets, id)
	return nil
}

// UpdateWidget records the last value pushed to a widget.
func (h *Headless) UpdateWidget(windowID, widgetKey string, value any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	w, ok := h.widgets[windowID]
	if !ok {
		return fmt.Errorf("update widget: window %q is not open", windowID)
	}
	w[widgetKey] = value
	return nil
}

// Poll waits for the next event with a bounded timeout.
func (h *Headless) Poll(timeout time.Duration) (model.Event, bool) {
	select {
	case ev := <-h.events:
		return ev, true
	case <-time.After(timeout):
		return model.Event{}, false
	}
}

// PostEvent delivers an event into the stream. Safe for any goroutine.
// Events are dropped when the buffer is full so a worker can never block
// on a loop that already stopped polling.
func (h *Headless) PostEvent(ev model.Event) {
	select {
	case h.events <- ev:
	default:
	}
}

// IsOpen reports whether a window is currently open.
func (h *Headless) IsOpen(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, ok := h.windows[id]
	return ok
}

// OpenWindows returns the identities of all open windows.
func (h *Headless) OpenWindows() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]string, 0, len(h.windows))
	for id := range h.windows {
		ids = append(ids, id)
	}
	return ids
}

// WidgetValue returns the last value pushed to a widget, if any.
func (h *Headless) WidgetValue(windowID, widgetKey string) (any, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	w, ok := h.widgets[windowID]
	if !ok {
		return nil, false
	}
	v, ok := w[widgetKey]
	return v, ok
}
