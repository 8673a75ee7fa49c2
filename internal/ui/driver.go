package ui

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tesseract/screenflow/internal/model"
)

// eventBuffer bounds the pending event channel of the Fyne driver.
const eventBuffer = 64

// windowState tracks one open window and its addressable widgets.
type windowState struct {
	win      fyne.Window
	entries  map[string]*widget.Entry
	progress map[string]*widget.ProgressBar
	labels   map[string]*widget.Label
}

// Driver renders layouts as Fyne windows and implements gui.Platform.
// The dispatch loop calls it from its own goroutine; all toolkit access
// is funneled through fyne.DoAndWait.
type Driver struct {
	app    fyne.App
	loc    *Localization
	logger *slog.Logger

	mu      sync.Mutex
	windows map[string]*windowState
	events  chan model.Event
}

// NewDriver creates a Fyne platform driver.
func NewDriver(app fyne.App, loc *Localization, logger *slog.Logger) *Driver {
	return &Driver{
		app:     app,
		loc:     loc,
		logger:  logger,
		windows: make(map[string]*windowState),
		events:  make(chan model.Event, eventBuffer),
	}
}

// OpenWindow builds and shows a window for the given layout.
func (d *Driver) OpenWindow(id string, layout model.Layout) error {
	d.mu.Lock()
	if _, ok := d.windows[id]; ok {
		d.mu.Unlock()
		return fmt.Errorf("open window: %q is already open", id)
	}
	d.mu.Unlock()

	ws := &windowState{
		entries:  make(map[string]*widget.Entry),
		progress: make(map[string]*widget.ProgressBar),
		labels:   make(map[string]*widget.Label),
	}

	fyne.DoAndWait(func() {
		win := d.app.NewWindow(d.loc.GetText(layout.Title))
		ws.win = win

		rows := make([]fyne.CanvasObject, 0, len(layout.Rows))
		for _, row := range layout.Rows {
			cells := make([]fyne.CanvasObject, 0, len(row))
			for _, w := range row {
				cells = append(cells, d.buildWidget(id, w, ws))
			}
			rows = append(rows, container.NewHBox(cells...))
		}
		win.SetContent(container.NewVBox(rows...))

		if layout.Frameless {
			win.SetFixedSize(true)
		}

		// Closing from the window manager is an event, not a direct
		// close; the dispatch loop decides what happens next.
		win.SetCloseIntercept(func() {
			d.PostEvent(model.Event{Window: id, Key: model.EventClosed})
		})

		win.Show()
	})

	d.mu.Lock()
	d.windows[id] = ws
	d.mu.Unlock()

	d.logger.Debug("window opened", "window", id)
	return nil
}

// CloseWindow closes and forgets the window.
func (d *Driver) CloseWindow(id string) error {
	d.mu.Lock()
	ws, ok := d.windows[id]
	if !ok {
		d.mu.Unlock()
		return fmt.Errorf("close window: %q is not open", id)
	}
	delete(d.windows, id)
	d.mu.Unlock()

	fyne.DoAndWait(func() {
		ws.win.SetCloseIntercept(nil)
		ws.win.Close()
	})

	d.logger.Debug("window closed", "window", id)
	return nil
}

// UpdateWidget pushes a new value to a widget in an open window.
func (d *Driver) UpdateWidget(windowID, widgetKey string, value any) error {
	d.mu.Lock()
	ws, ok := d.windows[windowID]
	d.mu.Unlock()
	if !ok {
		return fmt.Errorf("update widget: window %q is not open", windowID)
	}

	switch v := value.(type) {
	case model.ProgressValue:
		bar, ok := ws.progress[widgetKey]
		if !ok {
			return fmt.Errorf("update widget: no progress bar %q in window %q", widgetKey, windowID)
		}
		fyne.DoAndWait(func() {
			bar.SetValue(float64(v.Percent) / 100)
			if v.Visible {
				bar.Show()
			} else {
				bar.Hide()
			}
		})
		return nil
	case string:
		if entry, ok := ws.entries[widgetKey]; ok {
			fyne.DoAndWait(func() { entry.SetText(v) })
			return nil
		}
		if label, ok := ws.labels[widgetKey]; ok {
			fyne.DoAndWait(func() { label.SetText(v) })
			return nil
		}
		return fmt.Errorf("update widget: no text widget %q in window %q", widgetKey, windowID)
	default:
		return fmt.Errorf("update widget: unsupported value %T for %q", value, widgetKey)
	}
}

// Poll waits for the next user event with a bounded timeout.
func (d *Driver) Poll(timeout time.Duration) (model.Event, bool) {
	select {
	case ev := <-d.events:
		return ev, true
	case <-time.After(timeout):
		return model.Event{}, false
	}
}

// PostEvent delivers an event into the stream. Safe for any goroutine.
// Events are dropped when the buffer is full so a worker can never block
// on a loop that already stopped polling.
func (d *Driver) PostEvent(ev model.Event) {
	select {
	case d.events <- ev:
	default:
		d.logger.Warn("event dropped, buffer full", "window", ev.Window, "key", ev.Key)
	}
}

// buildWidget creates the Fyne widget for one layout cell. Runs on the
// UI thread.
func (d *Driver) buildWidget(windowID string, w model.Widget, ws *windowState) fyne.CanvasObject {
	switch w.Kind {
	case model.WidgetText:
		label := widget.NewLabel(d.loc.GetText(w.Text))
		if w.Key != "" {
			ws.labels[w.Key] = label
		}
		return label
	case model.WidgetInput:
		entry := widget.NewEntry()
		ws.entries[w.Key] = entry
		return entry
	case model.WidgetProgress:
		bar := widget.NewProgressBar()
		bar.Hide()
		ws.progress[w.Key] = bar
		return bar
	case model.WidgetButton:
		key := w.Key
		return widget.NewButton(d.loc.GetText(w.Text), func() {
			d.PostEvent(model.Event{
				Window: windowID,
				Key:    key,
				Values: d.collectValues(windowID),
			})
		})
	default:
		return widget.NewLabel(w.Text)
	}
}

// collectValues snapshots the current input values of a window so an
// event carries what the user saw when they acted.
func (d *Driver) collectValues(windowID string) model.Values {
	d.mu.Lock()
	ws, ok := d.windows[windowID]
	d.mu.Unlock()
	if !ok {
		return model.Values{}
	}

	values := make(model.Values, len(ws.entries))
	for key, entry := range ws.entries {
		values[key] = entry.Text
	}
	return values
}
