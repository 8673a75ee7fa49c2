package gui

import (
	"time"

	"github.com/tesseract/screenflow/internal/model"
)

// Platform is the rendering toolkit as seen by the state machine core.
// OpenWindow and CloseWindow are not required to be idempotent; the machine
// tracks which windows it holds open. PostEvent must be safe to call from
// any goroutine; it is the hand-off used by workers to marshal progress
// back into the event stream.
type Platform interface {
	// OpenWindow creates and shows a window for the given identity.
	OpenWindow(id string, layout model.Layout) error

	// CloseWindow destroys the window with the given identity.
	CloseWindow(id string) error

	// UpdateWidget changes the rendered value of a widget in an open
	// window. Progress indicators take a model.ProgressValue.
	UpdateWidget(windowID, widgetKey string, value any) error

	// Poll blocks until the next event from any open window arrives or
	// the timeout elapses. The second return is false on timeout.
	Poll(timeout time.Duration) (model.Event, bool)

	// PostEvent delivers an application-level event into the stream.
	PostEvent(ev model.Event)
}
