package state

import (
	"github.com/tesseract/screenflow/internal/model"
)

// Registered screen names.
const (
	NameInitial = "initial"
	NameStateA  = "state_a"
	NameStateB  = "state_b"
	NameStateC  = "state_c"
)

// Navigation and action event keys declared by the screen layouts.
const (
	EventGoToInitial = "-go_to_initial-"
	EventGoToStateA  = "-go_to_state_a-"
	EventGoToStateB  = "-go_to_state_b-"
	EventGoToStateC  = "-go_to_state_c-"
	EventCloseStateC = "-close_state_c-"
	EventDownload    = "-download-"
)

// ValueFileURL is the input value key holding the URL to download.
const ValueFileURL = "file_url"

// KeyDownloadProgress is the widget key of the progress indicator on the
// initial screen.
const KeyDownloadProgress = "download_progress"

// Host is the narrow view of the state machine a screen may call back
// into: opening a secondary window and pushing widget updates. It keeps
// screens free of window lifecycle management.
type Host interface {
	OpenSecondary(name string) error
	UpdateWidget(windowID, widgetKey string, value any) error
}

// Screen is one application screen. Layout must be a pure function so the
// window can be re-created on every open. Transition maps an event to the
// next target; unrecognized events return the screen's own name (stay).
type Screen interface {
	Name() string
	Layout() model.Layout
	Transition(ev model.Event) model.Transition
}
