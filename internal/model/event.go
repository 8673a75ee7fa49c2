package model

// Reserved event keys with machine-level meaning. Per-screen navigation keys
// live with the screens that declare them in their layouts.
const (
	// EventExit requests termination of the main dispatch loop.
	EventExit = "-exit-"

	// EventClosed is posted by the GUI driver when a window is closed
	// through the window manager rather than an in-layout button.
	EventClosed = "-window_closed-"

	// EventProgress carries a background job progress percentage in
	// Values under ValueProgress. It never causes a state transition.
	EventProgress = "-progress-"
)

// ValueProgress is the Values key holding the progress percentage of an
// EventProgress event.
const ValueProgress = "progress"

// Values holds the current input field values of a window at the time an
// event fired, keyed by widget key.
type Values map[string]any

// String returns the value under key as a string, or "" when absent or of
// another type.
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// Int returns the value under key as an int. Both int and float64 entries
// are accepted since decoded payloads may carry either.
func (v Values) Int(key string) int {
	switch n := v[key].(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

// Event is one GUI event as delivered by the platform driver: the identity
// of the window it originated from, the event key, and a snapshot of the
// window's input values.
type Event struct {
	Window string
	Key    string
	Values Values
}

// ProgressEvent builds the application-level event a worker uses to hand a
// progress percentage back into the main loop's event stream.
func ProgressEvent(window string, percent int) Event {
	return Event{
		Window: window,
		Key:    EventProgress,
		Values: Values{ValueProgress: percent},
	}
}
