package model

// Transition targets with reserved meaning. Any other target must name a
// registered screen; the machine fails fast otherwise.
const (
	// TargetDownload signals the machine to enqueue a background job built
	// from the transition payload.
	TargetDownload = "download"

	// TargetNone is the pass/close sentinel: a no-op for a primary screen,
	// a close request for a secondary screen.
	TargetNone = ""
)

// Transition is the result of a screen's transition function: the next
// target (a screen name or a reserved sentinel) and an optional payload.
type Transition struct {
	Next    string
	Payload string
}

// Stay keeps the current screen active.
func Stay(name string) Transition {
	return Transition{Next: name}
}

// GoTo switches the primary screen to the named screen.
func GoTo(name string) Transition {
	return Transition{Next: name}
}

// Download requests a background job for the given payload.
func Download(payload string) Transition {
	return Transition{Next: TargetDownload, Payload: payload}
}

// Pass is the no-op transition for primary screens and the close request
// for secondary screens.
func Pass() Transition {
	return Transition{Next: TargetNone}
}
