package state

import (
	"github.com/tesseract/screenflow/internal/model"
)

// ScreenB is an alternate primary screen reachable from the initial screen
// and from screen A.
type ScreenB struct{}

// NewScreenB creates screen B.
func NewScreenB() *ScreenB { return &ScreenB{} }

// Name returns the screen identity.
func (s *ScreenB) Name() string { return NameStateB }

// Layout returns the declarative layout of the state B window.
func (s *ScreenB) Layout() model.Layout {
	return model.Layout{
		Title: "state_b_title",
		Rows: []model.Row{
			{model.Label("you_are_in_state_b")},
			{
				model.Button("go_to_state_a", EventGoToStateA),
				model.Button("go_back_initial", EventGoToInitial),
				model.Button("exit", model.EventExit),
			},
		},
	}
}

// Transition maps an event on the state B window to the next target.
func (s *ScreenB) Transition(ev model.Event) model.Transition {
	switch ev.Key {
	case EventGoToStateA:
		return model.GoTo(NameStateA)
	case EventGoToInitial:
		return model.GoTo(NameInitial)
	default:
		return model.Stay(s.Name())
	}
}
