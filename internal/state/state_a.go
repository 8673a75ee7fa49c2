package state

import (
	"github.com/tesseract/screenflow/internal/model"
)

// ScreenA is an alternate primary screen reachable from the initial screen.
type ScreenA struct{}

// NewScreenA creates screen A.
func NewScreenA() *ScreenA { return &ScreenA{} }

// Name returns the screen identity.
func (s *ScreenA) Name() string { return NameStateA }

// Layout returns the declarative layout of the state A window.
func (s *ScreenA) Layout() model.Layout {
	return model.Layout{
		Title: "state_a_title",
		Rows: []model.Row{
			{model.Label("you_are_in_state_a")},
			{
				model.Button("go_to_state_b", EventGoToStateB),
				model.Button("go_back_initial", EventGoToInitial),
				model.Button("exit", model.EventExit),
			},
		},
	}
}

// Transition maps an event on the state A window to the next target.
func (s *ScreenA) Transition(ev model.Event) model.Transition {
	switch ev.Key {
	case EventGoToStateB:
		return model.GoTo(NameStateB)
	case EventGoToInitial:
		return model.GoTo(NameInitial)
	default:
		return model.Stay(s.Name())
	}
}
