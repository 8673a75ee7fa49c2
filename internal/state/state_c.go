package state

import (
	"github.com/tesseract/screenflow/internal/model"
)

// ScreenC is the secondary overlay screen. It opens on top of the primary
// window and closes itself without affecting the primary screen.
type ScreenC struct{}

// NewScreenC creates screen C.
func NewScreenC() *ScreenC { return &ScreenC{} }

// Name returns the screen identity.
func (s *ScreenC) Name() string { return NameStateC }

// Layout returns the declarative layout of the state C overlay.
func (s *ScreenC) Layout() model.Layout {
	return model.Layout{
		Title:     "state_c_title",
		Frameless: true,
		Rows: []model.Row{
			{model.Label("you_are_in_state_c")},
			{model.Button("close_state_c", EventCloseStateC)},
		},
	}
}

// Transition maps an event on the state C window to the next target. The
// close event returns the close sentinel; everything else stays.
func (s *ScreenC) Transition(ev model.Event) model.Transition {
	if ev.Key == EventCloseStateC {
		return model.Pass()
	}
	return model.Stay(s.Name())
}
