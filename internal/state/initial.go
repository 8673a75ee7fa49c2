package state

import (
	"log/slog"

	"github.com/tesseract/screenflow/internal/model"
)

// InitialScreen is the entry screen: navigation to the other screens, a URL
// entry with a download action, and the progress indicator for background
// jobs.
type InitialScreen struct {
	host   Host
	logger *slog.Logger
}

// NewInitialScreen creates the initial screen.
func NewInitialScreen(host Host, logger *slog.Logger) *InitialScreen {
	return &InitialScreen{host: host, logger: logger}
}

// Name returns the screen identity.
func (s *InitialScreen) Name() string { return NameInitial }

// Layout returns the declarative layout of the initial window.
func (s *InitialScreen) Layout() model.Layout {
	return model.Layout{
		Title: "initial_title",
		Rows: []model.Row{
			{model.Label("welcome_text")},
			{
				model.Button("go_to_state_a", EventGoToStateA),
				model.Button("go_to_state_b", EventGoToStateB),
				model.Button("go_to_state_c", EventGoToStateC),
				model.Button("exit", model.EventExit),
			},
			{model.Label("file_url_label")},
			{
				model.Input(ValueFileURL),
				model.Button("download", EventDownload),
			},
			{model.Progress(KeyDownloadProgress)},
		},
	}
}

// Transition maps an event on the initial window to the next target.
func (s *InitialScreen) Transition(ev model.Event) model.Transition {
	switch ev.Key {
	case EventGoToStateA:
		return model.GoTo(NameStateA)
	case EventGoToStateB:
		return model.GoTo(NameStateB)
	case EventGoToStateC:
		if err := s.host.OpenSecondary(NameStateC); err != nil {
			s.logger.Error("open secondary window", "name", NameStateC, "error", err)
		}
		return model.Pass()
	case EventDownload:
		url := ev.Values.String(ValueFileURL)
		if url == "" {
			return model.Stay(s.Name())
		}
		return model.Download(url)
	case model.EventProgress:
		s.applyProgress(ev.Values.Int(model.ValueProgress))
		return model.Pass()
	default:
		return model.Stay(s.Name())
	}
}

// applyProgress updates the rendered indicator. Reports of 100 and above
// reset it back to hidden/zero.
func (s *InitialScreen) applyProgress(percent int) {
	value := model.ProgressValue{Percent: percent, Visible: true}
	if percent >= 100 {
		value = model.ProgressValue{}
	}
	if err := s.host.UpdateWidget(s.Name(), KeyDownloadProgress, value); err != nil {
		s.logger.Debug("progress update dropped", "error", err)
	}
}
