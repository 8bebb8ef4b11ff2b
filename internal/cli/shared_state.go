package cli

import (
	"context"

	"github.com/Thereal-Vadim/Word-Game/internal/cli/formatter"
	"github.com/Thereal-Vadim/Word-Game/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Settings as of the last load or save; drives the round language and theme.
	Settings domain.Settings

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	s := &SharedState{App: app}
	s.ReloadSettings(context.Background())
	return s
}

// ReloadSettings re-reads the settings and applies the theme.
func (s *SharedState) ReloadSettings(ctx context.Context) {
	s.Settings = s.App.Settings.Get(ctx)
	formatter.UseTheme(s.Settings.Theme)
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator), the flash line,
// and status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
