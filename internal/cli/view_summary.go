package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Thereal-Vadim/Word-Game/internal/cli/formatter"
	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/round"
	"github.com/Thereal-Vadim/Word-Game/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// roundRecordedMsg reports that a finished round has been saved.
type roundRecordedMsg struct {
	roundID  string
	recorded *service.RoundRecorded
	err      error
}

// summaryView shows a finished round. It records the round on Init and
// only offers the next round once the record has landed.
type summaryView struct {
	state    *SharedState
	summary  *round.Summary
	lang     domain.Language
	recorded *service.RoundRecorded
	saving   bool
	err      error
}

func newSummaryView(state *SharedState, summary *round.Summary, lang domain.Language) *summaryView {
	return &summaryView{state: state, summary: summary, lang: lang, saving: true}
}

func (v *summaryView) ID() ViewID    { return ViewSummary }
func (v *summaryView) Title() string { return "Summary" }

func (v *summaryView) ShortHelp() []key.Binding {
	if v.saving {
		return nil
	}
	var keys []key.Binding
	if v.canContinue() {
		keys = append(keys, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next sub-level")))
	}
	return append(keys, key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "replay")))
}

func (v *summaryView) Init() tea.Cmd {
	game := v.state.App.Game
	summary := v.summary
	return func() tea.Msg {
		rec, err := game.CompleteRound(context.Background(), summary)
		return roundRecordedMsg{roundID: summary.RoundID, recorded: rec, err: err}
	}
}

// capturesKeys holds esc and q until the round is saved.
func (v *summaryView) capturesKeys() bool { return v.saving }

func (v *summaryView) canContinue() bool {
	return v.recorded != nil && v.recorded.NextLevelID != "" && v.recorded.NextUnlocked
}

func (v *summaryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case roundRecordedMsg:
		if msg.roundID != v.summary.RoundID {
			return v, nil
		}
		v.saving = false
		v.recorded = msg.recorded
		v.err = msg.err
		return v, nil

	case tea.KeyMsg:
		if v.saving {
			return v, nil
		}
		switch msg.String() {
		case "enter":
			if v.canContinue() {
				return v, v.start(v.recorded.NextLevelID, v.recorded.NextSubLevel)
			}
		case "r":
			return v, v.start(v.summary.LevelID, v.summary.SubLevel)
		}
	}
	return v, nil
}

func (v *summaryView) start(levelID string, sub int) tea.Cmd {
	rv, err := newRoundViewFor(v.state, levelID, sub)
	if err != nil {
		return flash(formatter.StyleRed.Render(err.Error()))
	}
	return replaceView(rv)
}

func (v *summaryView) View() string {
	var out string
	if v.saving || v.recorded != nil {
		out = "\n" + formatter.FormatSummary(v.summary, v.recorded, v.lang)
	} else {
		out = "\n" + formatter.FormatRoundResult(v.summary, v.lang)
	}
	switch {
	case v.err != nil && errors.Is(v.err, domain.ErrPersistence):
		out += "\n  " + formatter.StyleRed.Render("Progress could not be saved: "+v.err.Error()) + "\n"
	case v.err != nil:
		out += "\n  " + formatter.StyleRed.Render(v.err.Error()) + "\n"
	case v.canContinue():
		out += "\n  " + formatter.Dim(fmt.Sprintf("Press enter to play %s/%d.", v.recorded.NextLevelID, v.recorded.NextSubLevel)) + "\n"
	}
	return out
}
