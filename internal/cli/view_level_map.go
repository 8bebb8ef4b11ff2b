package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Thereal-Vadim/Word-Game/internal/cli/formatter"
	"github.com/Thereal-Vadim/Word-Game/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// levelsLoadedMsg carries a fresh level map.
type levelsLoadedMsg struct {
	levels []service.LevelView
}

// levelMapView lists every sub-level of every level; enter plays the one
// under the cursor.
type levelMapView struct {
	state  *SharedState
	levels []service.LevelView
	rows   []service.SubLevelView
	cursor int
	loaded bool
}

func newLevelMapView(state *SharedState) *levelMapView {
	return &levelMapView{state: state}
}

func (v *levelMapView) ID() ViewID    { return ViewLevelMap }
func (v *levelMapView) Title() string { return "Levels" }

func (v *levelMapView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dictionary")),
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "stats")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset level")),
	}
}

func (v *levelMapView) Init() tea.Cmd {
	return v.load()
}

func (v *levelMapView) load() tea.Cmd {
	game := v.state.App.Game
	return func() tea.Msg {
		return levelsLoadedMsg{levels: game.Levels(context.Background())}
	}
}

func (v *levelMapView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case levelsLoadedMsg:
		v.loaded = true
		v.levels = msg.levels
		v.rows = v.rows[:0]
		for _, lv := range msg.levels {
			v.rows = append(v.rows, lv.SubLevels...)
		}
		v.cursor = min(v.cursor, max(len(v.rows)-1, 0))
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		return v.updateKey(msg)
	}
	return v, nil
}

func (v *levelMapView) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.rows)-1 {
			v.cursor++
		}
	case "enter":
		if sel, ok := v.selected(); ok {
			return v, v.play(sel.LevelID, sel.SubLevel)
		}
	case "n":
		levelID, sub, ok := v.state.App.Game.NextPlayable(context.Background())
		if !ok {
			return v, flash(formatter.Dim("Every word is mastered. Press x to reset a level."))
		}
		return v, v.play(levelID, sub)
	case "d":
		levelID := ""
		if sel, ok := v.selected(); ok {
			levelID = sel.LevelID
		}
		return v, pushView(newDictionaryView(v.state, levelID))
	case "i":
		return v, v.showStatus()
	case "s":
		return v, v.editSettings()
	case "x":
		if sel, ok := v.selected(); ok {
			return v, v.confirmReset(sel.LevelID)
		}
	}
	return v, nil
}

func (v *levelMapView) selected() (service.SubLevelView, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return service.SubLevelView{}, false
	}
	return v.rows[v.cursor], true
}

func (v *levelMapView) play(levelID string, sub int) tea.Cmd {
	rv, err := newRoundViewFor(v.state, levelID, sub)
	if err != nil {
		return flash(formatter.StyleRed.Render(err.Error()))
	}
	return pushView(rv)
}

func (v *levelMapView) showStatus() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		view, err := app.Status.Status(context.Background(), 10)
		if err != nil {
			return flashMsg{text: formatter.StyleRed.Render(err.Error())}
		}
		return cmdOutputMsg{output: "\n" + formatter.FormatStatus(view)}
	}
}

func (v *levelMapView) editSettings() tea.Cmd {
	state := v.state
	edited := state.Settings
	return startWizardCmd(state, "Settings", settingsForm(&edited), func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			if err := state.App.Settings.Update(ctx, edited); err != nil {
				return flashMsg{text: formatter.StyleRed.Render(err.Error())}
			}
			state.ReloadSettings(ctx)
			return flashMsg{text: formatter.StyleGreen.Render("Settings saved.")}
		}
	})
}

func (v *levelMapView) confirmReset(levelID string) tea.Cmd {
	app := v.state.App
	confirmed := new(bool)
	return startWizardCmd(v.state, "Reset", resetForm(levelID, confirmed), func() tea.Cmd {
		if !*confirmed {
			return flash(formatter.Dim("Cancelled."))
		}
		return func() tea.Msg {
			if err := app.Game.Reset(context.Background(), levelID); err != nil {
				return flashMsg{text: formatter.StyleRed.Render(err.Error())}
			}
			return flashMsg{text: formatter.StyleGreen.Render(fmt.Sprintf("Level %s reset.", levelID))}
		}
	})
}

func (v *levelMapView) View() string {
	if !v.loaded {
		return "\n  " + formatter.Dim("Loading levels...")
	}
	if len(v.rows) == 0 {
		return "\n  " + formatter.Dim("No levels in the word database.")
	}

	var b strings.Builder
	row := 0
	for _, lv := range v.levels {
		done, total := lv.Progress()
		b.WriteString(fmt.Sprintf("\n  %s  %s  %s\n",
			formatter.StyleHeader.Render(strings.ToUpper(lv.ID)),
			formatter.RenderProgress(done, total, 10),
			formatter.Dim(fmt.Sprintf("%d/%d ★", lv.TotalStars, lv.MaxStars))))

		for _, s := range lv.SubLevels {
			cursor := "    "
			nameStyle := formatter.StyleFg
			if !s.Unlocked {
				nameStyle = formatter.StyleDim
			}
			if row == v.cursor {
				cursor = "  " + formatter.StyleGreen.Render("▸ ")
				nameStyle = formatter.StyleBold
			}
			b.WriteString(fmt.Sprintf("%s%2d  %s  %s  %s\n",
				cursor,
				s.SubLevel,
				nameStyle.Render(formatter.PadRight(s.Theme, 20)),
				formatter.Dim(fmt.Sprintf("%2d/%-2d", s.Mastered, s.Words)),
				formatter.SubLevelBadge(s)))
			row++
		}
	}
	return b.String()
}
