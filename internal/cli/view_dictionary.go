package cli

import (
	"context"

	"github.com/Thereal-Vadim/Word-Game/internal/cli/formatter"
	"github.com/Thereal-Vadim/Word-Game/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type dictionaryLoadedMsg struct {
	entries []service.DictionaryEntry
	err     error
}

// dictionaryView pages through the words of one level, or only the
// difficult words.
type dictionaryView struct {
	state         *SharedState
	levelID       string
	difficultOnly bool
	reveal        bool

	entries []service.DictionaryEntry
	err     error
	loaded  bool
	vp      viewport.Model
}

func newDictionaryView(state *SharedState, levelID string) *dictionaryView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.KeyMap = outputViewportKeyMap()
	return &dictionaryView{state: state, levelID: levelID, vp: vp}
}

func (v *dictionaryView) ID() ViewID { return ViewDictionary }

func (v *dictionaryView) Title() string {
	switch {
	case v.difficultOnly:
		return "Difficult words"
	case v.levelID != "":
		return "Dictionary " + v.levelID
	default:
		return "Dictionary"
	}
}

func (v *dictionaryView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "difficult/all")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reveal")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}

func (v *dictionaryView) Init() tea.Cmd {
	return v.load()
}

func (v *dictionaryView) load() tea.Cmd {
	dict := v.state.App.Dictionary
	levelID, difficultOnly := v.levelID, v.difficultOnly
	return func() tea.Msg {
		ctx := context.Background()
		if difficultOnly {
			entries, err := dict.Difficult(ctx)
			return dictionaryLoadedMsg{entries: entries, err: err}
		}
		entries, err := dict.Entries(ctx, levelID)
		return dictionaryLoadedMsg{entries: entries, err: err}
	}
}

func (v *dictionaryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dictionaryLoadedMsg:
		v.loaded = true
		v.entries, v.err = msg.entries, msg.err
		v.render()
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			v.difficultOnly = !v.difficultOnly
			return v, v.load()
		case "r":
			v.reveal = !v.reveal
			v.render()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *dictionaryView) render() {
	switch {
	case v.err != nil:
		v.vp.SetContent("\n" + formatter.StyleRed.Render("Error: "+v.err.Error()))
	case v.difficultOnly && len(v.entries) == 0:
		v.vp.SetContent("\n" + formatter.Dim("No difficult words. Nice."))
	default:
		v.vp.SetContent("\n" + formatter.FormatDictionary(v.entries, v.reveal || v.difficultOnly))
	}
	v.vp.GotoTop()
}

func (v *dictionaryView) View() string {
	if !v.loaded {
		return "\n  " + formatter.Dim("Loading words...")
	}
	return v.vp.View()
}
