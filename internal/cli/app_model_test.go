package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }
func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func TestNewAppModelStartsAtLevelMap(t *testing.T) {
	m := newAppModel(testApp(t))

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewLevelMap, m.activeView().ID())
}

func TestAppModel_WithRoundOpensRoundOverMap(t *testing.T) {
	m := newAppModel(testApp(t)).withRound("easy", 1)

	require.Len(t, m.viewStack, 2)
	assert.Equal(t, ViewRound, m.activeView().ID())
	assert.Empty(t, m.flash)
}

func TestAppModel_WithRoundLockedStaysOnMap(t *testing.T) {
	m := newAppModel(testApp(t)).withRound("easy", 2)

	require.Len(t, m.viewStack, 1)
	assert.Contains(t, stripANSI(m.flash), "easy/2 is locked")
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := newAppModel(testApp(t))
	v2 := newStubView(ViewDictionary, "Dictionary", "dictionary view")
	v3 := newStubView(ViewSummary, "Summary", "summary view")

	model, cmd := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v2, m.activeView())

	model, cmd = m.Update(replaceViewMsg{view: v3})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v3, m.activeView())

	model, cmd = m.Update(popViewMsg{})
	m = model.(appModel)
	require.NotNil(t, cmd)
	assert.IsType(t, refreshViewMsg{}, cmd())
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewLevelMap, m.activeView().ID())

	// The level map is never popped.
	model, _ = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
}

func TestAppModel_PushRunsViewInit(t *testing.T) {
	m := newAppModel(testApp(t))
	v := newStubView(ViewDictionary, "Dictionary", "")
	v.initCmd = func() tea.Msg { return flashMsg{text: "loaded"} }

	_, cmd := m.Update(pushViewMsg{view: v})
	require.NotNil(t, cmd)
	assert.Equal(t, flashMsg{text: "loaded"}, cmd())
}

func TestAppModel_RefreshBroadcastsToEveryView(t *testing.T) {
	m := newAppModel(testApp(t))
	bottom := newStubView(ViewLevelMap, "Levels", "")
	top := newStubView(ViewDictionary, "Dictionary", "")
	m.viewStack = []View{bottom, top}

	_, _ = m.Update(refreshViewMsg{})

	require.Len(t, bottom.updateSeen, 1)
	require.Len(t, top.updateSeen, 1)
	assert.IsType(t, refreshViewMsg{}, bottom.updateSeen[0])
}

func TestAppModel_WindowResizeForwardsToActiveView(t *testing.T) {
	m := newAppModel(testApp(t))
	v := newStubView(ViewDictionary, "Dictionary", "dictionary")
	m.viewStack = []View{v}

	model, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)
	require.Nil(t, cmd)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	assert.Equal(t, 25, m.state.ContentHeight())
	require.Len(t, v.updateSeen, 1)
	_, ok := v.updateSeen[0].(tea.WindowSizeMsg)
	assert.True(t, ok)
}

func TestAppModel_KeyHandling_GlobalAndCaptured(t *testing.T) {
	t.Run("q quits when active view does not capture input", func(t *testing.T) {
		m := newAppModel(testApp(t))
		m.viewStack = []View{newStubView(ViewLevelMap, "Levels", "levels")}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("round view receives q and does not quit", func(t *testing.T) {
		m := newAppModel(testApp(t))
		v := newStubView(ViewRound, "easy/1", "round")
		m.viewStack = []View{newStubView(ViewLevelMap, "Levels", ""), v}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.Nil(t, cmd)
		assert.False(t, m.quitting)
		require.Len(t, v.updateSeen, 1)
		assert.Equal(t, "q", v.updateSeen[0].(tea.KeyMsg).String())
	})

	t.Run("round view receives esc instead of popping", func(t *testing.T) {
		m := newAppModel(testApp(t))
		v := newStubView(ViewRound, "easy/1", "round")
		m.viewStack = []View{newStubView(ViewLevelMap, "Levels", ""), v}

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)
		require.Len(t, m.viewStack, 2)
		require.Len(t, v.updateSeen, 1)
	})

	t.Run("ctrl+c quits even from a capturing view", func(t *testing.T) {
		m := newAppModel(testApp(t))
		m.viewStack = []View{newStubView(ViewRound, "easy/1", "round")}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
	})

	t.Run("esc pops back stack and clears output", func(t *testing.T) {
		m := newAppModel(testApp(t))
		m.viewStack = []View{
			newStubView(ViewLevelMap, "Levels", "levels"),
			newStubView(ViewSummary, "Summary", "summary"),
		}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.IsType(t, refreshViewMsg{}, cmd())
		require.Len(t, m.viewStack, 1)
		assert.Empty(t, m.lastOutput)
		assert.False(t, m.outputActive)
	})

	t.Run("any key clears the flash", func(t *testing.T) {
		m := newAppModel(testApp(t))
		m.viewStack = []View{newStubView(ViewLevelMap, "Levels", "levels")}

		model, _ := m.Update(flashMsg{text: "Settings saved."})
		m = model.(appModel)
		assert.Contains(t, m.View(), "Settings saved.")

		model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = model.(appModel)
		assert.Empty(t, m.flash)
	})
}

func TestAppModel_WizardCompleteAndOutput(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = []View{
		newStubView(ViewLevelMap, "Levels", "levels"),
		newStubView(ViewForm, "Settings", "wizard"),
	}

	next := func() tea.Msg { return cmdOutputMsg{output: "done"} }

	model, cmd := m.Update(wizardCompleteMsg{nextCmd: next})
	m = model.(appModel)
	require.NotNil(t, cmd)
	require.Len(t, m.viewStack, 1)

	batchMsg := cmd()
	batch, ok := batchMsg.(tea.BatchMsg)
	require.True(t, ok, "expected tea.BatchMsg, got %T", batchMsg)
	var gotOutput, gotRefresh bool
	for _, c := range batch {
		if c == nil {
			continue
		}
		switch c().(type) {
		case cmdOutputMsg:
			gotOutput = true
		case refreshViewMsg:
			gotRefresh = true
		}
	}
	assert.True(t, gotOutput, "batch should contain cmdOutputMsg")
	assert.True(t, gotRefresh, "batch should contain refreshViewMsg")

	model, cmd = m.Update(cmdOutputMsg{output: "hello"})
	m = model.(appModel)
	require.Nil(t, cmd)
	assert.Contains(t, m.View(), "hello")
}

func TestAppModel_BreadcrumbsAndStatusBar(t *testing.T) {
	m := newAppModel(testApp(t))
	dict := newStubView(ViewDictionary, "Dictionary easy", "words")
	dict.shortHelp = []key.Binding{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reveal"))}
	m.viewStack = []View{newStubView(ViewLevelMap, "Levels", ""), dict}

	view := stripANSI(m.View())
	assert.Contains(t, view, "wordgame › Levels › Dictionary easy")
	assert.Contains(t, view, "r: reveal")
	assert.Contains(t, view, "esc: back")
	assert.Contains(t, view, "q: quit")

	m.viewStack = []View{newStubView(ViewLevelMap, "Levels", ""), newStubView(ViewRound, "easy/1", "")}
	view = stripANSI(m.View())
	assert.NotContains(t, view, "q: quit", "a round takes every key")
}

func TestViewCapturesInput(t *testing.T) {
	assert.False(t, viewCapturesInput(nil))
	assert.True(t, viewCapturesInput(newStubView(ViewRound, "Round", "")))
	assert.True(t, viewCapturesInput(newStubView(ViewForm, "Form", "")))
	assert.False(t, viewCapturesInput(newStubView(ViewLevelMap, "Levels", "")))
	assert.False(t, viewCapturesInput(newStubView(ViewSummary, "Summary", "")))
	assert.True(t, viewCapturesInput(&summaryView{saving: true}))
	assert.False(t, viewCapturesInput(&summaryView{}))
	assert.False(t, viewCapturesInput(newStubView(ViewDictionary, "Dictionary", "")))
}

func TestAppModel_OutputViewportScroll(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = []View{newStubView(ViewLevelMap, "Levels", "levels")}

	// Height 10 leaves a content height of 5.
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = model.(appModel)

	lines := make([]string, 50)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	content := strings.Join(lines, "\n")

	model, _ = m.Update(cmdOutputMsg{output: content})
	m = model.(appModel)
	assert.True(t, m.outputActive)

	view := m.View()
	assert.Contains(t, view, "line 1")
	assert.Contains(t, stripANSI(view), "[TOP]")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(appModel)
	assert.True(t, m.outputActive)

	// A non-scroll key dismisses and is not forwarded.
	v := m.activeView().(*stubView)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = model.(appModel)
	assert.False(t, m.outputActive)
	assert.Empty(t, m.lastOutput)
	for _, msg := range v.updateSeen {
		_, isKey := msg.(tea.KeyMsg)
		assert.False(t, isKey)
	}
}

func TestAppModel_OutputShortContentNoScroll(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = []View{newStubView(ViewLevelMap, "Levels", "levels")}

	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = model.(appModel)

	model, _ = m.Update(cmdOutputMsg{output: "short output"})
	m = model.(appModel)
	assert.True(t, m.outputActive)

	view := m.View()
	assert.Contains(t, view, "short output")
	assert.NotContains(t, view, "pgup/pgdn")
}

func TestIsOutputScrollKey(t *testing.T) {
	scrollKeys := []tea.KeyType{
		tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD,
	}
	for _, k := range scrollKeys {
		assert.True(t, isOutputScrollKey(tea.KeyMsg{Type: k}), "expected scroll key: %v", k)
	}

	nonScrollKeys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyRunes, Runes: []rune{'d'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyEnter},
	}
	for _, k := range nonScrollKeys {
		assert.False(t, isOutputScrollKey(k), "expected non-scroll key: %v", k)
	}
}
