package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Thereal-Vadim/Word-Game/internal/cli/formatter"
	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/round"
	"github.com/Thereal-Vadim/Word-Game/internal/sound"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is one second of the word timer. It names the round and word it
// was scheduled for; a tick for any other word is dropped.
type tickMsg struct {
	roundID string
	seq     int
}

var roundKeys = struct {
	Submit key.Binding
	Hint   key.Binding
	Leave  key.Binding
}{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
	Hint:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "hint")),
	Leave:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "give up")),
}

// roundView plays one round. It owns the controller and is the only place
// controller events are fed from, so events are strictly sequential.
type roundView struct {
	state *SharedState
	ctrl  *round.Controller
	input textinput.Model

	hint     round.HintResult
	feedback string
}

// newRoundViewFor starts a round on levelID/sub.
func newRoundViewFor(state *SharedState, levelID string, sub int) (*roundView, error) {
	ctrl, err := startRound(context.Background(), state.App, levelID, sub)
	if err != nil {
		return nil, err
	}
	return newRoundView(state, ctrl), nil
}

func newRoundView(state *SharedState, ctrl *round.Controller) *roundView {
	ti := textinput.New()
	ti.Placeholder = "Type the word and press Enter..."
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "› "
	ti.Focus()

	return &roundView{state: state, ctrl: ctrl, input: ti}
}

func (v *roundView) ID() ViewID { return ViewRound }

func (v *roundView) Title() string {
	st := v.ctrl.State()
	return fmt.Sprintf("%s/%d", st.LevelID, st.SubLevel)
}

func (v *roundView) ShortHelp() []key.Binding {
	if v.resolved() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next word")),
			roundKeys.Leave,
		}
	}
	return []key.Binding{roundKeys.Submit, roundKeys.Hint, roundKeys.Leave}
}

func (v *roundView) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, v.tick())
}

// tick schedules the next timer second for the current word.
func (v *roundView) tick() tea.Cmd {
	roundID, seq := v.ctrl.ID(), v.ctrl.Seq()
	return tea.Tick(v.state.App.tickInterval(), func(time.Time) tea.Msg {
		return tickMsg{roundID: roundID, seq: seq}
	})
}

func (v *roundView) resolved() bool {
	st := v.ctrl.State()
	return st.Phase == domain.RoundInProgress && st.Resolution.IsResolved()
}

func (v *roundView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return v, v.onTick(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, roundKeys.Leave):
			return v, tea.Batch(popView(), flash(formatter.Dim("Round abandoned.")))
		case v.resolved():
			if msg.Type == tea.KeyEnter || msg.String() == " " {
				return v, v.advance()
			}
			return v, nil
		case key.Matches(msg, roundKeys.Hint):
			return v, v.takeHint()
		case key.Matches(msg, roundKeys.Submit):
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *roundView) onTick(msg tickMsg) tea.Cmd {
	if msg.roundID != v.ctrl.ID() || msg.seq != v.ctrl.Seq() {
		return nil
	}
	res := v.ctrl.Tick()
	switch {
	case res.Ignored:
		return nil
	case res.TimedOut:
		v.state.App.play(sound.CueTimeout)
		v.input.Blur()
		v.feedback = fmt.Sprintf("%s The answer was %s.", formatter.StyleRed.Render("⏱ Time is up."), formatter.Bold(res.Revealed))
		return nil
	}
	return v.tick()
}

func (v *roundView) takeHint() tea.Cmd {
	h, err := v.ctrl.Hint()
	if errors.Is(err, domain.ErrHintExhausted) {
		v.feedback = formatter.Dim("No hints left for this word.")
		return nil
	}
	v.state.App.play(sound.CueHint)
	v.hint = h
	v.feedback = ""
	return nil
}

func (v *roundView) submit() tea.Cmd {
	text := strings.TrimSpace(v.input.Value())
	if text == "" {
		return nil
	}
	out, err := v.ctrl.Submit(text)
	if err != nil {
		return nil
	}
	v.input.Reset()

	switch {
	case out.Correct:
		v.state.App.play(sound.CueCorrect)
		v.input.Blur()
		v.feedback = fmt.Sprintf("%s %s", formatter.StyleGreen.Render("✓ Correct!"), scoreDelta(out.ScoreDelta))
	case out.Exhausted:
		v.state.App.play(sound.CueWrong)
		v.input.Blur()
		v.feedback = fmt.Sprintf("%s The answer was %s.", formatter.StyleRed.Render("✗ Out of attempts."), formatter.Bold(out.Revealed))
	default:
		v.state.App.play(sound.CueWrong)
		v.feedback = fmt.Sprintf("%s %s", formatter.StyleRed.Render(fmt.Sprintf("✗ %q is wrong, %d attempts left.", text, out.AttemptsLeft)), scoreDelta(out.ScoreDelta))
	}
	return nil
}

func (v *roundView) advance() tea.Cmd {
	_, summary, err := v.ctrl.Advance()
	if err != nil {
		return flash(formatter.StyleRed.Render(err.Error()))
	}
	if summary != nil {
		v.state.App.play(sound.CueRoundComplete)
		return replaceView(newSummaryView(v.state, summary, v.ctrl.State().Language))
	}

	v.hint = round.HintResult{}
	v.feedback = ""
	v.input.Reset()
	return tea.Batch(v.input.Focus(), v.tick())
}

func (v *roundView) View() string {
	st := v.ctrl.State()
	pr := v.ctrl.Current()
	cfg := v.ctrl.Config()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		formatter.Dim(fmt.Sprintf("Word %d/%d", pr.Seq, pr.Total)),
		formatter.Dim("Score ")+formatter.Bold(fmt.Sprintf("%d", st.Score)),
		formatter.RenderTimer(st.TimeLeft, cfg.TimerSeconds, 20)))
	if pr.Theme != "" {
		b.WriteString("  " + formatter.StylePurple.Render(pr.Theme) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(formatter.RenderBox("", formatter.Bold(pr.Definition)) + "\n\n")

	b.WriteString(fmt.Sprintf("  %s  %s\n",
		formatter.Dim(fmt.Sprintf("Attempts %d/%d", st.AttemptsLeft, cfg.AttemptBudget)),
		formatter.Dim(fmt.Sprintf("Hints %d/%d", cfg.HintBudget-st.HintLevel, cfg.HintBudget))))
	if hint := formatter.FormatHint(v.hint); hint != "" {
		b.WriteString("  Hint: " + hint + "\n")
	}
	b.WriteString("\n  " + v.input.View() + "\n")
	if v.feedback != "" {
		b.WriteString("\n  " + v.feedback + "\n")
	}
	if v.resolved() {
		b.WriteString("\n  " + formatter.Dim("Press enter for the next word.") + "\n")
	}
	return b.String()
}
