package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Thereal-Vadim/Word-Game/internal/cli/formatter"
	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/round"
	"github.com/Thereal-Vadim/Word-Game/internal/sound"
)

const (
	hintCommand = "?"
	quitCommand = ":q"
)

// timerWarnings are the remaining seconds announced in line mode.
var timerWarnings = map[int]bool{10: true, 5: true}

// linePlayer plays a round over plain text streams. Input lines and timer
// ticks are consumed by one select loop, so the controller only ever sees
// one event at a time.
type linePlayer struct {
	app *App
	in  io.Reader
	out io.Writer
}

func newLinePlayer(app *App, in io.Reader, out io.Writer) *linePlayer {
	return &linePlayer{app: app, in: in, out: out}
}

// Run plays ctrl to completion and records it. End of input or ":q"
// abandons the round without recording anything.
func (p *linePlayer) Run(ctx context.Context, ctrl *round.Controller) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, p.in)
	countdown := round.NewCountdown(p.app.tickInterval())
	defer countdown.Stop()

	st := ctrl.State()
	fmt.Fprintf(p.out, "%s  %s\n", formatter.StyleHeader.Render(fmt.Sprintf("%s / %d", strings.ToUpper(st.LevelID), st.SubLevel)),
		formatter.Dim(fmt.Sprintf("%d words, %ds each. %q for a hint, %q to give up.", st.Total, ctrl.Config().TimerSeconds, hintCommand, quitCommand)))

	p.prompt(ctrl)
	countdown.Start(ctrl.Seq())

	for {
		resolved := false
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-lines:
			if !ok || strings.TrimSpace(line) == quitCommand {
				fmt.Fprintln(p.out, formatter.Dim("Round abandoned."))
				return nil
			}
			resolved = p.handleLine(ctrl, line)

		case seq := <-countdown.C():
			if seq != ctrl.Seq() {
				continue
			}
			resolved = p.handleTick(ctrl)
		}

		if !resolved {
			continue
		}
		countdown.Stop()
		_, summary, err := ctrl.Advance()
		if err != nil {
			return err
		}
		if summary != nil {
			p.app.play(sound.CueRoundComplete)
			return p.finish(ctx, ctrl, summary)
		}
		p.prompt(ctrl)
		countdown.Start(ctrl.Seq())
	}
}

func (p *linePlayer) prompt(ctrl *round.Controller) {
	pr := ctrl.Current()
	fmt.Fprintf(p.out, "\n%s %s\n%s ",
		formatter.Dim(fmt.Sprintf("[%d/%d]", pr.Seq, pr.Total)),
		formatter.Bold(pr.Definition),
		formatter.StylePurple.Render("›"))
}

// handleLine applies one input line and reports whether the word is now
// resolved.
func (p *linePlayer) handleLine(ctrl *round.Controller, line string) bool {
	text := strings.TrimSpace(line)
	switch text {
	case "":
		fmt.Fprint(p.out, formatter.StylePurple.Render("›")+" ")
		return false
	case hintCommand:
		h, err := ctrl.Hint()
		if errors.Is(err, domain.ErrHintExhausted) {
			fmt.Fprintf(p.out, "%s\n%s ", formatter.Dim("No hints left for this word."), formatter.StylePurple.Render("›"))
			return false
		}
		p.app.play(sound.CueHint)
		fmt.Fprintf(p.out, "Hint: %s %s\n%s ", formatter.FormatHint(h), scoreDelta(h.ScoreDelta), formatter.StylePurple.Render("›"))
		return false
	}

	out, err := ctrl.Submit(text)
	if err != nil {
		return false
	}
	switch {
	case out.Correct:
		p.app.play(sound.CueCorrect)
		fmt.Fprintf(p.out, "%s %s\n", formatter.StyleGreen.Render("✓ Correct!"), scoreDelta(out.ScoreDelta))
		return true
	case out.Exhausted:
		p.app.play(sound.CueWrong)
		fmt.Fprintf(p.out, "%s The answer was %s.\n", formatter.StyleRed.Render("✗ Out of attempts."), formatter.Bold(out.Revealed))
		return true
	default:
		p.app.play(sound.CueWrong)
		fmt.Fprintf(p.out, "%s %s\n%s ", formatter.StyleRed.Render(fmt.Sprintf("✗ Wrong, %d attempts left.", out.AttemptsLeft)),
			scoreDelta(out.ScoreDelta), formatter.StylePurple.Render("›"))
		return false
	}
}

func (p *linePlayer) handleTick(ctrl *round.Controller) bool {
	res := ctrl.Tick()
	switch {
	case res.Ignored:
		return false
	case res.TimedOut:
		p.app.play(sound.CueTimeout)
		fmt.Fprintf(p.out, "\n%s The answer was %s.\n", formatter.StyleRed.Render("⏱ Time is up."), formatter.Bold(res.Revealed))
		return true
	case timerWarnings[res.TimeLeft]:
		fmt.Fprintf(p.out, "%s ", formatter.StyleYellow.Render(fmt.Sprintf("(%ds)", res.TimeLeft)))
	}
	return false
}

// finish records the round synchronously, so the next round can only start
// from a saved state.
func (p *linePlayer) finish(ctx context.Context, ctrl *round.Controller, summary *round.Summary) error {
	rec, err := p.app.Game.CompleteRound(ctx, summary)
	if rec == nil {
		return err
	}
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, formatter.FormatSummary(summary, rec, ctrl.State().Language))
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			fmt.Fprintln(p.out, formatter.StyleRed.Render("Progress could not be saved: "+err.Error()))
			return nil
		}
		return err
	}
	if rec.NextLevelID != "" && rec.NextUnlocked {
		fmt.Fprintln(p.out, formatter.Dim(fmt.Sprintf("Next: wordgame play %s %d", rec.NextLevelID, rec.NextSubLevel)))
	}
	return nil
}

// scoreDelta renders a score change such as "(+10)" or "(-2)".
func scoreDelta(delta int) string {
	if delta == 0 {
		return ""
	}
	return formatter.Dim(fmt.Sprintf("(%+d)", delta))
}

// readLines feeds the lines of r into a channel until EOF or ctx is done.
// The channel is closed at EOF.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
