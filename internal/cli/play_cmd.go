package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/round"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPlayCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "play [level] [sub-level]",
		Short: "Play a round (defaults to the next unfinished sub-level)",
		Long: `Play one sub-level. Without arguments the first unlocked sub-level that
is not yet completed is chosen. In a terminal the full-screen interface
starts; with --plain or when stdin is not a terminal the round is played
line by line: type the answer, "?" for a hint, ":q" to give up.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			levelID, sub, err := resolveTarget(ctx, app, args)
			if err != nil {
				return err
			}

			if !plain && app.interactive() {
				return runTUI(app, levelID, sub)
			}

			ctrl, err := startRound(ctx, app, levelID, sub)
			if err != nil {
				return err
			}
			p := newLinePlayer(app, cmd.InOrStdin(), cmd.OutOrStdout())
			return p.Run(ctx, ctrl)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Play line by line instead of in the full-screen interface")

	return cmd
}

// resolveTarget turns the optional [level] [sub-level] arguments into a
// concrete sub-level.
func resolveTarget(ctx context.Context, app *App, args []string) (string, int, error) {
	if len(args) == 0 {
		levelID, sub, ok := app.Game.NextPlayable(ctx)
		if !ok {
			return "", 0, errors.New("every word is mastered; run 'wordgame reset' to play again")
		}
		return levelID, sub, nil
	}

	levelID := args[0]
	if len(args) == 2 {
		sub, err := strconv.Atoi(args[1])
		if err != nil || sub < 1 {
			return "", 0, fmt.Errorf("sub-level must be a positive number, got %q", args[1])
		}
		return levelID, sub, nil
	}

	for _, lv := range app.Game.Levels(ctx) {
		if lv.ID != levelID {
			continue
		}
		for _, s := range lv.SubLevels {
			if s.Unlocked && !s.Completed {
				return levelID, s.SubLevel, nil
			}
		}
		for _, s := range lv.SubLevels {
			if s.Unlocked && s.Mastered < s.Words {
				return levelID, s.SubLevel, nil
			}
		}
		return levelID, 1, nil
	}
	return "", 0, fmt.Errorf("unknown level %q", levelID)
}

// startRound starts a round and turns the expected failures into messages
// a player can act on.
func startRound(ctx context.Context, app *App, levelID string, sub int) (*round.Controller, error) {
	ctrl, err := app.Game.StartRound(ctx, levelID, sub, app.RoundOptions...)
	switch {
	case errors.Is(err, domain.ErrSubLevelLocked):
		return nil, fmt.Errorf("%s/%d is locked; finish %s/%d first", levelID, sub, levelID, sub-1)
	case errors.Is(err, domain.ErrNoWordsAvailable):
		return nil, fmt.Errorf("%s/%d has no words left to play; run 'wordgame reset %s' to replay it", levelID, sub, levelID)
	case err != nil:
		return nil, err
	}
	return ctrl, nil
}

// runTUI runs the full-screen interface, opening a round on levelID/sub
// when levelID is set.
func runTUI(app *App, levelID string, sub int) error {
	m := newAppModel(app)
	if levelID != "" {
		m = m.withRound(levelID, sub)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
