package cli

import (
	"errors"
	"fmt"

	"github.com/Thereal-Vadim/Word-Game/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset [level]",
		Short: "Clear stars and mastered words of a level, or of all levels",
		Long: `Clear the stars and mastered words of one level, or of every level when
no level is given, so its sub-levels can be played again. The cumulative
score and the round history are kept.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levelID := ""
			scope := "all levels"
			if len(args) == 1 {
				levelID = args[0]
				scope = "level " + levelID
			}

			if !yes {
				if !app.interactive() {
					return errors.New("refusing to reset without confirmation; pass --yes")
				}
				confirmed := false
				err := huh.NewForm(huh.NewGroup(resetConfirm(scope, &confirmed))).
					WithTheme(wordgameHuhTheme()).
					Run()
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Game.Reset(cmd.Context(), levelID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Progress reset for "+scope+"."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}
