package cli

import (
	"fmt"

	"github.com/Thereal-Vadim/Word-Game/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show score, stars and recent rounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Status.Status(cmd.Context(), recent)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(view))
			return nil
		},
	}

	cmd.Flags().IntVarP(&recent, "recent", "n", 5, "Number of recent rounds to show")

	return cmd
}

func newLevelsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "levels",
		Aliases: []string{"map"},
		Short:   "Show every level with its sub-levels, stars and locks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLevels(app.Game.Levels(cmd.Context())))
			return nil
		},
	}
}
