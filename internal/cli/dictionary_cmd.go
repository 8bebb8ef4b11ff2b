package cli

import (
	"fmt"

	"github.com/Thereal-Vadim/Word-Game/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDictionaryCmd(app *App) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:     "dictionary [level]",
		Aliases: []string{"dict"},
		Short:   "List the words of a level, or of every level",
		Long: `List words with their definitions. Answers are shown for mastered
words only unless --reveal is given. Words marked "!" are difficult:
missed in an earlier round and not yet answered correctly since.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levelID := ""
			if len(args) == 1 {
				levelID = args[0]
			}
			entries, err := app.Dictionary.Entries(cmd.Context(), levelID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDictionary(entries, reveal))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show answers of words not yet mastered")

	return cmd
}

func newDifficultCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "difficult",
		Short: "List words missed and not yet answered correctly since",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Dictionary.Difficult(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No difficult words. Nice."))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDictionary(entries, true))
			return nil
		},
	}
}
