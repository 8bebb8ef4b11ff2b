package cli

import (
	"time"

	"github.com/Thereal-Vadim/Word-Game/internal/cli/formatter"
	"github.com/Thereal-Vadim/Word-Game/internal/round"
	"github.com/Thereal-Vadim/Word-Game/internal/service"
	"github.com/Thereal-Vadim/Word-Game/internal/sound"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Game       service.GameService
	Settings   service.SettingsService
	Dictionary service.DictionaryService
	Status     service.StatusService

	Sound sound.Player
	Log   zerolog.Logger

	// IsInteractive reports whether stdin is a terminal. The TUI only
	// starts when it returns true.
	IsInteractive func() bool

	// TickInterval is one second of the word timer. Zero means time.Second.
	TickInterval time.Duration

	// RoundOptions are passed to every round started from the CLI.
	RoundOptions []round.Option
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) tickInterval() time.Duration {
	if a.TickInterval <= 0 {
		return time.Second
	}
	return a.TickInterval
}

func (a *App) play(c sound.Cue) {
	if a.Sound != nil {
		a.Sound.Play(c)
	}
}

// NewRootCmd creates the top-level "wordgame" command and registers all
// subcommands against the provided App. Without a subcommand it plays.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "wordgame",
		Short:         "Vocabulary quiz: answer words from their definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			formatter.UseTheme(app.Settings.Get(cmd.Context()).Theme)
		},
	}
	play := newPlayCmd(app)
	root.Flags().AddFlagSet(play.Flags())
	root.Args = cobra.MaximumNArgs(2)
	root.RunE = play.RunE

	root.AddCommand(
		play,
		newLevelsCmd(app),
		newStatusCmd(app),
		newSettingsCmd(app),
		newDictionaryCmd(app),
		newDifficultCmd(app),
		newResetCmd(app),
	)

	return root
}
