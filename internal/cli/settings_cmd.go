package cli

import (
	"fmt"
	"strings"

	"github.com/Thereal-Vadim/Word-Game/internal/cli/formatter"
	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// settingsFlags are the editable settings as command-line flags. Only the
// flags the user actually set are applied.
type settingsFlags struct {
	timer    int
	language string
	sound    bool
	theme    string
}

func (f *settingsFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.timer, "timer", 0, "Seconds per word")
	fs.StringVar(&f.language, "language", "", "Answer language: "+strings.Join(languageCodes(), ", "))
	fs.BoolVar(&f.sound, "sound", true, "Play sound cues")
	fs.StringVar(&f.theme, "theme", "", "Color theme: light or dark")
}

// apply copies every changed flag of fs onto s.
func (f *settingsFlags) apply(fs *pflag.FlagSet, s domain.Settings) (domain.Settings, bool) {
	changed := false
	fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "timer":
			s.TimerDuration = f.timer
		case "language":
			s.Language = domain.Language(strings.ToLower(f.language))
		case "sound":
			s.SoundEnabled = f.sound
		case "theme":
			s.Theme = domain.Theme(strings.ToLower(f.theme))
		default:
			return
		}
		changed = true
	})
	return s, changed
}

func languageCodes() []string {
	return []string{string(domain.LangEnglish), string(domain.LangRussian), string(domain.LangGerman), string(domain.LangFrench)}
}

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(app.Settings.Get(cmd.Context())))
			return nil
		},
	}

	cmd.AddCommand(newSettingsSetCmd(app))
	return cmd
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Change one or more settings",
		Example: "  wordgame settings set --timer 20 --language de --sound=false",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, changed := flags.apply(cmd.Flags(), app.Settings.Get(ctx))
			if !changed {
				return fmt.Errorf("nothing to change; pass at least one of --timer, --language, --sound, --theme")
			}
			if err := app.Settings.Update(ctx, s); err != nil {
				return err
			}
			formatter.UseTheme(s.Theme)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
