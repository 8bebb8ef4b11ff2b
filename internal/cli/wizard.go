package cli

import (
	"fmt"
	"strconv"

	"github.com/Thereal-Vadim/Word-Game/internal/cli/formatter"
	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// timerChoices are the per-word durations offered in the settings form.
var timerChoices = []int{10, 15, 20, 30, 45, 60}

func wordgameHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: header accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// settingsForm edits *s in place.
func settingsForm(s *domain.Settings) *huh.Form {
	timers := make([]huh.Option[int], 0, len(timerChoices)+1)
	known := false
	for _, sec := range timerChoices {
		timers = append(timers, huh.NewOption(fmt.Sprintf("%d seconds", sec), sec))
		known = known || sec == s.TimerDuration
	}
	if !known {
		timers = append(timers, huh.NewOption(strconv.Itoa(s.TimerDuration)+" seconds", s.TimerDuration))
	}

	langs := make([]huh.Option[domain.Language], 0, len(domain.LanguageNames))
	for _, code := range languageCodes() {
		lang := domain.Language(code)
		langs = append(langs, huh.NewOption(fmt.Sprintf("%s (%s)", domain.LanguageNames[lang], code), lang))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Time per word").
				Options(timers...).
				Value(&s.TimerDuration),
			huh.NewSelect[domain.Language]().
				Title("Answer language").
				Description("Definitions are shown in this language when available.").
				Options(langs...).
				Value(&s.Language),
			huh.NewConfirm().
				Title("Sound").
				Affirmative("On").
				Negative("Off").
				Value(&s.SoundEnabled),
			huh.NewSelect[domain.Theme]().
				Title("Theme").
				Options(
					huh.NewOption("Dark", domain.ThemeDark),
					huh.NewOption("Light", domain.ThemeLight),
				).
				Value(&s.Theme),
		),
	).WithTheme(wordgameHuhTheme()).WithShowHelp(false)
}

func resetConfirm(scope string, confirmed *bool) *huh.Confirm {
	return huh.NewConfirm().
		Title(fmt.Sprintf("Reset %s?", scope)).
		Description("Stars and mastered words are cleared. Score and history are kept.").
		Affirmative("Reset").
		Negative("Cancel").
		Value(confirmed)
}

// resetForm asks to confirm a level reset.
func resetForm(levelID string, confirmed *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(resetConfirm("level "+levelID, confirmed))).
		WithTheme(wordgameHuhTheme()).
		WithShowHelp(false)
}
