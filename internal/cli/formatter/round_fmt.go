package formatter

import (
	"fmt"
	"strings"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/round"
	"github.com/Thereal-Vadim/Word-Game/internal/service"
)

// FormatHint renders the revealed part of an answer: the first letter, then
// once the second hint is taken, one placeholder per remaining letter.
func FormatHint(h round.HintResult) string {
	if h.Level <= 0 || h.FirstLetter == "" {
		return ""
	}
	if h.Length > 0 {
		rest := strings.Repeat(" _", max(h.Length-1, 0))
		return fmt.Sprintf("%s%s  %s", StyleYellow.Render(h.FirstLetter), Dim(rest), Dim(fmt.Sprintf("(%d letters)", h.Length)))
	}
	return StyleYellow.Render(h.FirstLetter) + Dim("…")
}

// FormatSummary renders the end-of-round screen. rec may be nil while the
// round is still being saved.
func FormatSummary(s *round.Summary, rec *service.RoundRecorded, lang domain.Language) string {
	var b strings.Builder
	b.WriteString(FormatRoundResult(s, lang))
	if rec == nil {
		b.WriteString("\n  " + Dim("Saving progress...") + "\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("\n  %-10s %d\n", "Total", rec.Progress.CumulativeScore))
	if rec.NextLevelID != "" && rec.NextUnlocked {
		b.WriteString("  " + StyleGreen.Render(fmt.Sprintf("Unlocked %s/%d", rec.NextLevelID, rec.NextSubLevel)) + "\n")
	}
	return b.String()
}

// FormatRoundResult renders the rating, score and missed words of a round.
func FormatRoundResult(s *round.Summary, lang domain.Language) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		StyleHeader.Render(fmt.Sprintf("%s / %d", strings.ToUpper(s.LevelID), s.SubLevel)),
		Stars(s.Stars)))
	b.WriteString(fmt.Sprintf("  %-10s %s\n", "Score", Bold(fmt.Sprintf("%d", s.FinalScore))))
	b.WriteString(fmt.Sprintf("  %-10s %d/%d\n", "Correct", s.CorrectCount, s.TotalWords))

	if len(s.Missed) > 0 {
		b.WriteString("\n  " + StyleRed.Render("Missed") + "\n")
		for _, w := range s.Missed {
			b.WriteString(fmt.Sprintf("    %s  %s\n", Bold(w.Answer(lang)), Dim(w.Definition(lang))))
		}
	}

	return b.String()
}

// FormatDictionary renders dictionary entries grouped by sub-level. Answers
// of words not yet mastered are hidden unless reveal is set.
func FormatDictionary(entries []service.DictionaryEntry, reveal bool) string {
	if len(entries) == 0 {
		return Dim("No words.") + "\n"
	}

	var b strings.Builder
	var group string
	var rows [][]string
	flush := func() {
		if len(rows) > 0 {
			b.WriteString(RenderTable([]string{"WORD", "ANSWER", "DEFINITION"}, rows))
			rows = nil
		}
	}
	for _, e := range entries {
		g := fmt.Sprintf("%s/%d %s", e.LevelID, e.SubLevel, e.Theme)
		if g != group {
			flush()
			if group != "" {
				b.WriteString("\n")
			}
			group = g
			b.WriteString(StyleHeader.Render(g) + "\n")
		}
		rows = append(rows, dictionaryRow(e, reveal))
	}
	flush()
	return b.String()
}

func dictionaryRow(e service.DictionaryEntry, reveal bool) []string {
	word := StyleFg.Render(e.Word)
	switch {
	case e.Difficult:
		word = StyleRed.Render("! " + e.Word)
	case e.Mastered:
		word = StyleGreen.Render("✓ " + e.Word)
	}
	answer := Dim("???")
	if reveal || e.Mastered {
		answer = e.Answer
	}
	return []string{word, answer, Dim(Truncate(e.Definition, 48))}
}

// FormatSettings renders the stored settings.
func FormatSettings(s domain.Settings) string {
	sound := StyleGreen.Render("on")
	if !s.SoundEnabled {
		sound = Dim("off")
	}
	lang := string(s.Language)
	if name, ok := domain.LanguageNames[s.Language]; ok {
		lang = fmt.Sprintf("%s (%s)", name, s.Language)
	}
	var b strings.Builder
	b.WriteString(Header("Settings") + "\n")
	b.WriteString(fmt.Sprintf("  %-10s %ds\n", "Timer", s.TimerDuration))
	b.WriteString(fmt.Sprintf("  %-10s %s\n", "Language", lang))
	b.WriteString(fmt.Sprintf("  %-10s %s\n", "Sound", sound))
	b.WriteString(fmt.Sprintf("  %-10s %s\n", "Theme", s.Theme))
	return b.String()
}
