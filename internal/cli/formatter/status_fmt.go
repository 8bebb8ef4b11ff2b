package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/service"
)

const statusProgressBarWidth = 12

// FormatLevels renders the level map: one block per level, one row per
// sub-level with its stars and lock state.
func FormatLevels(levels []service.LevelView) string {
	if len(levels) == 0 {
		return Dim("No levels in the word database.") + "\n"
	}

	var b strings.Builder
	for i, lv := range levels {
		if i > 0 {
			b.WriteString("\n")
		}
		done, total := lv.Progress()
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			StyleHeader.Render(strings.ToUpper(lv.ID)),
			RenderProgress(done, total, statusProgressBarWidth),
			Dim(fmt.Sprintf("%d/%d ★", lv.TotalStars, lv.MaxStars)),
		))

		rows := make([][]string, 0, len(lv.SubLevels))
		for _, s := range lv.SubLevels {
			rows = append(rows, []string{
				fmt.Sprintf("%d", s.SubLevel),
				s.Theme,
				fmt.Sprintf("%d/%d", s.Mastered, s.Words),
				SubLevelBadge(s),
			})
		}
		b.WriteString(RenderTable([]string{"#", "THEME", "WORDS", "STARS"}, rows))
	}
	return b.String()
}

// SubLevelBadge shows the stars of a completed sub-level, or its lock state.
func SubLevelBadge(s service.SubLevelView) string {
	switch {
	case s.Completed:
		return Stars(s.Stars)
	case s.Unlocked:
		return StyleGreen.Render("● open")
	default:
		return Dim("🔒 locked")
	}
}

// FormatStatus renders the overall progress dashboard.
func FormatStatus(v *service.StatusView) string {
	return FormatStatusAt(v, time.Now())
}

// FormatStatusAt is FormatStatus with a fixed reference time for the
// relative timestamps of recent rounds.
func FormatStatusAt(v *service.StatusView, now time.Time) string {
	var b strings.Builder

	current := v.CurrentLevelID
	if current == "" {
		current = "—"
	}
	b.WriteString(Header("Progress") + "\n")
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Score", Bold(fmt.Sprintf("%d", v.CumulativeScore))))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Level", StyleFg.Render(current)))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Stars", StyleYellow.Render(fmt.Sprintf("%d/%d", v.TotalStars, v.MaxStars))))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Sub-levels", RenderProgress(v.SubLevelsDone, v.SubLevelsTotal, statusProgressBarWidth)))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Words", RenderProgress(v.WordsMastered, v.WordsTotal, statusProgressBarWidth)))
	b.WriteString(fmt.Sprintf("  %-12s %d\n", "Difficult", v.DifficultCount))

	b.WriteString("\n" + Header("Recent rounds") + "\n")
	if len(v.Recent) == 0 {
		b.WriteString("  " + Dim("No rounds played yet.") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(v.Recent))
	for _, r := range v.Recent {
		rows = append(rows, roundRow(r, now))
	}
	b.WriteString(RenderTable([]string{"LEVEL", "STARS", "SCORE", "CORRECT", "WHEN"}, rows))
	return b.String()
}

func roundRow(r *domain.RoundResult, now time.Time) []string {
	return []string{
		fmt.Sprintf("%s/%d", r.LevelID, r.SubLevel),
		Stars(r.Stars),
		fmt.Sprintf("%d", r.Score),
		fmt.Sprintf("%d/%d", r.CorrectCount, r.TotalWords),
		Dim(HumanTimestamp(r.FinishedAt, now)),
	}
}
