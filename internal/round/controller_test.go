package round

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource []domain.WordEntry

func (s sliceSource) Words(levelID string, subLevel int) ([]domain.WordEntry, error) {
	var out []domain.WordEntry
	for _, w := range s {
		if w.LevelID == levelID && w.SubLevel == subLevel {
			out = append(out, w)
		}
	}
	return out, nil
}

type failingSource struct{ err error }

func (f failingSource) Words(string, int) ([]domain.WordEntry, error) { return nil, f.err }

func makeWords(n int) sliceSource {
	words := make(sliceSource, n)
	for i := range words {
		name := fmt.Sprintf("word%02d", i)
		words[i] = domain.WordEntry{
			Word:         name,
			LevelID:      "easy",
			SubLevel:     1,
			Theme:        "test",
			Definitions:  map[domain.Language]string{domain.LangEnglish: "definition of " + name},
			Translations: map[domain.Language]string{domain.LangRussian: "слово" + name},
		}
	}
	return words
}

func testConfig() Config {
	return Config{
		AttemptBudget:     3,
		HintBudget:        2,
		TimerSeconds:      5,
		RewardPerCorrect:  10,
		PenaltyPerWrong:   2,
		PenaltyPerHint:    3,
		PenaltyPerTimeout: 4,
		Language:          domain.LangEnglish,
	}
}

func startTest(t *testing.T, src WordSource, cfg Config) *Controller {
	t.Helper()
	c, err := Start("easy", 1, src, cfg, WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	return c
}

// currentAnswer peeks at the expected answer through the test-only queue.
func currentAnswer(c *Controller) string {
	return c.answer()
}

func TestStart_NoWords(t *testing.T) {
	_, err := Start("easy", 9, makeWords(3), testConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoWordsAvailable)

	_, err = Start("missing", 1, makeWords(3), testConfig())
	assert.ErrorIs(t, err, domain.ErrNoWordsAvailable, "absent level reports the same error kind")
}

func TestStart_SourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Start("easy", 1, failingSource{err: boom}, testConfig())
	assert.ErrorIs(t, err, boom)
}

func TestStart_InitialState(t *testing.T) {
	c := startTest(t, makeWords(4), testConfig())
	s := c.State()

	assert.NotEmpty(t, s.RoundID)
	assert.Equal(t, domain.RoundInProgress, s.Phase)
	assert.Equal(t, 0, s.Cursor)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.AttemptsLeft)
	assert.Equal(t, 0, s.HintLevel)
	assert.Equal(t, 5, s.TimeLeft)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, domain.WordPresented, s.Resolution)

	p := c.Current()
	assert.Equal(t, 1, p.Seq)
	assert.Equal(t, 4, p.Total)
	assert.Contains(t, p.Definition, "definition of")
}

func TestShuffle_VisitsEveryWordOnce(t *testing.T) {
	words := makeWords(12)
	for seed := int64(0); seed < 20; seed++ {
		c, err := Start("easy", 1, words, testConfig(), WithRand(rand.New(rand.NewSource(seed))))
		require.NoError(t, err)

		seen := make(map[string]int)
		for {
			w := currentAnswer(c)
			seen[w]++
			_, err := c.Submit(w)
			require.NoError(t, err)
			_, summary, err := c.Advance()
			require.NoError(t, err)
			if summary != nil {
				break
			}
		}
		assert.Len(t, seen, 12, "seed=%d", seed)
		for w, n := range seen {
			assert.Equal(t, 1, n, "seed=%d word=%s", seed, w)
		}
		assert.Equal(t, 12, c.State().Cursor)
	}
}

func TestShuffle_DeterministicWithSeed(t *testing.T) {
	order := func() []string {
		c, err := Start("easy", 1, makeWords(8), testConfig(), WithRand(rand.New(rand.NewSource(42))))
		require.NoError(t, err)
		var got []string
		for i := 0; i < 8; i++ {
			got = append(got, currentAnswer(c))
			_, _ = c.Submit(currentAnswer(c))
			_, _, _ = c.Advance()
		}
		return got
	}
	assert.Equal(t, order(), order())
}

func TestSubmit_CorrectIsNormalized(t *testing.T) {
	c := startTest(t, makeWords(2), testConfig())
	ans := currentAnswer(c)

	out, err := c.Submit("  " + string([]rune(ans)[0]-32) + ans[1:] + "\t")
	require.NoError(t, err)
	assert.True(t, out.Correct)
	assert.Equal(t, ans, out.Revealed)
	assert.Equal(t, 10, out.ScoreDelta)

	s := c.State()
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 1, s.CorrectCount)
	assert.Equal(t, domain.WordCorrect, s.Resolution)
}

func TestSubmit_TargetLanguage(t *testing.T) {
	cfg := testConfig()
	cfg.Language = domain.LangRussian
	c := startTest(t, makeWords(1), cfg)

	out, err := c.Submit("word00")
	require.NoError(t, err)
	assert.False(t, out.Correct, "english word is wrong in a russian round")

	out, err = c.Submit("СЛОВОword00")
	require.NoError(t, err)
	assert.True(t, out.Correct)
}

func TestSubmit_WrongThenExhausted(t *testing.T) {
	c := startTest(t, makeWords(2), testConfig())

	out, err := c.Submit("nope")
	require.NoError(t, err)
	assert.False(t, out.Correct)
	assert.False(t, out.Exhausted)
	assert.Equal(t, 2, out.AttemptsLeft)
	assert.Empty(t, out.Revealed, "answer stays hidden while attempts remain")

	_, err = c.Submit("nope")
	require.NoError(t, err)
	out, err = c.Submit("nope")
	require.NoError(t, err)
	assert.True(t, out.Exhausted)
	assert.Equal(t, 0, out.AttemptsLeft)
	assert.NotEmpty(t, out.Revealed)
	assert.Equal(t, domain.WordAttemptsExhausted, c.State().Resolution)

	_, err = c.Submit(currentAnswer(c))
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestSubmit_AfterCorrectIsInvalid(t *testing.T) {
	c := startTest(t, makeWords(2), testConfig())
	_, err := c.Submit(currentAnswer(c))
	require.NoError(t, err)

	_, err = c.Submit(currentAnswer(c))
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestScore_NeverNegative(t *testing.T) {
	cfg := testConfig()
	cfg.PenaltyPerWrong = 7
	cfg.PenaltyPerHint = 9
	cfg.PenaltyPerTimeout = 11
	rng := rand.New(rand.NewSource(3))

	c := startTest(t, makeWords(15), cfg)
	for c.State().Phase == domain.RoundInProgress {
		switch rng.Intn(4) {
		case 0:
			_, _ = c.Submit("wrong")
		case 1:
			_, _ = c.Hint()
		case 2:
			c.Tick()
		case 3:
			if rng.Intn(3) == 0 {
				_, _ = c.Submit(currentAnswer(c))
			}
		}
		require.GreaterOrEqual(t, c.State().Score, 0)
		if c.State().Resolution.IsResolved() {
			_, _, err := c.Advance()
			require.NoError(t, err)
		}
	}
	s, ok := c.Summary()
	require.True(t, ok)
	assert.GreaterOrEqual(t, s.FinalScore, 0)
}

func TestScore_PenaltyAppliedDeltaReportsFloor(t *testing.T) {
	c := startTest(t, makeWords(2), testConfig())

	h, err := c.Hint()
	require.NoError(t, err)
	assert.Equal(t, 0, h.ScoreDelta, "score already at the floor")

	_, err = c.Submit(currentAnswer(c))
	require.NoError(t, err)
	_, _, err = c.Advance()
	require.NoError(t, err)

	h, err = c.Hint()
	require.NoError(t, err)
	assert.Equal(t, -3, h.ScoreDelta)

	out, err := c.Submit("wrong")
	require.NoError(t, err)
	assert.Equal(t, -2, out.ScoreDelta)
	assert.Equal(t, 5, c.State().Score)
}

func TestHint_BudgetAndContent(t *testing.T) {
	c := startTest(t, makeWords(2), testConfig())
	ans := currentAnswer(c)

	h, err := c.Hint()
	require.NoError(t, err)
	assert.Equal(t, 1, h.Level)
	assert.Equal(t, ans[:1], h.FirstLetter)
	assert.Zero(t, h.Length)

	h, err = c.Hint()
	require.NoError(t, err)
	assert.Equal(t, 2, h.Level)
	assert.Equal(t, len(ans), h.Length)

	_, err = c.Hint()
	assert.ErrorIs(t, err, domain.ErrHintExhausted)
	assert.Equal(t, 2, c.State().HintLevel)

	_, err = c.Submit(ans)
	require.NoError(t, err)
	_, _, err = c.Advance()
	require.NoError(t, err)
	assert.Equal(t, 0, c.State().HintLevel, "budget resets on the next word")

	_, err = c.Hint()
	assert.NoError(t, err)
}

func TestHint_UnicodeAnswer(t *testing.T) {
	cfg := testConfig()
	cfg.Language = domain.LangRussian
	c := startTest(t, makeWords(1), cfg)

	h, err := c.Hint()
	require.NoError(t, err)
	assert.Equal(t, "с", h.FirstLetter)
	h, err = c.Hint()
	require.NoError(t, err)
	assert.Equal(t, len([]rune("словоword00")), h.Length)
}

func TestHint_ResolvedWord(t *testing.T) {
	c := startTest(t, makeWords(1), testConfig())
	_, err := c.Submit(currentAnswer(c))
	require.NoError(t, err)

	_, err = c.Hint()
	assert.ErrorIs(t, err, domain.ErrHintExhausted)
}

func TestHint_CustomBudget(t *testing.T) {
	cfg := testConfig()
	cfg.HintBudget = 1
	c := startTest(t, makeWords(1), cfg)

	_, err := c.Hint()
	require.NoError(t, err)
	_, err = c.Hint()
	assert.ErrorIs(t, err, domain.ErrHintExhausted)
}

func TestTick_TimeoutResolvesWord(t *testing.T) {
	c := startTest(t, makeWords(2), testConfig())
	_, err := c.Submit(currentAnswer(c))
	require.NoError(t, err)
	_, _, err = c.Advance()
	require.NoError(t, err)

	for i := 4; i > 0; i-- {
		r := c.Tick()
		assert.False(t, r.TimedOut)
		assert.Equal(t, i, r.TimeLeft)
	}
	r := c.Tick()
	assert.True(t, r.TimedOut)
	assert.Equal(t, 0, r.TimeLeft)
	assert.NotEmpty(t, r.Revealed)
	assert.Equal(t, -4, r.ScoreDelta)
	assert.Equal(t, domain.WordTimedOut, c.State().Resolution)
	assert.Equal(t, 6, c.State().Score)

	again := c.Tick()
	assert.True(t, again.Ignored)
	assert.Equal(t, 6, c.State().Score, "late ticks do not charge again")

	_, err = c.Submit(r.Revealed)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestTick_IgnoredAfterCorrect(t *testing.T) {
	c := startTest(t, makeWords(1), testConfig())
	_, err := c.Submit(currentAnswer(c))
	require.NoError(t, err)

	r := c.Tick()
	assert.True(t, r.Ignored)
	assert.Equal(t, 5, c.State().TimeLeft, "countdown stopped at resolution")
}

func TestAdvance_RequiresResolution(t *testing.T) {
	c := startTest(t, makeWords(2), testConfig())
	_, _, err := c.Advance()
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = c.Submit("wrong")
	require.NoError(t, err)
	_, _, err = c.Advance()
	assert.ErrorIs(t, err, domain.ErrInvalidState, "a wrong answer with attempts left keeps the word current")
}

func TestAdvance_ResetsPerWordFields(t *testing.T) {
	c := startTest(t, makeWords(2), testConfig())
	_, _ = c.Hint()
	_, _ = c.Submit("wrong")
	c.Tick()
	_, err := c.Submit(currentAnswer(c))
	require.NoError(t, err)

	next, summary, err := c.Advance()
	require.NoError(t, err)
	assert.Nil(t, summary)
	require.NotNil(t, next)
	assert.Equal(t, 2, next.Seq)

	s := c.State()
	assert.Equal(t, 3, s.AttemptsLeft)
	assert.Equal(t, 0, s.HintLevel)
	assert.Equal(t, 5, s.TimeLeft)
	assert.Equal(t, domain.WordPresented, s.Resolution)
}

func TestAdvance_CompletedRoundIsTerminal(t *testing.T) {
	c := startTest(t, makeWords(1), testConfig())
	_, err := c.Submit(currentAnswer(c))
	require.NoError(t, err)

	_, summary, err := c.Advance()
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, domain.RoundCompleted, c.State().Phase)

	_, again, err := c.Advance()
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Nil(t, again)

	_, err = c.Submit("x")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	_, err = c.Hint()
	assert.ErrorIs(t, err, domain.ErrHintExhausted)
	assert.True(t, c.Tick().Ignored)
}

func TestSummary_StarExample(t *testing.T) {
	cfg := testConfig()
	cfg.PenaltyPerWrong = 0
	c := startTest(t, makeWords(10), cfg)

	var summary *Summary
	for i := 0; i < 10; i++ {
		if i == 4 {
			for j := 0; j < 3; j++ {
				_, err := c.Submit("miss")
				require.NoError(t, err)
			}
		} else {
			_, err := c.Submit(currentAnswer(c))
			require.NoError(t, err)
		}
		var err error
		_, summary, err = c.Advance()
		require.NoError(t, err)
	}
	require.NotNil(t, summary)

	assert.Equal(t, 9, summary.CorrectCount)
	assert.Equal(t, 10, summary.TotalWords)
	assert.Equal(t, 90, summary.FinalScore)
	assert.Equal(t, 3, summary.Stars)
	assert.Len(t, summary.Mastered, 9)
	assert.Len(t, summary.Missed, 1)

	comp := summary.Completion()
	assert.Equal(t, "easy", comp.LevelID)
	assert.Equal(t, 1, comp.SubLevel)
	assert.Equal(t, 3, comp.Stars)
	assert.Equal(t, 90, comp.ScoreDelta)
}

func TestConfig_Normalize(t *testing.T) {
	got := Config{PenaltyPerWrong: -1, HintBudget: 5, Language: "xx"}.Normalize()
	d := DefaultConfig()
	assert.Equal(t, d.AttemptBudget, got.AttemptBudget)
	assert.Equal(t, MaxHintLevel, got.HintBudget)
	assert.Equal(t, d.TimerSeconds, got.TimerSeconds)
	assert.Equal(t, d.RewardPerCorrect, got.RewardPerCorrect)
	assert.Equal(t, d.PenaltyPerWrong, got.PenaltyPerWrong)
	assert.Equal(t, 0, got.PenaltyPerHint, "zero penalties are kept")
	assert.Equal(t, domain.LangEnglish, got.Language)
}

func TestConfig_NormalizeZeroValue(t *testing.T) {
	got := Config{}.Normalize()
	d := DefaultConfig()
	assert.Equal(t, d.AttemptBudget, got.AttemptBudget)
	assert.Equal(t, d.HintBudget, got.HintBudget)
	assert.Equal(t, d.TimerSeconds, got.TimerSeconds)
	assert.Equal(t, d.RewardPerCorrect, got.RewardPerCorrect)
	assert.Zero(t, got.PenaltyPerWrong)
	assert.Zero(t, got.PenaltyPerHint)
	assert.Zero(t, got.PenaltyPerTimeout)

	assert.Equal(t, d, d.Normalize(), "defaults survive normalization")
}
