// Package round runs a single sub-level of play: it shuffles the sub-level's
// words once, presents them one at a time, grades answers, spends the attempt
// and hint budgets, counts down the per-word timer and rates the finished
// round with stars.
//
// A Controller is not safe for concurrent use. Callers feed it events
// (Submit, Hint, Tick, Advance) one at a time from a single loop.
package round

import (
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/google/uuid"
)

// WordSource supplies the playable words for a sub-level.
type WordSource interface {
	Words(levelID string, subLevel int) ([]domain.WordEntry, error)
}

// Prompt is what the learner sees for the current word.
type Prompt struct {
	Seq        int // 1-based position in the round
	Total      int
	Definition string
	Theme      string
}

// State is a read-only snapshot of the round.
type State struct {
	RoundID      string
	LevelID      string
	SubLevel     int
	Language     domain.Language
	Cursor       int
	Total        int
	AttemptsLeft int
	HintLevel    int
	TimeLeft     int
	Score        int
	CorrectCount int
	Resolution   domain.Resolution
	Phase        domain.RoundPhase
}

type AnswerOutcome struct {
	Correct      bool
	Exhausted    bool
	AttemptsLeft int
	ScoreDelta   int
	Revealed     string // set once the word is resolved
}

type HintResult struct {
	Level       int
	FirstLetter string
	Length      int
	ScoreDelta  int
}

type TickResult struct {
	TimeLeft   int
	TimedOut   bool
	Ignored    bool // the word was already resolved or the round is over
	ScoreDelta int
	Revealed   string
}

// Summary is produced once, when the last word is advanced past.
type Summary struct {
	RoundID      string
	LevelID      string
	SubLevel     int
	Stars        int
	FinalScore   int
	CorrectCount int
	TotalWords   int
	Mastered     []string
	Missed       []domain.WordEntry
}

// Completion converts the summary into a progress store input.
func (s Summary) Completion() domain.Completion {
	return domain.Completion{
		LevelID:    s.LevelID,
		SubLevel:   s.SubLevel,
		Stars:      s.Stars,
		ScoreDelta: s.FinalScore,
		Mastered:   s.Mastered,
	}
}

// Option customizes a Controller at start.
type Option func(*Controller)

// WithRand makes the shuffle deterministic.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// WithRoundID overrides the generated round identifier.
func WithRoundID(id string) Option {
	return func(c *Controller) { c.id = id }
}

type Controller struct {
	id       string
	levelID  string
	subLevel int
	cfg      Config
	rng      *rand.Rand

	queue  []domain.WordEntry
	cursor int

	attemptsLeft int
	hintLevel    int
	timeLeft     int
	resolution   domain.Resolution

	score        int
	correctCount int
	mastered     []string
	missed       []domain.WordEntry

	phase   domain.RoundPhase
	summary *Summary
}

// Start begins a round on the words source yields for the sub-level.
func Start(levelID string, subLevel int, source WordSource, cfg Config, opts ...Option) (*Controller, error) {
	words, err := source.Words(levelID, subLevel)
	if err != nil {
		return nil, fmt.Errorf("loading words for %s/%d: %w", levelID, subLevel, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s/%d: %w", levelID, subLevel, domain.ErrNoWordsAvailable)
	}

	c := &Controller{
		id:       uuid.New().String(),
		levelID:  levelID,
		subLevel: subLevel,
		cfg:      cfg.Normalize(),
		phase:    domain.RoundNotStarted,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.queue = make([]domain.WordEntry, len(words))
	copy(c.queue, words)
	swap := func(i, j int) { c.queue[i], c.queue[j] = c.queue[j], c.queue[i] }
	if c.rng != nil {
		c.rng.Shuffle(len(c.queue), swap)
	} else {
		rand.Shuffle(len(c.queue), swap)
	}

	c.cursor = 0
	c.score = 0
	c.correctCount = 0
	c.resetWord()
	c.phase = domain.RoundInProgress
	return c, nil
}

func (c *Controller) resetWord() {
	c.attemptsLeft = c.cfg.AttemptBudget
	c.hintLevel = 0
	c.timeLeft = c.cfg.TimerSeconds
	c.resolution = domain.WordPresented
}

func (c *Controller) ID() string     { return c.id }
func (c *Controller) Config() Config { return c.cfg }

// Current returns the prompt for the word under the cursor.
func (c *Controller) Current() Prompt {
	if c.phase != domain.RoundInProgress {
		return Prompt{Seq: c.cursor, Total: len(c.queue)}
	}
	w := c.queue[c.cursor]
	return Prompt{
		Seq:        c.cursor + 1,
		Total:      len(c.queue),
		Definition: w.Definition(c.cfg.Language),
		Theme:      w.Theme,
	}
}

// Seq identifies the current word for tick routing; it changes on every advance.
func (c *Controller) Seq() int { return c.cursor + 1 }

func (c *Controller) State() State {
	return State{
		RoundID:      c.id,
		LevelID:      c.levelID,
		SubLevel:     c.subLevel,
		Language:     c.cfg.Language,
		Cursor:       c.cursor,
		Total:        len(c.queue),
		AttemptsLeft: c.attemptsLeft,
		HintLevel:    c.hintLevel,
		TimeLeft:     c.timeLeft,
		Score:        c.score,
		CorrectCount: c.correctCount,
		Resolution:   c.resolution,
		Phase:        c.phase,
	}
}

// Summary returns the round summary once the round is completed.
func (c *Controller) Summary() (*Summary, bool) {
	return c.summary, c.summary != nil
}

func (c *Controller) answer() string {
	return c.queue[c.cursor].Answer(c.cfg.Language)
}

func (c *Controller) active() bool {
	return c.phase == domain.RoundInProgress && !c.resolution.IsResolved()
}

// Submit grades text against the current word.
func (c *Controller) Submit(text string) (AnswerOutcome, error) {
	if !c.active() {
		return AnswerOutcome{}, fmt.Errorf("submit: %w", domain.ErrInvalidState)
	}

	if domain.NormalizeAnswer(text) == domain.NormalizeAnswer(c.answer()) {
		var applied int
		c.score, applied = applyDelta(c.score, c.cfg.RewardPerCorrect)
		c.correctCount++
		c.resolution = domain.WordCorrect
		c.mastered = append(c.mastered, domain.NormalizeAnswer(c.queue[c.cursor].Word))
		return AnswerOutcome{
			Correct:      true,
			AttemptsLeft: c.attemptsLeft,
			ScoreDelta:   applied,
			Revealed:     c.answer(),
		}, nil
	}

	var applied int
	c.score, applied = applyDelta(c.score, -c.cfg.PenaltyPerWrong)
	c.attemptsLeft--
	out := AnswerOutcome{AttemptsLeft: c.attemptsLeft, ScoreDelta: applied}
	if c.attemptsLeft <= 0 {
		c.attemptsLeft = 0
		c.resolution = domain.WordAttemptsExhausted
		c.missed = append(c.missed, c.queue[c.cursor])
		out.Exhausted = true
		out.Revealed = c.answer()
	}
	return out, nil
}

// Hint reveals the next piece of the answer.
func (c *Controller) Hint() (HintResult, error) {
	if !c.active() || c.hintLevel >= c.cfg.HintBudget {
		return HintResult{Level: c.hintLevel}, fmt.Errorf("hint: %w", domain.ErrHintExhausted)
	}

	c.hintLevel++
	var applied int
	c.score, applied = applyDelta(c.score, -c.cfg.PenaltyPerHint)

	ans := c.answer()
	res := HintResult{Level: c.hintLevel, ScoreDelta: applied}
	if r, _ := utf8.DecodeRuneInString(ans); r != utf8.RuneError {
		res.FirstLetter = string(r)
	}
	if c.hintLevel >= 2 {
		res.Length = utf8.RuneCountInString(ans)
	}
	return res, nil
}

// Tick counts one second off the current word.
func (c *Controller) Tick() TickResult {
	if !c.active() {
		return TickResult{TimeLeft: c.timeLeft, Ignored: true}
	}

	c.timeLeft--
	if c.timeLeft > 0 {
		return TickResult{TimeLeft: c.timeLeft}
	}

	c.timeLeft = 0
	var applied int
	c.score, applied = applyDelta(c.score, -c.cfg.PenaltyPerTimeout)
	c.resolution = domain.WordTimedOut
	c.missed = append(c.missed, c.queue[c.cursor])
	return TickResult{TimedOut: true, ScoreDelta: applied, Revealed: c.answer()}
}

// Advance moves past a resolved word. It returns the next prompt, or the
// summary when the round has just completed.
func (c *Controller) Advance() (*Prompt, *Summary, error) {
	if c.phase != domain.RoundInProgress {
		return nil, nil, fmt.Errorf("advance: round %s: %w", c.phase, domain.ErrInvalidState)
	}
	if !c.resolution.IsResolved() {
		return nil, nil, fmt.Errorf("advance: word unresolved: %w", domain.ErrInvalidState)
	}

	c.cursor++
	if c.cursor >= len(c.queue) {
		c.cursor = len(c.queue)
		c.phase = domain.RoundCompleted
		c.summary = &Summary{
			RoundID:      c.id,
			LevelID:      c.levelID,
			SubLevel:     c.subLevel,
			Stars:        StarRating(c.correctCount, len(c.queue), c.score, c.cfg.RewardPerCorrect),
			FinalScore:   c.score,
			CorrectCount: c.correctCount,
			TotalWords:   len(c.queue),
			Mastered:     append([]string(nil), c.mastered...),
			Missed:       append([]domain.WordEntry(nil), c.missed...),
		}
		return nil, c.summary, nil
	}

	c.resetWord()
	p := c.Current()
	return &p, nil, nil
}

// Answer exposes the expected answer of the current word once it is resolved.
func (c *Controller) Answer() (string, bool) {
	if c.phase != domain.RoundInProgress || !c.resolution.IsResolved() {
		return "", false
	}
	return c.answer(), true
}

// CurrentWord returns the entry under the cursor once it is resolved, for
// callers that track difficult words.
func (c *Controller) CurrentWord() (domain.WordEntry, bool) {
	if c.phase != domain.RoundInProgress || !c.resolution.IsResolved() {
		return domain.WordEntry{}, false
	}
	return c.queue[c.cursor], true
}
