package round

import "github.com/Thereal-Vadim/Word-Game/internal/domain"

// MaxHintLevel is the deepest hint a word can give: 1 reveals the first
// character, 2 reveals the length.
const MaxHintLevel = 2

// Config holds the per-round tuning knobs. A zero penalty means no penalty,
// so callers should start from DefaultConfig and override what they need;
// a bare Config{} normalizes to default budgets and reward with no penalties.
type Config struct {
	AttemptBudget     int
	HintBudget        int
	TimerSeconds      int
	RewardPerCorrect  int
	PenaltyPerWrong   int
	PenaltyPerHint    int
	PenaltyPerTimeout int
	Language          domain.Language
}

// DefaultConfig returns the standard round rules.
func DefaultConfig() Config {
	return Config{
		AttemptBudget:     3,
		HintBudget:        2,
		TimerSeconds:      30,
		RewardPerCorrect:  10,
		PenaltyPerWrong:   2,
		PenaltyPerHint:    2,
		PenaltyPerTimeout: 5,
		Language:          domain.LangEnglish,
	}
}

// Normalize replaces omitted or out-of-range values with defaults.
// Budgets, timer and reward must be positive. Penalties may be zero; only
// negative penalties fall back to their defaults.
func (c Config) Normalize() Config {
	d := DefaultConfig()
	if c.AttemptBudget <= 0 {
		c.AttemptBudget = d.AttemptBudget
	}
	if c.HintBudget <= 0 {
		c.HintBudget = d.HintBudget
	}
	if c.HintBudget > MaxHintLevel {
		c.HintBudget = MaxHintLevel
	}
	if c.TimerSeconds <= 0 {
		c.TimerSeconds = d.TimerSeconds
	}
	if c.RewardPerCorrect <= 0 {
		c.RewardPerCorrect = d.RewardPerCorrect
	}
	if c.PenaltyPerWrong < 0 {
		c.PenaltyPerWrong = d.PenaltyPerWrong
	}
	if c.PenaltyPerHint < 0 {
		c.PenaltyPerHint = d.PenaltyPerHint
	}
	if c.PenaltyPerTimeout < 0 {
		c.PenaltyPerTimeout = d.PenaltyPerTimeout
	}
	if !domain.ValidLanguages[c.Language] {
		c.Language = d.Language
	}
	return c
}
